package sequence

import (
	"fmt"
)

// Layout holds the fixed capacities of a side's two staging buffers.
type Layout struct {
	// Staging1 is the capacity of the first buffer in bytes
	Staging1 int

	// Staging2 is the capacity of the second buffer in bytes
	Staging2 int
}

// DefaultLayout is the reference 252 + 168 byte configuration.
var DefaultLayout = Layout{Staging1: 252, Staging2: 168}

// Capacity is the total number of bytes both buffers can carry.
func (l Layout) Capacity() int {
	return l.Staging1 + l.Staging2
}

// Buffers is one side's pair of staging buffers.
type Buffers struct {
	Staging1 []string
	Staging2 []string
}

// padToken fills unused buffer space.
const padToken = "00"

// Encode reassembles seqs into a padded buffer pair.
func Encode(seqs []*Sequence, layout Layout) Buffers {
	return Split(Combine(seqs), layout)
}

// Combine concatenates the encoded form of every sequence in order.
// Structured lengths are re-derived from the data before encoding.
// Nil entries are skipped.
func Combine(seqs []*Sequence) []string {
	combined := make([]string, 0, Size(seqs))
	for _, s := range seqs {
		if s == nil {
			continue
		}
		if s.Kind == Raw {
			combined = append(combined, s.Data...)
			continue
		}
		high, low := lengthTokens(len(s.Data) / 2)
		combined = append(combined, s.Identifier, high, low)
		combined = append(combined, s.Data...)
	}
	return combined
}

// Split partitions a combined stream into the two staging buffers.
// Each buffer is zero-padded to its capacity; bytes past the total
// capacity are dropped.
func Split(combined []string, layout Layout) Buffers {
	return Buffers{
		Staging1: window(combined, 0, layout.Staging1),
		Staging2: window(combined, layout.Staging1, layout.Staging2),
	}
}

// window copies combined[start:start+size], padded to exactly size tokens.
func window(combined []string, start, size int) []string {
	out := make([]string, size)
	for i := range out {
		if start+i < len(combined) {
			out[i] = combined[start+i]
		} else {
			out[i] = padToken
		}
	}
	return out
}

// lengthTokens formats n as four uppercase hex digits split into two tokens.
func lengthTokens(n int) (string, string) {
	hl := fmt.Sprintf("%04X", n)
	return hl[0:2], hl[2:4]
}
