// Package sequence decodes and encodes the timed brightness records carried
// in a side's two staging buffers.
package sequence

import (
	"github.com/agleyzer/lightseq/internal/bytebuf"
)

// Kind tags a Sequence as a structured step record or an opaque RAW blob.
type Kind int

const (
	// Structured records carry an identifier, a length and step pairs.
	Structured Kind = iota
	// Raw records carry trailing bytes verbatim.
	Raw
)

// RawTag is the text marker for RAW records in the hex editor form.
const RawTag = "RAW"

func (k Kind) String() string {
	if k == Raw {
		return RawTag
	}
	return "structured"
}

// Sequence is one decoded animation record.
type Sequence struct {
	// Kind selects between structured and RAW handling
	Kind Kind

	// Identifier is the channel byte token (structured only)
	Identifier string

	// Length is the declared step-pair count for structured records,
	// or the token count for RAW records
	Length int

	// Data holds [duration, brightness] pairs for structured records,
	// or arbitrary bytes for RAW records
	Data []string
}

// Step is one decoded (duration, brightness) pair.
type Step struct {
	// Duration is in time-scale units (0-255)
	Duration int

	// Brightness is a percentage clamped to 0-100
	Brightness int
}

// MaxBrightness is the ceiling applied to brightness bytes.
const MaxBrightness = 100

// NewStructured returns a structured record whose length matches data.
func NewStructured(identifier string, data []string) *Sequence {
	return &Sequence{
		Kind:       Structured,
		Identifier: identifier,
		Length:     len(data) / 2,
		Data:       data,
	}
}

// NewRaw returns a RAW record over data.
func NewRaw(data []string) *Sequence {
	return &Sequence{
		Kind:   Raw,
		Length: len(data),
		Data:   data,
	}
}

// IsRaw reports whether s is a RAW record. A nil sequence is not RAW.
func (s *Sequence) IsRaw() bool {
	return s != nil && s.Kind == Raw
}

// Clone returns a deep copy of s.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return nil
	}
	data := make([]string, len(s.Data))
	copy(data, s.Data)
	return &Sequence{
		Kind:       s.Kind,
		Identifier: s.Identifier,
		Length:     s.Length,
		Data:       data,
	}
}

// SyncLength re-derives Length from Data.
func (s *Sequence) SyncLength() {
	if s.Kind == Raw {
		s.Length = len(s.Data)
		return
	}
	s.Length = len(s.Data) / 2
}

// Steps decodes the step pairs of a structured record.
// A trailing unpaired duration byte yields a step with zero brightness.
func (s *Sequence) Steps() []Step {
	if s == nil || s.Kind == Raw {
		return nil
	}

	steps := make([]Step, 0, (len(s.Data)+1)/2)
	for i := 0; i < len(s.Data); i += 2 {
		step := Step{Duration: bytebuf.ParseHexByteOrZero(s.Data[i])}
		if i+1 < len(s.Data) {
			step.Brightness = min(bytebuf.ParseHexByteOrZero(s.Data[i+1]), MaxBrightness)
		}
		steps = append(steps, step)
	}
	return steps
}

// Channel returns the identifier as a channel number.
func (s *Sequence) Channel() (int, bool) {
	if s == nil || s.Kind == Raw {
		return 0, false
	}
	return bytebuf.ParseHexOK(s.Identifier)
}

// EncodedSize is the number of bytes s occupies in a combined stream.
func (s *Sequence) EncodedSize() int {
	if s == nil {
		return 0
	}
	if s.Kind == Raw {
		return len(s.Data)
	}
	return headerSize + len(s.Data)
}

// Size returns the un-padded encoded byte count of seqs.
func Size(seqs []*Sequence) int {
	total := 0
	for _, s := range seqs {
		total += s.EncodedSize()
	}
	return total
}
