package sequence

import (
	"strings"

	"github.com/agleyzer/lightseq/internal/bytebuf"
)

// headerSize is identifier + length high + length low.
const headerSize = 3

// StopReason records why a structured scan ended.
type StopReason int

const (
	// StopEnd means fewer than a header's worth of bytes remained.
	StopEnd StopReason = iota
	// StopTerminator means a 00,00,00 marker ended the structured portion.
	StopTerminator
	// StopBadLength means a length field was not valid hex.
	StopBadLength
	// StopIncomplete means a declared length ran past the end of the stream.
	StopIncomplete
)

func (r StopReason) String() string {
	switch r {
	case StopTerminator:
		return "terminator"
	case StopBadLength:
		return "bad-length"
	case StopIncomplete:
		return "incomplete"
	default:
		return "end"
	}
}

// Result is the outcome of scanning one combined stream.
type Result struct {
	// Sequences holds the structured records followed by at most one RAW record
	Sequences []*Sequence

	// Stop is the reason the structured scan ended
	Stop StopReason

	// Cursor is the stream position where the leftover starts
	Cursor int

	// Lost counts header bytes consumed by a record that could not be read.
	// They appear in neither the structured records nor the RAW leftover.
	Lost int
}

// Decode parses the concatenation of two staging buffers into sequences.
func Decode(staging1, staging2 []string) []*Sequence {
	stream := make([]string, 0, len(staging1)+len(staging2))
	stream = append(stream, staging1...)
	stream = append(stream, staging2...)
	return Scan(stream).Sequences
}

// Scan walks a combined stream, reading header/data records until a
// terminator, a malformed or overlong record, or the end of the stream.
// Whatever follows the cursor becomes one RAW record if it holds any
// non-padding byte.
func Scan(stream []string) Result {
	res := Result{Sequences: []*Sequence{}, Stop: StopEnd}
	idx := 0

	for idx+headerSize <= len(stream) {
		if isTerminator(stream[idx : idx+headerSize]) {
			idx += headerSize
			res.Stop = StopTerminator
			break
		}

		identifier := stream[idx]
		lenHigh := stream[idx+1]
		lenLow := stream[idx+2]
		idx += headerSize

		lengthVal, ok := bytebuf.ParseHexOK(lenHigh + lenLow)
		if !ok {
			res.Stop = StopBadLength
			res.Lost = headerSize
			break
		}

		// Compare against the remaining pairs so an oversized length
		// cannot overflow the multiplication below.
		if lengthVal > (len(stream)-idx)/2 {
			res.Stop = StopIncomplete
			res.Lost = headerSize
			break
		}
		end := idx + lengthVal*2

		data := make([]string, lengthVal*2)
		copy(data, stream[idx:end])
		idx = end

		res.Sequences = append(res.Sequences, &Sequence{
			Kind:       Structured,
			Identifier: identifier,
			Length:     lengthVal,
			Data:       data,
		})
	}

	res.Cursor = idx

	leftover := stream[idx:]
	if hasContent(leftover) {
		data := make([]string, len(leftover))
		copy(data, leftover)
		res.Sequences = append(res.Sequences, NewRaw(data))
	}

	return res
}

func isTerminator(header []string) bool {
	for _, tok := range header {
		if !strings.EqualFold(tok, "00") {
			return false
		}
	}
	return true
}

func hasContent(tokens []string) bool {
	for _, tok := range tokens {
		if !bytebuf.IsZero(tok) {
			return true
		}
	}
	return false
}
