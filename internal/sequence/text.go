package sequence

import (
	"github.com/agleyzer/lightseq/internal/bytebuf"
)

// Format renders s in the hex editor form.
// RAW records render their bytes; structured records render the header
// built from the stored Length followed by the data.
func Format(s *Sequence) string {
	if s == nil {
		return ""
	}
	if s.Kind == Raw {
		return bytebuf.Build(s.Data)
	}

	high, low := lengthTokens(s.Length)
	tokens := make([]string, 0, headerSize+len(s.Data))
	tokens = append(tokens, s.Identifier, high, low)
	tokens = append(tokens, s.Data...)
	return bytebuf.Build(tokens)
}

// ParseText reads a sequence from the hex editor form.
// Text with no tokens yields nil. Fewer than three tokens, or a leading
// RAW marker, yields a RAW record over every token; anything else is read
// as identifier, length high, length low and data. An unreadable length
// becomes 0.
//
// A RAW record of three or more bytes formatted with Format reads back as
// structured.
func ParseText(text string) *Sequence {
	tokens := bytebuf.Parse(text)
	if len(tokens) == 0 {
		return nil
	}

	if tokens[0] == RawTag || len(tokens) < headerSize {
		return NewRaw(tokens)
	}

	lengthVal, ok := bytebuf.ParseHexOK(tokens[1] + tokens[2])
	if !ok {
		lengthVal = 0
	}

	return &Sequence{
		Kind:       Structured,
		Identifier: tokens[0],
		Length:     lengthVal,
		Data:       tokens[headerSize:],
	}
}
