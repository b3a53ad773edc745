// Package bytebuf converts between comma-separated hex byte text and token slices.
package bytebuf

import (
	"log/slog"
	"strconv"
	"strings"
)

// Separator is placed between tokens when building byte text.
const Separator = ", "

// Parse splits comma-separated byte text into tokens.
// Whitespace around each token is removed and empty tokens are dropped.
// Tokens are not validated as hex.
func Parse(text string) []string {
	if text == "" {
		return []string{}
	}

	parts := strings.Split(text, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}

	return tokens
}

// Build joins tokens into byte text, trimming each token first.
func Build(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(strings.TrimSpace(tok))
	}
	return b.String()
}

// EnsureMaxSize returns tokens cut down to at most max entries.
// A warning is logged when anything is cut.
func EnsureMaxSize(tokens []string, max int, logger *slog.Logger) []string {
	if len(tokens) <= max {
		return tokens
	}

	if logger != nil {
		logger.Warn("exceeded byte limit, trimming",
			"wanted", max,
			"have", len(tokens),
		)
	}

	return tokens[:max]
}

// ParseHexOK parses s as an unsigned hex number.
// Values that do not fit in 31 bits are rejected so the result is a
// non-negative int on every platform.
func ParseHexOK(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 31)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseHexByteOrZero returns the value of a hex token, or 0 when the token
// is not valid hex. Malformed duration and brightness bytes degrade to 0
// through this function instead of failing.
func ParseHexByteOrZero(tok string) int {
	v, ok := ParseHexOK(strings.TrimSpace(tok))
	if !ok {
		return 0
	}
	return v
}

// FormatByte renders v as a two digit uppercase hex token.
// Values outside 0..255 are clamped.
func FormatByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 0xFF {
		v = 0xFF
	}
	s := strings.ToUpper(strconv.FormatInt(int64(v), 16))
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

// IsHexByte reports whether tok is exactly two hex digits.
func IsHexByte(tok string) bool {
	if len(tok) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if !isHexDigit(tok[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether tok is padding ("00" or a bare "0").
func IsZero(tok string) bool {
	return tok == "00" || tok == "0"
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
