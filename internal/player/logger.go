package player

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newDebugLogger returns an hclog.Logger writing to w, or a silent logger
// when w is nil. The player owns the terminal, so its diagnostics go to a
// separate writer.
func newDebugLogger(w io.Writer) hclog.Logger {
	if w == nil {
		return hclog.NewNullLogger()
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "player",
		Level:  hclog.Debug,
		Output: w,
	})
}
