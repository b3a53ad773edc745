// The lightseq command decodes, re-encodes, edits, charts and plays timed
// brightness sequences stored in left/right staging buffers.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

const (
	version = "1.0.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// reportError logs a command failure. Commands share no logger with main,
// so a fresh text handler is used.
func reportError(w io.Writer, err error) {
	logger := slog.New(slog.NewTextHandler(w, nil))
	logger.Error("application error", "error", err)
}
