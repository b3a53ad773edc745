package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/player"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var (
		speed    float64
		autoplay bool
		debugLog string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the animation in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.loadWorkspace()
			if err != nil {
				return err
			}

			o := player.Options{Speed: speed, Autoplay: autoplay}
			if debugLog != "" {
				f, err := os.OpenFile(debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
				o.DebugLog = f
			}

			return player.Run(cmd.Context(), ws, o)
		},
	}
	addInputFlags(cmd, ctx)
	cmd.Flags().Float64Var(&speed, "speed", 1, "Playback speed factor")
	cmd.Flags().BoolVar(&autoplay, "autoplay", true, "Start playing immediately")
	cmd.Flags().StringVar(&debugLog, "debug-log", "", "Write player diagnostics to this file")
	return cmd
}
