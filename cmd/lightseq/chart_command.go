package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/chart"
)

func newChartCommand(ctx *commandContext) *cobra.Command {
	var (
		output   string
		index    int
		position float64
		title    string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render brightness diagrams to an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.loadWorkspace()
			if err != nil {
				return err
			}

			o := chart.DefaultOptions()
			o.Position = position
			if title != "" {
				o.PageTitle = title
			}
			r := chart.New(ws, o)

			render := r.Render
			if index > 0 {
				render = func(w io.Writer) error { return r.RenderOne(w, index-1) }
			}

			if output == "-" {
				return render(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create chart file: %w", err)
			}
			if err := render(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close chart file: %w", err)
			}

			ctx.logger.Info("chart written", "path", output, "diagrams", ws.Slots())
			return nil
		},
	}
	addInputFlags(cmd, ctx)
	cmd.Flags().StringVarP(&output, "output", "o", "lightseq.html", "Output file, - for stdout")
	cmd.Flags().IntVar(&index, "index", 0, "Render only this diagram number, starting at 1")
	cmd.Flags().Float64Var(&position, "position", -1, "Draw a playhead at this time in ms")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	return cmd
}
