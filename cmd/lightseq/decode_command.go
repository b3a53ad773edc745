package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/sequence"
	"github.com/agleyzer/lightseq/internal/side"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "List the sequences stored in both sides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.loadWorkspace()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range side.Names {
				printSequences(out, ws, n)
			}
			fmt.Fprintf(out, "Total duration: %s\n", formatMs(ws.TotalDuration()))
			return nil
		},
	}
	addInputFlags(cmd, ctx)
	return cmd
}

func printSequences(out io.Writer, ws *side.Workspace, n side.Name) {
	fmt.Fprintf(out, "%s side\n", n.Title())

	seqs := ws.Sequences(n)
	if len(seqs) == 0 {
		fmt.Fprintln(out, "  no sequences")
	} else {
		engine := ws.Engine()
		rows := make([][]string, 0, len(seqs))
		for i, s := range seqs {
			if s == nil {
				rows = append(rows, []string{strconv.Itoa(i + 1), ws.SequenceLabel(n, i), "empty", "", "", "", ""})
				continue
			}
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				ws.SequenceLabel(n, i),
				s.Kind.String(),
				strconv.Itoa(s.Length),
				strconv.Itoa(len(s.Steps())),
				formatMs(engine.Duration(s)),
				sequence.Format(s),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Label", "Kind", "Length", "Steps", "Duration", "Bytes"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
		))
	}

	printUsage(out, ws, n)
}

func printUsage(out io.Writer, ws *side.Workspace, n side.Name) {
	u := ws.Usage(n)
	layout := ws.Config().Layout()
	fmt.Fprintf(out, "Usage: staging1 %d/%d, staging2 %d/%d, total %d/%d",
		u.Staging1Used, layout.Staging1, u.Staging2Used, layout.Staging2, u.Total, layout.Capacity())
	if u.Overflow {
		fmt.Fprint(out, " (overflow, excess bytes are dropped)")
	}
	fmt.Fprintln(out)
}

func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + " ms"
}
