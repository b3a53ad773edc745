package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/side"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode",
		Aliases: []string{"normalize"},
		Short:   "Re-encode both sides into padded staging buffers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.loadWorkspace()
			if err != nil {
				return err
			}
			for _, n := range side.Names {
				ws.Reencode(n)
			}
			printStaging(cmd.OutOrStdout(), ws)
			return nil
		},
	}
	addInputFlags(cmd, ctx)
	return cmd
}

func newCopyCommand(ctx *commandContext) *cobra.Command {
	var (
		from  string
		index int
	)

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy one sequence to the same slot on the other side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := side.ParseName(from)
			if err != nil {
				return err
			}
			ws, err := ctx.loadWorkspace()
			if err != nil {
				return err
			}
			if !ws.CopySequence(src, index-1) {
				return fmt.Errorf("%s side has no sequence #%d", src.Title(), index)
			}
			printStaging(cmd.OutOrStdout(), ws)
			return nil
		},
	}
	addInputFlags(cmd, ctx)
	cmd.Flags().StringVar(&from, "from", string(side.Left), "Source side (left or right)")
	cmd.Flags().IntVar(&index, "index", 1, "Sequence number to copy, starting at 1")
	return cmd
}

func printStaging(out io.Writer, ws *side.Workspace) {
	for _, n := range side.Names {
		s1, s2 := ws.StagingText(n)
		fmt.Fprintf(out, "%s Staging1_Data:\n%s\n", n.Title(), s1)
		fmt.Fprintf(out, "%s Staging2_Data:\n%s\n", n.Title(), s2)
		printUsage(out, ws, n)
	}
}
