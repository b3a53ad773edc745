package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/side"
)

// editTarget is the side and 1-based sequence number an edit applies to.
type editTarget struct {
	side  string
	index int
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one sequence and print the re-encoded buffers",
	}

	editCmd.AddCommand(newEditSetCommand(ctx))
	editCmd.AddCommand(newEditAddStepCommand(ctx))
	editCmd.AddCommand(newEditRemoveStepCommand(ctx))
	editCmd.AddCommand(newEditUpdateStepCommand(ctx))

	return editCmd
}

// newEditSubcommand wires the shared input and target flags around apply,
// which reports whether the edit changed anything.
func newEditSubcommand(ctx *commandContext, use, short string, apply func(ws *side.Workspace, n side.Name, i int) bool) *cobra.Command {
	target := &editTarget{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := side.ParseName(target.side)
			if err != nil {
				return err
			}
			ws, err := ctx.loadWorkspace()
			if err != nil {
				return err
			}
			if !apply(ws, n, target.index-1) {
				return fmt.Errorf("%s: nothing to edit at %s sequence #%d", cmd.Name(), n, target.index)
			}
			ctx.logger.Debug("sequence edited", "op", cmd.Name(), "side", string(n), "index", target.index)
			printStaging(cmd.OutOrStdout(), ws)
			return nil
		},
	}
	addInputFlags(cmd, ctx)
	cmd.Flags().StringVar(&target.side, "side", string(side.Left), "Side to edit (left or right)")
	cmd.Flags().IntVar(&target.index, "index", 1, "Sequence number, starting at 1")

	return cmd
}

func newEditSetCommand(ctx *commandContext) *cobra.Command {
	var text string
	cmd := newEditSubcommand(ctx, "set", "Replace, append or clear a sequence from byte text",
		func(ws *side.Workspace, n side.Name, i int) bool {
			return ws.SetSequenceFromText(n, i, text)
		})
	cmd.Flags().StringVar(&text, "text", "", "Sequence bytes; empty clears the slot")
	return cmd
}

func newEditAddStepCommand(ctx *commandContext) *cobra.Command {
	cmd := newEditSubcommand(ctx, "add-step", "Append a default step to a sequence",
		func(ws *side.Workspace, n side.Name, i int) bool {
			return ws.AddStep(n, i)
		})
	return cmd
}

func newEditRemoveStepCommand(ctx *commandContext) *cobra.Command {
	var step int
	cmd := newEditSubcommand(ctx, "remove-step", "Remove one step from a sequence",
		func(ws *side.Workspace, n side.Name, i int) bool {
			return ws.RemoveStep(n, i, step-1)
		})
	cmd.Flags().IntVar(&step, "step", 1, "Step number, starting at 1")
	return cmd
}

func newEditUpdateStepCommand(ctx *commandContext) *cobra.Command {
	var (
		step  int
		field string
		value int
		f     side.Field
	)
	cmd := newEditSubcommand(ctx, "update-step", "Set the duration or brightness of a step",
		func(ws *side.Workspace, n side.Name, i int) bool {
			return ws.UpdateStep(n, i, step-1, f, value)
		})
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		var ok bool
		if f, ok = parseField(field); !ok {
			return fmt.Errorf("unknown field %q (want duration or brightness)", field)
		}
		return nil
	}
	cmd.Flags().IntVar(&step, "step", 1, "Step number, starting at 1")
	cmd.Flags().StringVar(&field, "field", side.FieldBrightness.String(), "Field to set (duration or brightness)")
	cmd.Flags().IntVar(&value, "value", 0, "New value; duration in units, brightness in percent")
	return cmd
}

func parseField(s string) (side.Field, bool) {
	for _, f := range []side.Field{side.FieldDuration, side.FieldBrightness} {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}
