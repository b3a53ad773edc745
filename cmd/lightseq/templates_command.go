package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agleyzer/lightseq/internal/side"
	"github.com/agleyzer/lightseq/internal/template"
)

func newTemplatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "templates <dir>",
		Short: "List and validate the templates in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			templates, err := template.LoadDir(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(templates) == 0 {
				fmt.Fprintln(out, "No templates found")
				return nil
			}

			rows := make([][]string, 0, len(templates))
			var problems []string
			for _, t := range templates {
				ws := side.New(cfg, ctx.logger)
				t.Apply(ws)

				issues := t.Validate()
				for _, issue := range issues {
					problems = append(problems, fmt.Sprintf("%s: %s", t.Name, issue))
				}

				rows = append(rows, []string{
					t.Name,
					strconv.Itoa(len(ws.Sequences(side.Left))),
					strconv.Itoa(len(ws.Sequences(side.Right))),
					formatMs(ws.TotalDuration()),
					strconv.Itoa(len(issues)),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Template", "Left", "Right", "Duration", "Issues"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			for _, p := range problems {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
