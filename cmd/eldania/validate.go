package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fourforfour/eldanialight/internal/validate"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the content document for broken references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			report, err := validate.Run(cmd.Context(), engine)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errorIssues := report.Errors()
			warnIssues := report.Warnings()

			if len(errorIssues) == 0 && len(warnIssues) == 0 {
				fmt.Fprintln(out, "No issues found.")
				return nil
			}

			if len(errorIssues) > 0 {
				fmt.Fprintf(out, "Errors (%d):\n", len(errorIssues))
				printIssues(out, errorIssues)
			}
			if len(warnIssues) > 0 {
				if len(errorIssues) > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "Warnings (%d):\n", len(warnIssues))
				printIssues(out, warnIssues)
			}

			if len(errorIssues) > 0 {
				return fmt.Errorf("validation found errors")
			}
			return nil
		},
	}
}

func printIssues(out io.Writer, issues []validate.Issue) {
	for _, issue := range issues {
		fmt.Fprintf(out, "  - %s [%s]: %s (%s)\n", issue.Entry, issue.Category, issue.Message, issue.Code)
	}
}
