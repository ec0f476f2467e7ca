package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved assessments",
}

// -- history list --

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved assessments, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		user, _ := cmd.Flags().GetString("user")
		tolerance, _ := cmd.Flags().GetString("tolerance")
		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("format")

		if tolerance != "" {
			if _, err := model.ParseTolerance(tolerance); err != nil {
				return err
			}
		}

		svc, closeFn, err := requireStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		list, err := svc.List(ctx, store.AssessmentFilter{UserID: user, Tolerance: tolerance, Limit: limit})
		if err != nil {
			return eris.Wrap(err, "history list")
		}

		if format == "json" {
			return writeJSON(os.Stdout, list)
		}
		if len(list) == 0 {
			fmt.Fprintln(os.Stderr, "No assessments found.")
			return nil
		}
		formatAssessments(os.Stdout, list)
		return nil
	},
}

// -- history show --

var historyShowCmd = &cobra.Command{
	Use:   "show <assessment-id>",
	Short: "Show a saved assessment as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, closeFn, err := requireStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		a, err := svc.Get(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "history show")
		}
		return writeJSON(os.Stdout, a)
	},
}

// -- history delete --

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <assessment-id>",
	Short: "Delete a saved assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, closeFn, err := requireStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := svc.Delete(ctx, args[0]); err != nil {
			return eris.Wrap(err, "history delete")
		}
		fmt.Fprintf(os.Stderr, "Deleted assessment %s\n", args[0])
		return nil
	},
}

func init() {
	historyListCmd.Flags().String("user", "", "filter by user ID")
	historyListCmd.Flags().String("tolerance", "", "filter by risk tolerance (conservative, moderate, aggressive, very_aggressive)")
	historyListCmd.Flags().Int("limit", 50, "max number of assessments to display")
	historyListCmd.Flags().String("format", "table", "output format (table, json)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
