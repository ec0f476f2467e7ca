package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/risk"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the risk questionnaire",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		qs := risk.NewQuestionnaire().Questions()

		switch format {
		case "table":
			formatQuestions(os.Stdout, qs)
			return nil
		case "json":
			return writeJSON(os.Stdout, qs)
		}
		return eris.Errorf("unknown format %q (table, json)", format)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the model portfolios and their labeled holdings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		svc, closeFn, err := newAdvisor(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeFn()

		switch format {
		case "table":
			formatCatalog(os.Stdout, svc.Portfolios())
			return nil
		case "json":
			return writeJSON(os.Stdout, svc.Portfolios())
		}
		return eris.Errorf("unknown format %q (table, json)", format)
	},
}

func init() {
	questionsCmd.Flags().String("format", "table", "output format (table, json)")
	catalogCmd.Flags().String("format", "table", "output format (table, json)")
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(catalogCmd)
}
