package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	strategiesAnswers answerFlags
	strategiesFormat  string
	strategiesList    bool
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "Recommend trading strategies for a questionnaire",
	Long:  "Scores the trading strategy catalog against the risk profile, keeps the best matches, and splits capital across them with a cash reserve. With --list, prints the catalog instead.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, closeFn, err := newAdvisor(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeFn()

		if strategiesList {
			switch strategiesFormat {
			case "table":
				formatStrategyCatalog(os.Stdout, svc.Strategies())
				return nil
			case "json":
				return writeJSON(os.Stdout, svc.Strategies())
			}
			return eris.Errorf("unknown format %q (table, json)", strategiesFormat)
		}

		answers, _, err := strategiesAnswers.load()
		if err != nil {
			return err
		}
		report, err := svc.RecommendStrategies(answers)
		if err != nil {
			return eris.Wrap(err, "strategies")
		}

		switch strategiesFormat {
		case "table":
			formatStrategies(os.Stdout, report)
			return nil
		case "json":
			return writeJSON(os.Stdout, report)
		}
		return eris.Errorf("unknown format %q (table, json)", strategiesFormat)
	},
}

func init() {
	strategiesAnswers.register(strategiesCmd)
	strategiesCmd.Flags().StringVar(&strategiesFormat, "format", "table", "output format (table, json)")
	strategiesCmd.Flags().BoolVar(&strategiesList, "list", false, "list the strategy catalog")
	rootCmd.AddCommand(strategiesCmd)
}
