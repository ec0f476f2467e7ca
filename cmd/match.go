package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/export"
	"github.com/sells-group/advisor-cli/internal/model"
)

var (
	matchAnswers  answerFlags
	matchFormat   string
	matchOutput   string
	matchParallel bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank model portfolios for a questionnaire",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		answers, _, err := matchAnswers.load()
		if err != nil {
			return err
		}

		svc, closeFn, err := newAdvisor(ctx, false)
		if err != nil {
			return err
		}
		defer closeFn()

		profile, err := svc.Profile(answers)
		if err != nil {
			return eris.Wrap(err, "match")
		}

		var results []model.SuitabilityResult
		if matchParallel {
			if results, err = svc.MatchParallel(ctx, profile); err != nil {
				return eris.Wrap(err, "match")
			}
		} else {
			results = svc.Match(profile)
		}

		out := io.Writer(os.Stdout)
		if matchOutput != "" {
			f, err := os.Create(matchOutput)
			if err != nil {
				return eris.Wrapf(err, "create %s", matchOutput)
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		switch matchFormat {
		case "table":
			formatMatches(out, results)
			return nil
		case "csv":
			return export.WriteMatchesCSV(out, results)
		case "json":
			if results == nil {
				results = []model.SuitabilityResult{}
			}
			return writeJSON(out, results)
		}
		return eris.Errorf("unknown format %q (table, csv, json)", matchFormat)
	},
}

func init() {
	matchAnswers.register(matchCmd)
	matchCmd.Flags().StringVar(&matchFormat, "format", "table", "output format (table, csv, json)")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "", "write to this file instead of stdout")
	matchCmd.Flags().BoolVar(&matchParallel, "parallel", false, "score portfolios concurrently")
	rootCmd.AddCommand(matchCmd)
}
