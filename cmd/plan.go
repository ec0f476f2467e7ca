package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/export"
)

var (
	planAnswers   answerFlags
	planPortfolio string
	planFormat    string
	planOutput    string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build an investment plan for a chosen portfolio",
	RunE: func(cmd *cobra.Command, _ []string) error {
		answers, _, err := planAnswers.load()
		if err != nil {
			return err
		}

		svc, closeFn, err := newAdvisor(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer closeFn()

		plan, err := svc.Plan(answers, planPortfolio)
		if err != nil {
			return eris.Wrap(err, "plan")
		}

		switch planFormat {
		case "text":
			formatPlan(os.Stdout, plan)
			return nil
		case "json":
			if planOutput == "" {
				return writeJSON(os.Stdout, plan)
			}
			f, err := os.Create(planOutput)
			if err != nil {
				return eris.Wrapf(err, "create %s", planOutput)
			}
			defer f.Close() //nolint:errcheck
			return writeJSON(f, plan)
		case "xlsx":
			path := planOutput
			if path == "" {
				path = filepath.Join(cfg.Export.Dir, fmt.Sprintf("plan_%s.xlsx", plan.Summary.PortfolioID))
			}
			if err := export.WritePlanXLSX(path, plan); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Plan written to %s\n", path)
			return nil
		}
		return eris.Errorf("unknown format %q (text, json, xlsx)", planFormat)
	},
}

func init() {
	planAnswers.register(planCmd)
	planCmd.Flags().StringVarP(&planPortfolio, "portfolio", "p", "", "portfolio ID (run the catalog command to list them)")
	planCmd.Flags().StringVar(&planFormat, "format", "text", "output format (text, json, xlsx)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "output file (xlsx default: <export dir>/plan_<portfolio>.xlsx)")
	_ = planCmd.MarkFlagRequired("portfolio")
	rootCmd.AddCommand(planCmd)
}
