package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/advisor-cli/internal/advisor"
	"github.com/sells-group/advisor-cli/internal/export"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/risk"
)

// answerFlags are shared by every command that takes questionnaire answers.
type answerFlags struct {
	file        string
	overrides   []string
	interactive bool
}

func (f *answerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "answers", "", "answers file (YAML or JSON)")
	cmd.Flags().StringArrayVar(&f.overrides, "answer", nil, "answer override as question_id=value (repeatable)")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "ask each question on the terminal")
}

// load returns the answers and any user ID found in the answers file. In
// interactive mode only the questions not already answered are asked.
func (f *answerFlags) load() (model.AnswerSet, string, error) {
	if !f.interactive && f.file == "" && len(f.overrides) == 0 {
		return nil, "", eris.New("provide --answers, --answer or --interactive")
	}
	answers, user, err := loadAnswers(f.file, f.overrides)
	if err != nil {
		return nil, "", err
	}
	if !f.interactive {
		return answers, user, nil
	}

	var pending []model.Question
	for _, q := range risk.NewQuestionnaire().Questions() {
		if _, ok := answers[q.ID]; !ok {
			pending = append(pending, q)
		}
	}
	prompted, err := promptAnswers(os.Stdin, os.Stderr, pending)
	if err != nil {
		return nil, "", err
	}
	for k, v := range prompted {
		answers[k] = v
	}
	return answers, user, nil
}

var (
	assessAnswers answerFlags
	assessUser    string
	assessSave    bool
	assessExport  string
	assessFormat  string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a questionnaire and match portfolios",
	Long:  "Builds a risk profile from questionnaire answers, ranks the model portfolios, and optionally saves the assessment and writes the profile to a JSON file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		answers, fileUser, err := assessAnswers.load()
		if err != nil {
			return err
		}
		user := assessUser
		if user == "" {
			user = fileUser
		}

		a, err := runAssess(cmd.Context(), answers, user, assessSave)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("export-dir") || assessExport != "" {
			dir := assessExport
			if dir == "" {
				dir = cfg.Export.Dir
			}
			path, err := export.WriteProfile(dir, user, &a.Profile, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Profile written to %s\n", path)
		}

		switch assessFormat {
		case "json":
			return writeJSON(os.Stdout, a)
		case "text":
			formatProfile(os.Stdout, &a.Profile)
			fmt.Fprintln(os.Stdout, "\nMatches:")
			formatMatches(os.Stdout, a.Matches)
			if assessSave {
				fmt.Fprintf(os.Stdout, "\nSaved assessment %s\n", a.ID)
			}
			return nil
		}
		return eris.Errorf("unknown format %q (text, json)", assessFormat)
	},
}

func runAssess(ctx context.Context, answers model.AnswerSet, user string, save bool) (*model.Assessment, error) {
	var (
		svc     *advisor.Service
		closeFn func()
		err     error
	)
	if save {
		svc, closeFn, err = requireStore(ctx)
	} else {
		svc, closeFn, err = newAdvisor(ctx, false)
	}
	if err != nil {
		return nil, err
	}
	defer closeFn()

	a, err := svc.Assess(ctx, user, answers)
	if err != nil {
		return nil, eris.Wrap(err, "assess")
	}
	return a, nil
}

func init() {
	assessAnswers.register(assessCmd)
	assessCmd.Flags().StringVar(&assessUser, "user", "", "user ID recorded with the assessment")
	assessCmd.Flags().BoolVar(&assessSave, "save", false, "save the assessment to the configured store")
	assessCmd.Flags().StringVar(&assessExport, "export-dir", "", "write risk_profile_<user>_<timestamp>.json to this directory (default from config)")
	assessCmd.Flags().StringVar(&assessFormat, "format", "text", "output format (text, json)")
	rootCmd.AddCommand(assessCmd)
}
