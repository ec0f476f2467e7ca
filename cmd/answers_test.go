package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/risk"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswers(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		overrides []string
		want      model.AnswerSet
		wantUser  string
	}{
		{
			name:    "flat yaml",
			file:    "a.yaml",
			content: "investment_goal: 3\nloss_tolerance: 2\n",
			want:    model.AnswerSet{"investment_goal": 3, "loss_tolerance": 2},
		},
		{
			name:     "nested yaml with user",
			file:     "a.yaml",
			content:  "user_id: alice\nanswers:\n  investment_goal: 4\n",
			want:     model.AnswerSet{"investment_goal": 4},
			wantUser: "alice",
		},
		{
			name:    "json",
			file:    "a.json",
			content: `{"answers": {"investment_goal": 1, "liquidity_needs": 5}}`,
			want:    model.AnswerSet{"investment_goal": 1, "liquidity_needs": 5},
		},
		{
			name:      "overrides win",
			file:      "a.yaml",
			content:   "investment_goal: 3\n",
			overrides: []string{"investment_goal=1", " loss_tolerance = 4 "},
			want:      model.AnswerSet{"investment_goal": 1, "loss_tolerance": 4},
		},
		{
			name:      "overrides only",
			overrides: []string{"investment_goal=2"},
			want:      model.AnswerSet{"investment_goal": 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file, tt.content)
			}
			got, user, err := loadAnswers(path, tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestLoadAnswers_Errors(t *testing.T) {
	_, _, err := loadAnswers(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	_, _, err = loadAnswers(writeFile(t, "bad.yaml", "investment_goal: [1, 2\n"), nil)
	assert.Error(t, err)

	structured := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty block", "user_id: bob\nanswers: {}\n", "answers block is empty"},
		{"null block", "user_id: bob\nanswers:\n", "answers block is empty"},
		{"non-integer value", "user_id: bob\nanswers:\n  investment_goal: high\n", "answers block"},
	}
	for _, tt := range structured {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadAnswers(writeFile(t, "answers.yaml", tt.body), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	for _, o := range []string{"investment_goal", "=3", "investment_goal=high"} {
		_, _, err = loadAnswers("", []string{o})
		assert.Error(t, err, o)
	}
}

func TestPromptAnswers(t *testing.T) {
	q := risk.NewQuestionnaire()
	goal, ok := q.Question(risk.QInvestmentGoal)
	require.True(t, ok)
	horizon, ok := q.Question(risk.QInvestmentHorizon)
	require.True(t, ok)

	in := strings.NewReader("9\nabc\n3\n2\n")
	var out bytes.Buffer
	got, err := promptAnswers(in, &out, []model.Question{goal, horizon})
	require.NoError(t, err)
	assert.Equal(t, model.AnswerSet{risk.QInvestmentGoal: 3, risk.QInvestmentHorizon: 2}, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter one of the listed option numbers."))
	assert.Contains(t, out.String(), goal.Text)
}

func TestPromptAnswers_EOF(t *testing.T) {
	q := risk.NewQuestionnaire()
	_, err := promptAnswers(strings.NewReader("1\n"), &bytes.Buffer{}, q.Questions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input ended")
}
