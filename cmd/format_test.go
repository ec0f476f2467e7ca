package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/risk"
)

func workedAnswers() model.AnswerSet {
	return model.AnswerSet{
		risk.QInvestmentGoal:            3,
		risk.QLossTolerance:             3,
		risk.QVolatilityComfort:         3,
		risk.QRiskScenarios:             3,
		risk.QMarketConditions:          3,
		risk.QPortfolioSize:             2,
		risk.QExperienceLevel:           2,
		risk.QDiversificationPreference: 3,
		risk.QInvestmentHorizon:         4,
		risk.QLiquidityNeeds:            4,
	}
}

// withConfig installs a CLI config for the duration of the test.
func withConfig(t *testing.T, driver, dsn string) {
	t.Helper()
	prev := cfg
	cfg = &config.Config{
		Store:    config.StoreConfig{Driver: driver, DatabaseURL: dsn},
		Matcher:  config.DefaultMatcherConfig(),
		Strategy: config.DefaultStrategyConfig(),
		Retry:    config.RetryConfig{MaxAttempts: 1},
		Export:   config.ExportConfig{Dir: t.TempDir()},
	}
	t.Cleanup(func() { cfg = prev })
}

func TestFormatQuestions(t *testing.T) {
	var buf bytes.Buffer
	formatQuestions(&buf, risk.NewQuestionnaire().Questions())
	out := buf.String()
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "[investment_goal, weight 20%]")
	assert.Contains(t, out, "[investment_horizon, profile only]")
}

func TestFormatCatalog(t *testing.T) {
	withConfig(t, config.DriverNone, "")
	svc, closeFn, err := newAdvisor(context.Background(), false)
	require.NoError(t, err)
	defer closeFn()

	var buf bytes.Buffer
	formatCatalog(&buf, svc.Portfolios())
	out := buf.String()
	assert.Contains(t, out, "(growth)")
	assert.Contains(t, out, "QQQ")
	assert.Contains(t, out, "Technology")
}

func TestFormatProfileAndMatches(t *testing.T) {
	withConfig(t, config.DriverNone, "")
	a, err := runAssess(context.Background(), workedAnswers(), "alice", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	formatProfile(&buf, &a.Profile)
	assert.Contains(t, buf.String(), "70.00/100")
	assert.Contains(t, buf.String(), "Aggressive")
	assert.Contains(t, buf.String(), "Long Term")

	buf.Reset()
	formatMatches(&buf, a.Matches)
	assert.Contains(t, buf.String(), "RANK")
	assert.Contains(t, buf.String(), "Growth")

	buf.Reset()
	formatMatches(&buf, nil)
	assert.Equal(t, noMatchMessage+"\n", buf.String())
}

func TestFormatPlan(t *testing.T) {
	withConfig(t, config.DriverNone, "")
	svc, closeFn, err := newAdvisor(context.Background(), false)
	require.NoError(t, err)
	defer closeFn()

	p, err := svc.Plan(workedAnswers(), "growth")
	require.NoError(t, err)

	var buf bytes.Buffer
	formatPlan(&buf, p)
	out := buf.String()
	assert.Contains(t, out, "Allocation:")
	assert.Contains(t, out, "Sector: ")
	assert.Contains(t, out, "Steps:")
	assert.Contains(t, out, "  5. ")
}

func TestFormatStrategies(t *testing.T) {
	withConfig(t, config.DriverNone, "")
	svc, closeFn, err := newAdvisor(context.Background(), false)
	require.NoError(t, err)
	defer closeFn()

	r, err := svc.RecommendStrategies(workedAnswers())
	require.NoError(t, err)

	var buf bytes.Buffer
	formatStrategies(&buf, r)
	out := buf.String()
	assert.Contains(t, out, "EMA Crossover Strategy")
	assert.Contains(t, out, "Cash Reserve")
	assert.Contains(t, out, "20.0%")
	assert.Contains(t, out, "Rebalance weekly.")

	buf.Reset()
	formatStrategies(&buf, &model.StrategyReport{})
	assert.Equal(t, noStrategyMatchMessage+"\n", buf.String())

	buf.Reset()
	formatStrategyCatalog(&buf, svc.Strategies())
	assert.Contains(t, buf.String(), "leverage")
	assert.Contains(t, buf.String(), "Very Aggressive")
}

func TestFormatAssessments(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	formatAssessments(&buf, []model.Assessment{{
		ID:        "abc12345-6789-0000-0000-000000000000",
		UserID:    "alice",
		Profile:   model.RiskProfile{Score: 70, Tolerance: model.Aggressive},
		Matches:   []model.SuitabilityResult{{Portfolio: &model.Portfolio{ID: "growth"}, Score: 100}},
		CreatedAt: at,
	}})
	out := buf.String()
	assert.Contains(t, out, "abc12345")
	assert.NotContains(t, out, "abc12345-6789")
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "growth")
	assert.Contains(t, out, "2026-03-01 09:30")
}

func TestInitStore(t *testing.T) {
	ctx := context.Background()

	withConfig(t, config.DriverNone, "")
	st, err := initStore(ctx)
	require.NoError(t, err)
	assert.Nil(t, st)

	_, _, err = requireStore(ctx)
	assert.Error(t, err)

	withConfig(t, "mongo", "x")
	_, err = initStore(ctx)
	assert.Error(t, err)

	withConfig(t, config.DriverSQLite, filepath.Join(t.TempDir(), "cli.db"))
	a, err := runAssess(ctx, workedAnswers(), "alice", true)
	require.NoError(t, err)

	svc, closeFn, err := requireStore(ctx)
	require.NoError(t, err)
	defer closeFn()
	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
}
