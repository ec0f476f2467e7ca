package advisor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/catalog"
	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/labels"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/resilience"
	"github.com/sells-group/advisor-cli/internal/risk"
	"github.com/sells-group/advisor-cli/internal/store"
	"github.com/sells-group/advisor-cli/internal/strategy"
)

// memStore is an in-memory store.Store. failSaves makes the next N saves
// return failErr.
type memStore struct {
	mu        sync.Mutex
	rows      map[string]model.Assessment
	saves     int
	failSaves int
	failErr   error
}

func newMemStore() *memStore { return &memStore{rows: map[string]model.Assessment{}} }

func (m *memStore) SaveAssessment(_ context.Context, a *model.Assessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.failSaves > 0 {
		m.failSaves--
		return m.failErr
	}
	m.rows[a.ID] = *a
	return nil
}

func (m *memStore) GetAssessment(_ context.Context, id string) (*model.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) ListAssessments(_ context.Context, f store.AssessmentFilter) ([]model.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Assessment{}
	for _, a := range m.rows {
		if f.UserID == "" || a.UserID == f.UserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) DeleteAssessment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memStore) Migrate(context.Context) error { return nil }
func (m *memStore) Close() error                  { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Matcher:  config.DefaultMatcherConfig(),
		Strategy: config.DefaultStrategyConfig(),
		Retry:    config.RetryConfig{MaxAttempts: 3, InitialBackoffMs: 1, MaxBackoffMs: 2},
	}
}

func newTestService(st store.Store) *Service {
	s := New(testConfig(), catalog.New(labels.New()), st)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "assessment-1" }
	return s
}

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

func matchIDs(rs []model.SuitabilityResult) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Portfolio.ID
	}
	return out
}

func TestAssess_NoStore(t *testing.T) {
	s := newTestService(nil)
	a, err := s.Assess(context.Background(), "alice", workedAnswers())
	require.NoError(t, err)

	assert.Equal(t, "assessment-1", a.ID)
	assert.Equal(t, "alice", a.UserID)
	assert.InDelta(t, 70, a.Profile.Score, 1e-9)
	assert.Equal(t, model.Aggressive, a.Profile.Tolerance)
	assert.Equal(t, []string{catalog.Growth, catalog.Core, catalog.ESG}, matchIDs(a.Matches))
	assert.Equal(t, s.ConfigHash(), a.ConfigHash)
	assert.False(t, s.HasStore())
}

func TestAssess_SavesToStore(t *testing.T) {
	st := newMemStore()
	s := newTestService(st)

	a, err := s.Assess(context.Background(), "alice", workedAnswers())
	require.NoError(t, err)

	got, err := s.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Profile, got.Profile)

	list, err := s.List(context.Background(), store.AssessmentFilter{UserID: "alice"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.Delete(context.Background(), a.ID))
	_, err = s.Get(context.Background(), a.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAssess_RetriesTransientSave(t *testing.T) {
	st := newMemStore()
	st.failSaves = 2
	st.failErr = resilience.NewTransientError(errors.New("database is locked"))
	s := newTestService(st)

	_, err := s.Assess(context.Background(), "alice", workedAnswers())
	require.NoError(t, err)
	assert.Equal(t, 3, st.saves)
}

func TestAssess_PermanentSaveError(t *testing.T) {
	st := newMemStore()
	st.failSaves = 1
	st.failErr = errors.New("disk full")
	s := newTestService(st)

	_, err := s.Assess(context.Background(), "alice", workedAnswers())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advisor: save assessment")
	assert.Equal(t, 1, st.saves)
}

func TestAssess_AnswerErrors(t *testing.T) {
	st := newMemStore()
	s := newTestService(st)

	answers := workedAnswers()
	delete(answers, risk.QLossTolerance)
	_, err := s.Assess(context.Background(), "alice", answers)
	require.Error(t, err)
	assert.ErrorIs(t, err, risk.ErrMissingAnswer)

	var ae *risk.AnswerError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, risk.QLossTolerance, ae.QuestionID)
	assert.Zero(t, st.saves)
}

func TestHistory_NoStore(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()

	_, err := s.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = s.List(ctx, store.AssessmentFilter{})
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, s.Delete(ctx, "x"), ErrNoStore)
}

func TestRecommendStrategies(t *testing.T) {
	s := newTestService(nil)

	r, err := s.RecommendStrategies(workedAnswers())
	require.NoError(t, err)
	assert.Equal(t, model.Aggressive, r.Profile.Tolerance)

	ids := make([]string, len(r.Strategies))
	for i, m := range r.Strategies {
		ids[i] = m.Strategy.ID
	}
	assert.Equal(t, []string{
		strategy.EMACrossover,
		strategy.BollingerReversion,
		strategy.RSIMeanReversion,
		strategy.MultiTimeframe,
		strategy.DCA,
	}, ids)

	require.Len(t, r.Portfolio.Strategies, 5)
	assert.InDelta(t, 0.2, r.Portfolio.CashReserve, 1e-9)
	assert.Equal(t, "Weekly", r.Portfolio.Rebalancing)
	assert.Len(t, s.Strategies(), 8)

	_, err = s.RecommendStrategies(model.AnswerSet{risk.QInvestmentGoal: 9})
	assert.ErrorIs(t, err, risk.ErrInvalidAnswerValue)
}

func TestStrategiesFor_NoneSuitable(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy.MinScore = 100
	s := New(cfg, catalog.New(labels.New()), nil)

	r := s.StrategiesFor(&model.RiskProfile{Tolerance: model.Conservative, ExperienceLevel: model.Beginner, Horizon: model.ShortTerm})
	assert.NotNil(t, r.Strategies)
	assert.Empty(t, r.Strategies)
	assert.InDelta(t, 1.0, r.Portfolio.CashReserve, 1e-9)
}

func TestPlan(t *testing.T) {
	s := newTestService(nil)

	p, err := s.Plan(workedAnswers(), "GROWTH")
	require.NoError(t, err)
	assert.Equal(t, catalog.Growth, p.Summary.PortfolioID)
	assert.Equal(t, model.Aggressive, p.Summary.Tolerance)

	total := 0
	for _, line := range p.Allocation {
		total += line.Percent
	}
	assert.Equal(t, 100, total)

	_, err = s.Plan(workedAnswers(), "moonshot")
	assert.ErrorIs(t, err, catalog.ErrUnknownPortfolio)

	_, err = s.Plan(model.AnswerSet{}, catalog.Growth)
	assert.ErrorIs(t, err, risk.ErrMissingAnswer)
}

func TestMatchParallelEqualsMatch(t *testing.T) {
	s := newTestService(nil)
	profile, err := s.Profile(workedAnswers())
	require.NoError(t, err)

	par, err := s.MatchParallel(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, matchIDs(s.Match(profile)), matchIDs(par))
}

func TestCatalogAccessors(t *testing.T) {
	s := newTestService(nil)
	assert.Len(t, s.Questions(), 10)
	assert.Len(t, s.Portfolios(), 6)

	p, err := s.Portfolio(catalog.Defensive)
	require.NoError(t, err)
	assert.Equal(t, catalog.Defensive, p.ID)
}

func TestConfigHashChangesWithMatcherConfig(t *testing.T) {
	cfg := testConfig()
	a := New(cfg, catalog.New(labels.New()), nil)

	cfg.Matcher.MinScore = 70
	b := New(cfg, catalog.New(labels.New()), nil)

	assert.NotEqual(t, a.ConfigHash(), b.ConfigHash())
	assert.Len(t, a.ConfigHash(), 32)
}
