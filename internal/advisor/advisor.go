// Package advisor runs the questionnaire → profile → match → plan flow and
// records assessments when a store is configured.
package advisor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/catalog"
	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/plan"
	"github.com/sells-group/advisor-cli/internal/resilience"
	"github.com/sells-group/advisor-cli/internal/risk"
	"github.com/sells-group/advisor-cli/internal/scorer"
	"github.com/sells-group/advisor-cli/internal/store"
	"github.com/sells-group/advisor-cli/internal/strategy"
)

// ErrNoStore is returned by history operations when persistence is disabled.
var ErrNoStore = eris.New("advisor: no store configured")

// Service is the advisor. It holds only immutable catalogs and is safe for
// concurrent use; the store is the only stateful dependency.
type Service struct {
	questions   *risk.Questionnaire
	builder     *risk.ProfileBuilder
	catalog     *catalog.Catalog
	matcher     *scorer.Matcher
	planner     *plan.Generator
	strategies  *strategy.Catalog
	recommender *strategy.Recommender
	store       store.Store
	retry       resilience.RetryConfig
	breaker     *resilience.Breaker
	configHash  string

	now   func() time.Time
	newID func() string
}

// New creates a Service. st may be nil, in which case assessments are not
// persisted and history operations return ErrNoStore.
func New(cfg *config.Config, cat *catalog.Catalog, st store.Store) *Service {
	q := risk.NewQuestionnaire()

	retry := resilience.FromConfig(cfg.Retry)
	retry.OnRetry = resilience.RetryLogger("store")

	breakerCfg := resilience.DefaultBreakerConfig()
	breakerCfg.ShouldTrip = resilience.IsTransient
	breakerCfg.OnStateChange = func(from, to resilience.State) {
		zap.L().Warn("advisor: store circuit state change",
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}

	strategies := strategy.NewCatalog()

	return &Service{
		questions:   q,
		builder:     risk.NewProfileBuilder(q),
		catalog:     cat,
		matcher:     scorer.NewMatcher(cat, cfg.Matcher),
		planner:     plan.NewGenerator(),
		strategies:  strategies,
		recommender: strategy.NewRecommender(strategies, cfg.Strategy),
		store:       st,
		retry:       retry,
		breaker:     resilience.NewBreaker(breakerCfg),
		configHash:  scorer.ConfigHash(cfg.Matcher),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.New().String() },
	}
}

// Questions returns the questionnaire in declaration order.
func (s *Service) Questions() []model.Question { return s.questions.Questions() }

// Portfolios returns the catalog in catalog order.
func (s *Service) Portfolios() []*model.Portfolio { return s.catalog.All() }

// Portfolio looks up one portfolio by ID.
func (s *Service) Portfolio(id string) (*model.Portfolio, error) { return s.catalog.Get(id) }

// ConfigHash identifies the matcher settings that produced an assessment.
func (s *Service) ConfigHash() string { return s.configHash }

// HasStore reports whether assessments are persisted.
func (s *Service) HasStore() bool { return s.store != nil }

// Profile scores the answers and builds the risk profile.
func (s *Service) Profile(answers model.AnswerSet) (*model.RiskProfile, error) {
	return s.builder.Build(answers)
}

// Match ranks the catalog against a profile.
func (s *Service) Match(profile *model.RiskProfile) []model.SuitabilityResult {
	return s.matcher.Match(profile)
}

// MatchParallel is Match with per-portfolio scoring fanned out.
func (s *Service) MatchParallel(ctx context.Context, profile *model.RiskProfile) ([]model.SuitabilityResult, error) {
	return s.matcher.MatchParallel(ctx, profile)
}

// Assess builds the profile and matches for one questionnaire and saves the
// assessment when a store is configured.
func (s *Service) Assess(ctx context.Context, userID string, answers model.AnswerSet) (*model.Assessment, error) {
	profile, err := s.builder.Build(answers)
	if err != nil {
		return nil, err
	}

	a := &model.Assessment{
		ID:         s.newID(),
		UserID:     userID,
		Answers:    answers,
		Profile:    *profile,
		Matches:    s.matcher.Match(profile),
		ConfigHash: s.configHash,
		CreatedAt:  s.now(),
	}

	log := zap.L().With(zap.String("assessment_id", a.ID), zap.String("user_id", userID))
	log.Info("advisor: assessment complete",
		zap.Float64("score", profile.Score),
		zap.String("risk_tolerance", profile.Tolerance.String()),
		zap.Int("matches", len(a.Matches)),
	)

	if s.store == nil {
		return a, nil
	}
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}
	log.Debug("advisor: assessment saved")
	return a, nil
}

// Plan builds an investment plan for answers and a chosen portfolio.
func (s *Service) Plan(answers model.AnswerSet, portfolioID string) (*model.InvestmentPlan, error) {
	profile, err := s.builder.Build(answers)
	if err != nil {
		return nil, err
	}
	return s.PlanFor(profile, portfolioID)
}

// PlanFor builds an investment plan from an existing profile.
func (s *Service) PlanFor(profile *model.RiskProfile, portfolioID string) (*model.InvestmentPlan, error) {
	p, err := s.catalog.Get(portfolioID)
	if err != nil {
		return nil, err
	}
	return s.planner.Generate(profile, p), nil
}

// Strategies returns the trading strategy catalog in declaration order.
func (s *Service) Strategies() []*model.Strategy { return s.strategies.All() }

// RecommendStrategies builds the profile for answers and recommends trading
// strategies with a capital split across them.
func (s *Service) RecommendStrategies(answers model.AnswerSet) (*model.StrategyReport, error) {
	profile, err := s.builder.Build(answers)
	if err != nil {
		return nil, err
	}
	return s.StrategiesFor(profile), nil
}

// StrategiesFor recommends trading strategies for an existing profile.
func (s *Service) StrategiesFor(profile *model.RiskProfile) *model.StrategyReport {
	matches := s.recommender.Recommend(profile)
	if matches == nil {
		matches = []model.StrategyMatch{}
	}
	return &model.StrategyReport{
		Profile:    profile,
		Strategies: matches,
		Portfolio:  s.recommender.Allocate(profile, matches),
	}
}

// Get loads a saved assessment.
func (s *Service) Get(ctx context.Context, id string) (*model.Assessment, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return resilience.ExecuteVal(ctx, s.breaker, func(ctx context.Context) (*model.Assessment, error) {
		return resilience.DoVal(ctx, s.retry, func(ctx context.Context) (*model.Assessment, error) {
			return s.store.GetAssessment(ctx, id)
		})
	})
}

// List returns saved assessments, newest first.
func (s *Service) List(ctx context.Context, filter store.AssessmentFilter) ([]model.Assessment, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return resilience.ExecuteVal(ctx, s.breaker, func(ctx context.Context) ([]model.Assessment, error) {
		return resilience.DoVal(ctx, s.retry, func(ctx context.Context) ([]model.Assessment, error) {
			return s.store.ListAssessments(ctx, filter)
		})
	})
}

// Delete removes a saved assessment.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrNoStore
	}
	return s.breaker.Execute(ctx, func(ctx context.Context) error {
		return resilience.Do(ctx, s.retry, func(ctx context.Context) error {
			return s.store.DeleteAssessment(ctx, id)
		})
	})
}

func (s *Service) save(ctx context.Context, a *model.Assessment) error {
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		return resilience.Do(ctx, s.retry, func(ctx context.Context) error {
			return s.store.SaveAssessment(ctx, a)
		})
	})
	return eris.Wrap(err, "advisor: save assessment")
}
