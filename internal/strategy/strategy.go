// Package strategy recommends trading strategies for a risk profile and
// splits capital across them.
package strategy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/floats"

	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// ErrUnknownStrategy is returned by Get for an ID not in the catalog.
var ErrUnknownStrategy = eris.New("strategy: unknown strategy")

// Component weights of the suitability score: tolerance, experience,
// horizon, volatility.
var componentWeights = []float64{0.40, 0.25, 0.20, 0.15}

// Catalog is the read-only list of strategies in declaration order.
type Catalog struct {
	strategies []*model.Strategy
	byID       map[string]*model.Strategy
}

// NewCatalog builds the standard strategy catalog.
func NewCatalog() *Catalog {
	return FromStrategies(defaultStrategies())
}

// FromStrategies builds a catalog from caller-supplied strategies.
func FromStrategies(ss []model.Strategy) *Catalog {
	c := &Catalog{byID: make(map[string]*model.Strategy, len(ss))}
	for i := range ss {
		s := ss[i]
		c.strategies = append(c.strategies, &s)
		c.byID[strings.ToLower(s.ID)] = &s
	}
	return c
}

// All returns the strategies in declaration order. Callers must not modify
// the returned strategies.
func (c *Catalog) All() []*model.Strategy {
	return append([]*model.Strategy(nil), c.strategies...)
}

// Get looks up a strategy by ID.
func (c *Catalog) Get(id string) (*model.Strategy, error) {
	s, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownStrategy, "id %q", id)
	}
	return s, nil
}

// Validate checks IDs are unique, risk levels are in 1..10, volatility is
// positive, and every time frame and complexity is known.
func (c *Catalog) Validate() error {
	var errs []string
	seen := make(map[string]bool)
	for _, s := range c.strategies {
		if s.ID == "" || seen[s.ID] {
			errs = append(errs, fmt.Sprintf("strategy %q: missing or duplicate id", s.Name))
		}
		seen[s.ID] = true
		if s.RiskLevel < 1 || s.RiskLevel > 10 {
			errs = append(errs, fmt.Sprintf("%s: risk_level %d outside 1..10", s.ID, s.RiskLevel))
		}
		if s.Volatility <= 0 {
			errs = append(errs, fmt.Sprintf("%s: volatility must be > 0", s.ID))
		}
		if timeFrameRank(s.TimeFrame) == 0 {
			errs = append(errs, fmt.Sprintf("%s: unknown time horizon %q", s.ID, s.TimeFrame))
		}
		if experienceRank(s.Complexity) == 0 {
			errs = append(errs, fmt.Sprintf("%s: unknown complexity %q", s.ID, s.Complexity))
		}
	}
	if len(errs) > 0 {
		return eris.Errorf("strategy: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Recommender scores strategies against risk profiles. It holds no mutable
// state and is safe for concurrent use.
type Recommender struct {
	catalog *Catalog
	cfg     config.StrategyConfig
}

// NewRecommender creates a Recommender over the given catalog and config.
func NewRecommender(c *Catalog, cfg config.StrategyConfig) *Recommender {
	return &Recommender{catalog: c, cfg: cfg}
}

// Score returns the suitability of one strategy for a profile, in [0,100]
// and rounded to two decimals.
func (r *Recommender) Score(s *model.Strategy, profile *model.RiskProfile) float64 {
	components := []float64{
		riskCompatibility(profile.Tolerance, s.RiskLevel),
		ratioAtMostOne(float64(experienceRank(profile.ExperienceLevel)), float64(experienceRank(s.Complexity))),
		ratioAtMostOne(float64(horizonRank(profile.Horizon)), float64(timeFrameRank(s.TimeFrame))),
		ratioAtMostOne(profile.VolatilityTolerance, s.Volatility),
	}
	score := floats.Dot(componentWeights, components) * 100
	return math.Round(math.Max(0, math.Min(100, score))*100) / 100
}

// Recommend returns the strategies scoring at or above the threshold,
// highest first, ties in catalog order, at most MaxResults.
func (r *Recommender) Recommend(profile *model.RiskProfile) []model.StrategyMatch {
	var out []model.StrategyMatch
	for _, s := range r.catalog.strategies {
		if score := r.Score(s, profile); score >= r.cfg.MinScore {
			out = append(out, model.StrategyMatch{Strategy: s, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if r.cfg.MaxResults > 0 && len(out) > r.cfg.MaxResults {
		out = out[:r.cfg.MaxResults]
	}
	return out
}

// Allocate splits capital across matches in proportion to their scores,
// after holding back the cash reserve, and derives the blended return,
// volatility, Sharpe ratio and risk limits. With no matches everything
// stays in cash.
func (r *Recommender) Allocate(profile *model.RiskProfile, matches []model.StrategyMatch) *model.StrategyPortfolio {
	scores := make([]float64, len(matches))
	for i, m := range matches {
		scores[i] = m.Score
	}
	total := floats.Sum(scores)

	out := &model.StrategyPortfolio{
		AssetAllocation: copyAllocation(profile.RecommendedAllocation),
		Strategies:      []model.StrategyAllocation{},
		CashReserve:     1,
		Rebalancing:     rebalancingFor(profile.Tolerance),
	}
	out.RiskMetrics.MaxConsecutiveLosses = maxConsecutiveLosses(profile.Tolerance)
	out.RiskMetrics.CorrelationThreshold = 0.9
	if profile.DiversificationPreference > 0.5 {
		out.RiskMetrics.CorrelationThreshold = 0.7
	}
	if len(matches) == 0 || total <= 0 {
		return out
	}

	invested := 1 - r.cfg.CashReserve
	out.CashReserve = r.cfg.CashReserve
	for _, m := range matches {
		s := m.Strategy
		alloc := m.Score / total * invested
		out.Strategies = append(out.Strategies, model.StrategyAllocation{
			StrategyID: s.ID,
			Name:       s.Name,
			Score:      m.Score,
			Allocation: alloc,
		})
		out.ExpectedReturn += s.ExpectedReturn * alloc
		out.Volatility += s.Volatility * alloc
		out.MaxDrawdown = math.Max(out.MaxDrawdown, s.MaxDrawdown)
	}
	if out.Volatility > 0 {
		out.SharpeRatio = (out.ExpectedReturn - r.cfg.RiskFreeRate) / out.Volatility
	}
	out.RiskMetrics.VaR95 = out.MaxDrawdown * 0.8
	out.RiskMetrics.ExpectedShortfall = out.MaxDrawdown * 0.9
	return out
}

// riskCompatibility is 1 when the tolerance's nominal risk equals the
// strategy's, falling linearly over the 1..10 scale.
func riskCompatibility(t model.Tolerance, riskLevel int) float64 {
	return 1 - math.Abs(float64(toleranceRisk(t)-riskLevel))/9
}

// ratioAtMostOne is 1 when have covers need, else have/need.
func ratioAtMostOne(have, need float64) float64 {
	if need <= 0 || have >= need {
		return 1
	}
	return have / need
}

func toleranceRisk(t model.Tolerance) int {
	switch t {
	case model.Conservative:
		return 1
	case model.Moderate:
		return 3
	case model.Aggressive:
		return 5
	case model.VeryAggressive:
		return 7
	}
	return 1
}

func experienceRank(e model.ExperienceLevel) int {
	switch e {
	case model.Beginner:
		return 1
	case model.Intermediate:
		return 2
	case model.Advanced:
		return 3
	case model.Expert:
		return 4
	}
	return 0
}

func horizonRank(h model.Horizon) int {
	switch h {
	case model.ShortTerm:
		return 1
	case model.MediumTerm:
		return 2
	case model.LongTerm:
		return 3
	}
	return 0
}

func timeFrameRank(f model.TimeFrame) int {
	switch f {
	case model.VeryShortTerm, model.ShortTermFrame:
		return 1
	case model.ShortToMediumFrame, model.MediumTermFrame:
		return 2
	case model.LongTermFrame:
		return 3
	}
	return 0
}

func rebalancingFor(t model.Tolerance) string {
	switch t {
	case model.Conservative:
		return "Monthly"
	case model.Moderate:
		return "Bi-weekly"
	case model.Aggressive:
		return "Weekly"
	case model.VeryAggressive:
		return "Daily"
	}
	return "Monthly"
}

func maxConsecutiveLosses(t model.Tolerance) int {
	switch t {
	case model.Conservative, model.Moderate:
		return 5
	case model.Aggressive, model.VeryAggressive:
		return 3
	}
	return 5
}

func copyAllocation(a model.Allocation) model.Allocation {
	out := make(model.Allocation, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
