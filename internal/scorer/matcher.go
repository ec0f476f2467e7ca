package scorer

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/sells-group/advisor-cli/internal/catalog"
	"github.com/sells-group/advisor-cli/internal/config"
	"github.com/sells-group/advisor-cli/internal/model"
)

// Matcher scores catalog portfolios against a risk profile. It holds no
// mutable state and is safe for concurrent use.
type Matcher struct {
	catalog *catalog.Catalog
	cfg     config.MatcherConfig
}

// NewMatcher creates a Matcher over the given catalog and config.
func NewMatcher(c *catalog.Catalog, cfg config.MatcherConfig) *Matcher {
	return &Matcher{catalog: c, cfg: cfg}
}

// Config returns the matcher's scoring constants.
func (m *Matcher) Config() config.MatcherConfig { return m.cfg }

// ScorePortfolio returns the suitability of one portfolio, in [0,100] and
// rounded to two decimals.
func (m *Matcher) ScorePortfolio(p *model.Portfolio, profile *model.RiskProfile) float64 {
	riskDiff := math.Abs(float64(p.RiskLevel) - profile.Score/10)
	score := 100 - riskDiff*m.cfg.RiskDiffWeight
	score -= m.penalty(p.RiskLevel, profile.Tolerance)
	return math.Round(clamp(score, 0, 100)*100) / 100
}

// penalty applies at most one tolerance mismatch penalty.
func (m *Matcher) penalty(riskLevel int, tol model.Tolerance) float64 {
	switch tol {
	case model.Conservative:
		if riskLevel > m.cfg.ConservativeMaxRisk {
			return m.cfg.ConservativePenalty
		}
	case model.Aggressive:
		if riskLevel < m.cfg.AggressiveMinRisk {
			return m.cfg.AggressivePenalty
		}
	case model.VeryAggressive:
		if riskLevel < m.cfg.VeryAggressiveMinRisk {
			return m.cfg.VeryAggressivePenalty
		}
	case model.Moderate:
	}
	return 0
}

// ScoreAll scores every portfolio in catalog order without filtering.
func (m *Matcher) ScoreAll(profile *model.RiskProfile) []model.SuitabilityResult {
	ps := m.catalog.All()
	results := make([]model.SuitabilityResult, len(ps))
	for i, p := range ps {
		results[i] = model.SuitabilityResult{Portfolio: p, Score: m.ScorePortfolio(p, profile)}
	}
	return results
}

// Match returns the best portfolios for a profile: scores at or above the
// threshold, highest first, ties in catalog order, at most MaxResults. An
// empty result means nothing is suitable.
func (m *Matcher) Match(profile *model.RiskProfile) []model.SuitabilityResult {
	return m.rank(m.ScoreAll(profile))
}

// MatchParallel is Match with portfolios scored concurrently.
func (m *Matcher) MatchParallel(ctx context.Context, profile *model.RiskProfile) ([]model.SuitabilityResult, error) {
	ps := m.catalog.All()
	results := make([]model.SuitabilityResult, len(ps))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range ps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = model.SuitabilityResult{Portfolio: p, Score: m.ScorePortfolio(p, profile)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m.rank(results), nil
}

func (m *Matcher) rank(all []model.SuitabilityResult) []model.SuitabilityResult {
	passed := make([]model.SuitabilityResult, 0, len(all))
	for _, r := range all {
		if r.Score >= m.cfg.MinScore {
			passed = append(passed, r)
		}
	}

	sortByScore(passed)

	if m.cfg.MaxResults > 0 && len(passed) > m.cfg.MaxResults {
		passed = passed[:m.cfg.MaxResults]
	}
	return passed
}

// sortByScore sorts descending. Insertion sort is stable, so equal scores
// keep catalog order.
func sortByScore(results []model.SuitabilityResult) {
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Score > results[j-1].Score; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
