package risk

import (
	"sort"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Risk factor messages.
const (
	FactorConcentration   = "High portfolio concentration risk"
	FactorLiquidity       = "High liquidity needs may limit investment options"
	FactorInexperience    = "Limited trading experience"
	FactorPanicSelling    = "Tendency to panic sell during downturns"
	FactorLowDiversifying = "Low diversification preference increases concentration risk"
	FactorVeryAggressive  = "Very high risk tolerance may lead to significant losses"
	FactorConservative    = "Conservative approach may limit growth potential"
)

// ProfileBuilder derives a full RiskProfile from an answer set.
type ProfileBuilder struct {
	q      *Questionnaire
	scorer *Scorer
}

// NewProfileBuilder creates a ProfileBuilder over the given questionnaire.
func NewProfileBuilder(q *Questionnaire) *ProfileBuilder {
	return &ProfileBuilder{q: q, scorer: NewScorer(q)}
}

// Questionnaire returns the questionnaire the builder validates against.
func (b *ProfileBuilder) Questionnaire() *Questionnaire { return b.q }

// Build validates every answer and returns the profile. No profile is
// returned when any answer is missing, out of range or unknown.
func (b *ProfileBuilder) Build(answers model.AnswerSet) (*model.RiskProfile, error) {
	for _, q := range b.q.questions {
		if _, err := checkAnswer(q, answers); err != nil {
			return nil, err
		}
	}
	if err := b.checkUnknown(answers); err != nil {
		return nil, err
	}

	res, err := b.scorer.Score(answers)
	if err != nil {
		return nil, err
	}
	tol := res.Tolerance

	return &model.RiskProfile{
		Score:                     res.Score,
		Tolerance:                 tol,
		MaxDrawdown:               BaseDrawdown(tol) * float64(answers[QLossTolerance]) / maxAnswer,
		VolatilityTolerance:       float64(answers[QVolatilityComfort]) / maxAnswer * 0.5,
		DiversificationPreference: float64(answers[QDiversificationPreference]) / maxAnswer,
		LiquidityNeeds:            float64(5-answers[QLiquidityNeeds]) / 4,
		RecommendedAllocation:     RecommendedAllocation(tol),
		Horizon:                   horizonFor(answers[QInvestmentHorizon]),
		ExperienceLevel:           experienceFor(answers[QExperienceLevel]),
		RiskFactors:               riskFactors(answers, tol),
	}, nil
}

// checkUnknown rejects answers to questions not in the questionnaire. IDs are
// checked in sorted order so the reported one is deterministic.
func (b *ProfileBuilder) checkUnknown(answers model.AnswerSet) error {
	var unknown []string
	for id := range answers {
		if _, ok := b.q.index[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &AnswerError{QuestionID: unknown[0], Value: answers[unknown[0]], Err: ErrUnknownQuestion}
}

// BaseDrawdown is the maximum drawdown tolerated at full loss tolerance.
func BaseDrawdown(t model.Tolerance) float64 {
	switch t {
	case model.Conservative:
		return 0.10
	case model.Moderate:
		return 0.20
	case model.Aggressive:
		return 0.35
	case model.VeryAggressive:
		return 0.50
	}
	return 0
}

// RecommendedAllocation returns the target asset-bucket mix for a tolerance.
// Every bucket is present; fractions sum to 1.
func RecommendedAllocation(t model.Tolerance) model.Allocation {
	alloc := func(stocks, etfs, bonds, crypto, commodities, forex float64) model.Allocation {
		return model.Allocation{
			model.BucketStocks:      stocks,
			model.BucketETFs:        etfs,
			model.BucketBonds:       bonds,
			model.BucketCrypto:      crypto,
			model.BucketCommodities: commodities,
			model.BucketForex:       forex,
		}
	}
	switch t {
	case model.Conservative:
		return alloc(0.20, 0.30, 0.35, 0.05, 0.10, 0)
	case model.Moderate:
		return alloc(0.35, 0.25, 0.05, 0.20, 0.15, 0)
	case model.Aggressive:
		return alloc(0.30, 0.10, 0, 0.35, 0.20, 0.05)
	case model.VeryAggressive:
		return alloc(0.25, 0, 0, 0.45, 0.20, 0.10)
	}
	return alloc(0, 0, 0, 0, 0, 0)
}

func horizonFor(answer int) model.Horizon {
	switch {
	case answer <= 1:
		return model.ShortTerm
	case answer <= 3:
		return model.MediumTerm
	default:
		return model.LongTerm
	}
}

func experienceFor(answer int) model.ExperienceLevel {
	switch {
	case answer <= 1:
		return model.Beginner
	case answer == 2:
		return model.Intermediate
	case answer == 3:
		return model.Advanced
	default:
		return model.Expert
	}
}

func riskFactors(answers model.AnswerSet, tol model.Tolerance) []string {
	factors := []string{}
	if answers[QPortfolioSize] <= 2 {
		factors = append(factors, FactorConcentration)
	}
	if answers[QLiquidityNeeds] <= 2 {
		factors = append(factors, FactorLiquidity)
	}
	if answers[QExperienceLevel] <= 2 {
		factors = append(factors, FactorInexperience)
	}
	if answers[QMarketConditions] <= 2 {
		factors = append(factors, FactorPanicSelling)
	}
	if answers[QDiversificationPreference] <= 2 {
		factors = append(factors, FactorLowDiversifying)
	}

	switch tol {
	case model.VeryAggressive:
		factors = append(factors, FactorVeryAggressive)
	case model.Conservative:
		factors = append(factors, FactorConservative)
	case model.Moderate, model.Aggressive:
	}
	return factors
}
