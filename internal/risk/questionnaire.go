// Package risk turns questionnaire answers into a risk score and a full risk
// profile.
package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/floats"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Question IDs.
const (
	QInvestmentGoal            = "investment_goal"
	QInvestmentHorizon         = "investment_horizon"
	QLossTolerance             = "loss_tolerance"
	QExperienceLevel           = "experience_level"
	QPortfolioSize             = "portfolio_size"
	QVolatilityComfort         = "volatility_comfort"
	QDiversificationPreference = "diversification_preference"
	QLiquidityNeeds            = "liquidity_needs"
	QRiskScenarios             = "risk_scenarios"
	QMarketConditions          = "market_conditions"
)

// Questionnaire is the ordered, immutable list of questions.
type Questionnaire struct {
	questions []model.Question
	index     map[string]int
}

// NewQuestionnaire builds the standard ten-question questionnaire.
func NewQuestionnaire() *Questionnaire {
	return newQuestionnaire(defaultQuestions())
}

func newQuestionnaire(qs []model.Question) *Questionnaire {
	q := &Questionnaire{questions: qs, index: make(map[string]int, len(qs))}
	for i, x := range qs {
		q.index[x.ID] = i
	}
	return q
}

// Questions returns a copy of the questions in declaration order.
func (q *Questionnaire) Questions() []model.Question {
	return append([]model.Question(nil), q.questions...)
}

// Question looks up a question by ID.
func (q *Questionnaire) Question(id string) (model.Question, bool) {
	i, ok := q.index[id]
	if !ok {
		return model.Question{}, false
	}
	return q.questions[i], true
}

// Weighted returns the questions that contribute to the score, in
// declaration order.
func (q *Questionnaire) Weighted() []model.Question {
	var out []model.Question
	for _, x := range q.questions {
		if x.Weight > 0 {
			out = append(out, x)
		}
	}
	return out
}

// WeightSum returns the sum of all question weights.
func (q *Questionnaire) WeightSum() float64 {
	w := make([]float64, len(q.questions))
	for i, x := range q.questions {
		w[i] = x.Weight
	}
	return floats.Sum(w)
}

// Validate checks weights are in [0,1] and sum to 1, and that every question
// has at least one option.
func (q *Questionnaire) Validate() error {
	var errs []string
	for _, x := range q.questions {
		if x.Weight < 0 || x.Weight > 1 {
			errs = append(errs, fmt.Sprintf("%s: weight %.2f outside [0,1]", x.ID, x.Weight))
		}
		if len(x.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no options", x.ID))
		}
	}
	if sum := q.WeightSum(); math.Abs(sum-1) > 1e-9 {
		errs = append(errs, fmt.Sprintf("weights sum to %.4f, want 1", sum))
	}
	if len(errs) > 0 {
		return eris.Errorf("risk: questionnaire validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func options(texts ...string) []model.AnswerOption {
	out := make([]model.AnswerOption, len(texts))
	for i, t := range texts {
		out[i] = model.AnswerOption{Value: i + 1, Text: t}
	}
	return out
}

func defaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:   QInvestmentGoal,
			Text: "What is your primary investment goal?",
			Options: options(
				"Preserve capital with modest growth",
				"Steady growth with some risk",
				"Aggressive growth with higher risk",
				"Maximum returns regardless of risk",
			),
			Weight: 0.20,
		},
		{
			ID:   QInvestmentHorizon,
			Text: "What is your investment time horizon?",
			Options: options(
				"Less than 1 year",
				"1-3 years",
				"3-5 years",
				"More than 5 years",
			),
		},
		{
			ID:   QLossTolerance,
			Text: "How would you react to a 20% portfolio decline?",
			Options: options(
				"Sell everything immediately",
				"Sell some positions",
				"Hold and wait for recovery",
				"Buy more at lower prices",
			),
			Weight: 0.15,
		},
		{
			ID:   QExperienceLevel,
			Text: "How would you describe your trading experience?",
			Options: options(
				"New to trading",
				"Some experience with basic strategies",
				"Experienced with advanced strategies",
				"Professional trader",
			),
			Weight: 0.10,
		},
		{
			ID:   QPortfolioSize,
			Text: "What percentage of your total wealth is this investment?",
			Options: options(
				"More than 50%",
				"25-50%",
				"10-25%",
				"Less than 10%",
			),
			Weight: 0.10,
		},
		{
			ID:   QVolatilityComfort,
			Text: "How comfortable are you with daily price fluctuations?",
			Options: options(
				"Very uncomfortable with any volatility",
				"Comfortable with small daily changes",
				"Comfortable with moderate volatility",
				"Thrive on high volatility",
			),
			Weight: 0.15,
		},
		{
			ID:   QDiversificationPreference,
			Text: "How important is portfolio diversification to you?",
			// Listed most-important first; values run high to low.
			Options: []model.AnswerOption{
				{Value: 4, Text: "Extremely important - spread risk widely"},
				{Value: 3, Text: "Important - some diversification"},
				{Value: 2, Text: "Somewhat important"},
				{Value: 1, Text: "Not important - focus on best opportunities"},
			},
			Weight: 0.05,
		},
		{
			ID:   QLiquidityNeeds,
			Text: "How quickly might you need to access your funds?",
			Options: options(
				"Immediately - emergency fund",
				"Within a few months",
				"Within a year",
				"Not for several years",
				"Not for the foreseeable future",
			),
		},
		{
			ID:   QRiskScenarios,
			Text: "Which scenario best describes your risk preference?",
			Options: options(
				"I prefer guaranteed small returns over uncertain large returns",
				"I prefer moderate returns with some risk",
				"I prefer higher returns with higher risk",
				"I prefer maximum returns with maximum risk",
			),
			Weight: 0.15,
		},
		{
			ID:   QMarketConditions,
			Text: "How do you typically react to market downturns?",
			Options: options(
				"Panic and sell everything",
				"Reduce positions significantly",
				"Hold current positions",
				"Increase positions (buy the dip)",
			),
			Weight: 0.10,
		},
	}
}
