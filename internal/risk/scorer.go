package risk

import (
	"math"

	"github.com/sells-group/advisor-cli/internal/model"
)

// maxAnswer is the top value of every weighted question.
const maxAnswer = 4

// Result is the raw outcome of scoring a questionnaire.
type Result struct {
	Score     float64         `json:"score"`
	Tolerance model.Tolerance `json:"risk_tolerance"`
}

// Scorer computes the weighted risk score.
type Scorer struct {
	q *Questionnaire
}

// NewScorer creates a Scorer over the given questionnaire.
func NewScorer(q *Questionnaire) *Scorer {
	return &Scorer{q: q}
}

// Score validates the weighted answers in declaration order and returns the
// normalized 0-100 score with its tolerance. The first invalid answer is
// returned as an *AnswerError.
func (s *Scorer) Score(answers model.AnswerSet) (Result, error) {
	var raw, weightSum float64
	for _, q := range s.q.Weighted() {
		v, err := checkAnswer(q, answers)
		if err != nil {
			return Result{}, err
		}
		raw += float64(v) * q.Weight
		weightSum += q.Weight
	}

	var score float64
	if weightSum > 0 {
		score = raw / (maxAnswer * weightSum) * 100
	}
	score = roundScore(clamp(score, 0, 100))

	return Result{Score: score, Tolerance: ToleranceFor(score)}, nil
}

// ToleranceFor buckets a score. Upper bounds are inclusive: 25 is
// Conservative, 50 Moderate, 75 Aggressive.
func ToleranceFor(score float64) model.Tolerance {
	switch {
	case score <= 25:
		return model.Conservative
	case score <= 50:
		return model.Moderate
	case score <= 75:
		return model.Aggressive
	default:
		return model.VeryAggressive
	}
}

func checkAnswer(q model.Question, answers model.AnswerSet) (int, error) {
	v, ok := answers[q.ID]
	if !ok {
		return 0, &AnswerError{QuestionID: q.ID, Err: ErrMissingAnswer}
	}
	if !q.Accepts(v) {
		return 0, &AnswerError{QuestionID: q.ID, Value: v, Err: ErrInvalidAnswerValue}
	}
	return v, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundScore rounds to two decimal places.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
