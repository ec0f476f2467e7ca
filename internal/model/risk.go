package model

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tolerance is the risk-tolerance category derived from a risk score.
type Tolerance int

const (
	Conservative Tolerance = iota
	Moderate
	Aggressive
	VeryAggressive
)

// Tolerances lists every category in ascending order of risk appetite.
var Tolerances = []Tolerance{Conservative, Moderate, Aggressive, VeryAggressive}

// String returns the wire form (e.g. "very_aggressive").
func (t Tolerance) String() string {
	switch t {
	case Conservative:
		return "conservative"
	case Moderate:
		return "moderate"
	case Aggressive:
		return "aggressive"
	case VeryAggressive:
		return "very_aggressive"
	}
	return "unknown"
}

// DisplayName returns a human-readable label (e.g. "Very Aggressive").
func (t Tolerance) DisplayName() string {
	return displayName(t.String())
}

// ParseTolerance parses the wire form of a Tolerance.
func ParseTolerance(s string) (Tolerance, error) {
	for _, t := range Tolerances {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, eris.Errorf("model: unknown risk tolerance %q", s)
}

func (t Tolerance) MarshalText() ([]byte, error) {
	if t < Conservative || t > VeryAggressive {
		return nil, eris.Errorf("model: invalid risk tolerance %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tolerance) UnmarshalText(b []byte) error {
	v, err := ParseTolerance(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Horizon is the investor's stated investment horizon.
type Horizon string

const (
	ShortTerm  Horizon = "short_term"
	MediumTerm Horizon = "medium_term"
	LongTerm   Horizon = "long_term"
)

// DisplayName returns a human-readable label (e.g. "Long Term").
func (h Horizon) DisplayName() string { return displayName(string(h)) }

// ExperienceLevel is the investor's self-reported trading experience.
type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
	Expert       ExperienceLevel = "expert"
)

// DisplayName returns a human-readable label (e.g. "Intermediate").
func (e ExperienceLevel) DisplayName() string { return displayName(string(e)) }

// AssetBucket is a top-level asset class used in recommended allocations.
type AssetBucket string

const (
	BucketStocks      AssetBucket = "stocks"
	BucketETFs        AssetBucket = "etfs"
	BucketBonds       AssetBucket = "bonds"
	BucketCrypto      AssetBucket = "crypto"
	BucketCommodities AssetBucket = "commodities"
	BucketForex       AssetBucket = "forex"
)

// AssetBuckets lists all buckets in display order.
var AssetBuckets = []AssetBucket{
	BucketStocks, BucketETFs, BucketBonds, BucketCrypto, BucketCommodities, BucketForex,
}

// Allocation maps asset buckets to fractions of the portfolio.
type Allocation map[AssetBucket]float64

// AnswerSet maps question IDs to the selected answer value.
type AnswerSet map[string]int

// AnswerOption is one selectable answer to a Question.
type AnswerOption struct {
	Value int    `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

// Question is a single questionnaire item. Weight is zero for questions
// that only feed the profile (horizon, liquidity) and not the score.
type Question struct {
	ID      string         `json:"id" yaml:"id"`
	Text    string         `json:"text" yaml:"text"`
	Options []AnswerOption `json:"options" yaml:"options"`
	Weight  float64        `json:"weight" yaml:"weight"`
}

// Accepts reports whether v is one of the question's declared answer values.
func (q Question) Accepts(v int) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// RiskProfile is the immutable result of a completed questionnaire.
type RiskProfile struct {
	Score                     float64         `json:"score"`
	Tolerance                 Tolerance       `json:"risk_tolerance"`
	MaxDrawdown               float64         `json:"max_drawdown_tolerance"`
	VolatilityTolerance       float64         `json:"volatility_tolerance"`
	DiversificationPreference float64         `json:"diversification_preference"`
	LiquidityNeeds            float64         `json:"liquidity_needs"`
	RecommendedAllocation     Allocation      `json:"recommended_asset_allocation"`
	Horizon                   Horizon         `json:"investment_horizon"`
	ExperienceLevel           ExperienceLevel `json:"experience_level"`
	RiskFactors               []string        `json:"risk_factors"`
}

// displayName turns a snake_case wire value into title case. Casers keep
// state, so a fresh one is built per call.
func displayName(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
