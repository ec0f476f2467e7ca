package model

import "time"

// PlanSummary is the headline of an investment plan.
type PlanSummary struct {
	PortfolioID        string             `json:"portfolio_id"`
	PortfolioName      string             `json:"portfolio_name"`
	RiskLevel          int                `json:"risk_level"`
	ExpectedReturn     float64            `json:"expected_return"`
	ExpectedVolatility float64            `json:"expected_volatility"`
	Rebalance          RebalanceFrequency `json:"rebalance_frequency"`
	RiskScore          float64            `json:"risk_score"`
	Tolerance          Tolerance          `json:"risk_tolerance"`
}

// AllocationLine is one holding's share of the plan in whole percent.
type AllocationLine struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// LabelShare is the percentage of portfolio value carrying a label value.
type LabelShare struct {
	Value   string  `json:"value"`
	Percent float64 `json:"percent"`
}

// PlanStep is one narrative implementation step.
type PlanStep struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// InvestmentPlan is the human-readable plan assembled from a profile and a
// chosen portfolio.
type InvestmentPlan struct {
	Summary        PlanSummary                `json:"summary"`
	Allocation     []AllocationLine           `json:"allocation"`
	LabelBreakdown map[Dimension][]LabelShare `json:"label_breakdown"`
	AllocationGap  Allocation                 `json:"allocation_gap"`
	Steps          []PlanStep                 `json:"implementation_steps"`
	RiskFactors    []string                   `json:"risk_factors"`
}

// Assessment is one completed questionnaire with its profile and matches.
type Assessment struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	Answers    AnswerSet           `json:"answers"`
	Profile    RiskProfile         `json:"profile"`
	Matches    []SuitabilityResult `json:"matches"`
	ConfigHash string              `json:"config_hash"`
	CreatedAt  time.Time           `json:"created_at"`
}
