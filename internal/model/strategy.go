package model

import "encoding/json"

// StrategyCategory is the trading style of a strategy.
type StrategyCategory string

const (
	CategoryTrendFollowing  StrategyCategory = "trend_following"
	CategoryMeanReversion   StrategyCategory = "mean_reversion"
	CategoryMomentum        StrategyCategory = "momentum"
	CategoryArbitrage       StrategyCategory = "arbitrage"
	CategoryScalping        StrategyCategory = "scalping"
	CategorySwingTrading    StrategyCategory = "swing_trading"
	CategoryPositionTrading StrategyCategory = "position_trading"
)

// TimeFrame is the holding period a strategy trades on.
type TimeFrame string

const (
	VeryShortTerm      TimeFrame = "Very short term"
	ShortTermFrame     TimeFrame = "Short term"
	ShortToMediumFrame TimeFrame = "Short to medium term"
	MediumTermFrame    TimeFrame = "Medium term"
	LongTermFrame      TimeFrame = "Long term"
)

// Strategy is a trading strategy from the strategy catalog.
type Strategy struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        Tolerance        `json:"strategy_type"`
	Category    StrategyCategory `json:"category"`
	Description string           `json:"description"`
	RiskLevel   int              `json:"risk_level"`
	// ExpectedReturn and MaxDrawdown are annual percentages; Volatility is
	// a fraction.
	ExpectedReturn     float64         `json:"expected_return"`
	MaxDrawdown        float64         `json:"max_drawdown"`
	Volatility         float64         `json:"volatility"`
	TimeFrame          TimeFrame       `json:"time_horizon"`
	CapitalRequirement string          `json:"capital_requirement"`
	Complexity         ExperienceLevel `json:"complexity"`
	Parameters         map[string]any  `json:"parameters"`
	Pros               []string        `json:"pros"`
	Cons               []string        `json:"cons"`
	MarketConditions   []string        `json:"market_conditions"`
	Symbols            []string        `json:"symbols"`
}

// StrategyMatch is the fit of one strategy against a risk profile.
type StrategyMatch struct {
	Strategy *Strategy
	Score    float64
}

type strategyMatchJSON struct {
	StrategyID     string           `json:"strategy_id"`
	Name           string           `json:"name"`
	Score          float64          `json:"suitability_score"`
	Type           Tolerance        `json:"strategy_type"`
	Category       StrategyCategory `json:"category"`
	RiskLevel      int              `json:"risk_level"`
	ExpectedReturn float64          `json:"expected_return"`
	MaxDrawdown    float64          `json:"max_drawdown"`
	Complexity     ExperienceLevel  `json:"complexity"`
}

// MarshalJSON flattens the headline strategy fields next to the score.
func (m StrategyMatch) MarshalJSON() ([]byte, error) {
	out := strategyMatchJSON{Score: m.Score}
	if s := m.Strategy; s != nil {
		out.StrategyID = s.ID
		out.Name = s.Name
		out.Type = s.Type
		out.Category = s.Category
		out.RiskLevel = s.RiskLevel
		out.ExpectedReturn = s.ExpectedReturn
		out.MaxDrawdown = s.MaxDrawdown
		out.Complexity = s.Complexity
	}
	return json.Marshal(out)
}

// StrategyAllocation is one strategy's share of the trading capital.
type StrategyAllocation struct {
	StrategyID string  `json:"strategy_id"`
	Name       string  `json:"name"`
	Score      float64 `json:"suitability_score"`
	Allocation float64 `json:"allocation"`
}

// StrategyRiskMetrics are rough risk limits derived from the chosen strategies.
type StrategyRiskMetrics struct {
	VaR95                float64 `json:"var_95"`
	ExpectedShortfall    float64 `json:"expected_shortfall"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`
	CorrelationThreshold float64 `json:"correlation_threshold"`
}

// StrategyPortfolio splits capital across recommended strategies and a cash
// reserve.
type StrategyPortfolio struct {
	AssetAllocation Allocation           `json:"total_allocation"`
	Strategies      []StrategyAllocation `json:"strategy_allocations"`
	CashReserve     float64              `json:"cash_reserve"`
	ExpectedReturn  float64              `json:"expected_annual_return"`
	Volatility      float64              `json:"expected_volatility"`
	MaxDrawdown     float64              `json:"max_drawdown"`
	SharpeRatio     float64              `json:"sharpe_ratio"`
	Rebalancing     string               `json:"rebalancing_frequency"`
	RiskMetrics     StrategyRiskMetrics  `json:"risk_metrics"`
}

// StrategyReport is the strategy recommendation for one risk profile.
type StrategyReport struct {
	Profile    *RiskProfile       `json:"profile"`
	Strategies []StrategyMatch    `json:"recommended_strategies"`
	Portfolio  *StrategyPortfolio `json:"portfolio"`
}
