package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToleranceText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tol     Tolerance
		wire    string
		display string
	}{
		{Conservative, "conservative", "Conservative"},
		{Moderate, "moderate", "Moderate"},
		{Aggressive, "aggressive", "Aggressive"},
		{VeryAggressive, "very_aggressive", "Very Aggressive"},
	}
	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wire, tt.tol.String())
			assert.Equal(t, tt.display, tt.tol.DisplayName())

			got, err := ParseTolerance(tt.wire)
			require.NoError(t, err)
			assert.Equal(t, tt.tol, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := ParseTolerance("reckless")
		assert.Error(t, err)
		_, err = Tolerance(9).MarshalText()
		assert.Error(t, err)
	})
}

func TestRiskProfileJSON(t *testing.T) {
	t.Parallel()

	p := RiskProfile{
		Score:                 70,
		Tolerance:             Aggressive,
		RecommendedAllocation: Allocation{BucketStocks: 0.3},
		Horizon:               LongTerm,
		ExperienceLevel:       Intermediate,
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "aggressive", raw["risk_tolerance"])
	assert.Equal(t, "long_term", raw["investment_horizon"])
	assert.Contains(t, raw, "recommended_asset_allocation")

	var back RiskProfile
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, p.Tolerance, back.Tolerance)
	assert.Equal(t, p.Horizon, back.Horizon)

	assert.Error(t, json.Unmarshal([]byte(`{"risk_tolerance":"yolo"}`), &back))
}

func TestDisplayNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Medium Term", MediumTerm.DisplayName())
	assert.Equal(t, "Expert", Expert.DisplayName())
}

func TestQuestionAccepts(t *testing.T) {
	t.Parallel()
	q := Question{ID: "q", Options: []AnswerOption{{Value: 1}, {Value: 2}}}
	assert.True(t, q.Accepts(2))
	assert.False(t, q.Accepts(0))
	assert.False(t, q.Accepts(3))
}

func TestAssetClassBucket(t *testing.T) {
	t.Parallel()
	assert.Equal(t, BucketETFs, AssetETF.Bucket())
	assert.Equal(t, BucketBonds, AssetBond.Bucket())
	assert.Equal(t, BucketCommodities, AssetCommodity.Bucket())
	assert.Equal(t, BucketStocks, AssetStock.Bucket())
}

func TestSuitabilityResultJSON(t *testing.T) {
	t.Parallel()

	p := &Portfolio{
		ID: "growth", Name: "Growth", RiskLevel: 7, ExpectedReturn: 12,
		ExpectedVolatility: 18, Rebalance: RebalanceMonthly,
		Holdings: []Holding{{Symbol: "QQQ", AssetClass: AssetETF, Allocation: 1,
			Labels: []Label{{Dimension: DimRisk, Value: "Medium Risk"}}}},
	}
	b, err := json.Marshal(SuitabilityResult{Portfolio: p, Score: 100})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "growth", raw["portfolio_id"])
	assert.Equal(t, "Monthly", raw["rebalance_frequency"])
	assert.InDelta(t, 100.0, raw["score"], 0)

	var back SuitabilityResult
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.Portfolio)
	assert.Equal(t, "growth", back.Portfolio.ID)
	assert.True(t, back.Portfolio.Holdings[0].HasLabel(Label{Dimension: DimRisk, Value: "Medium Risk"}))
}
