package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/labels"
	"github.com/sells-group/advisor-cli/internal/model"
)

func TestNew(t *testing.T) {
	t.Parallel()
	c := New(labels.New())

	assert.Equal(t, []string{Core, Growth, Dividend, ESG, REITs, Defensive}, c.IDs())
	assert.Equal(t, 6, c.Len())
	require.NoError(t, c.Validate())

	levels := map[string]int{Core: 5, Growth: 7, Dividend: 4, ESG: 5, REITs: 5, Defensive: 3}
	for _, p := range c.All() {
		assert.Equal(t, levels[p.ID], p.RiskLevel, p.ID)
		assert.InDelta(t, 1.0, HoldingSum(p), 1e-9, p.ID)
		for _, h := range p.Holdings {
			assert.NotEmpty(t, h.Labels, "%s/%s", p.ID, h.Symbol)
		}
	}
}

func TestHoldingLabels(t *testing.T) {
	t.Parallel()
	c := New(labels.New())

	core, err := c.Get(Core)
	require.NoError(t, err)
	tlt := core.Holdings[4]
	assert.Equal(t, "TLT", tlt.Symbol)
	assert.Equal(t, []model.Label{{Dimension: model.DimRisk, Value: labels.LowRisk}}, tlt.Labels)

	growth, err := c.Get(Growth)
	require.NoError(t, err)
	assert.True(t, growth.Holdings[0].HasLabel(model.Label{Dimension: model.DimSector, Value: "Technology"}))
	assert.True(t, growth.Holdings[4].HasLabel(model.Label{Dimension: model.DimSector, Value: "Consumer Goods"}))
}

func TestGet(t *testing.T) {
	t.Parallel()
	c := New(labels.New())

	p, err := c.Get(" Defensive ")
	require.NoError(t, err)
	assert.Equal(t, "Defensive Portfolio", p.Name)
	assert.Equal(t, model.RebalanceSemiAnnually, p.Rebalance)

	_, err = c.Get("crypto-moonshot")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPortfolio))
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()
	c := New(labels.New())
	all := c.All()
	all[0] = nil
	assert.NotNil(t, c.All()[0])
}

func TestValidate(t *testing.T) {
	t.Parallel()
	lc := labels.New()

	tests := []struct {
		name    string
		ps      []model.Portfolio
		wantErr string
	}{
		{
			name: "holdings do not sum to one",
			ps: []model.Portfolio{{ID: "a", RiskLevel: 5, Holdings: []model.Holding{
				{Symbol: "SPY", AssetClass: model.AssetETF, Allocation: 0.5},
			}}},
			wantErr: "holdings sum",
		},
		{
			name: "risk level out of range",
			ps: []model.Portfolio{{ID: "a", RiskLevel: 11, Holdings: []model.Holding{
				{Symbol: "SPY", AssetClass: model.AssetETF, Allocation: 1},
			}}},
			wantErr: "risk_level 11",
		},
		{
			name: "duplicate id",
			ps: []model.Portfolio{
				{ID: "a", RiskLevel: 5, Holdings: []model.Holding{{Symbol: "SPY", Allocation: 1}}},
				{ID: "a", RiskLevel: 5, Holdings: []model.Holding{{Symbol: "SPY", Allocation: 1}}},
			},
			wantErr: "duplicate",
		},
		{
			name:    "no holdings",
			ps:      []model.Portfolio{{ID: "a", RiskLevel: 5}},
			wantErr: "no holdings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := FromPortfolios(lc, tt.ps).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
