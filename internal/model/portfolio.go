package model

import "encoding/json"

// AssetClass is the instrument type of a single holding.
type AssetClass string

const (
	AssetStock     AssetClass = "Stock"
	AssetETF       AssetClass = "ETF"
	AssetBond      AssetClass = "Bond"
	AssetCrypto    AssetClass = "Crypto"
	AssetCommodity AssetClass = "Commodity"
	AssetForex     AssetClass = "Forex"
)

// Bucket maps a holding's asset class onto the allocation bucket it counts toward.
func (a AssetClass) Bucket() AssetBucket {
	switch a {
	case AssetStock:
		return BucketStocks
	case AssetETF:
		return BucketETFs
	case AssetBond:
		return BucketBonds
	case AssetCrypto:
		return BucketCrypto
	case AssetCommodity:
		return BucketCommodities
	case AssetForex:
		return BucketForex
	}
	return BucketStocks
}

// Dimension is the axis a Label describes.
type Dimension string

const (
	DimSector    Dimension = "Sector"
	DimTheme     Dimension = "Theme"
	DimGeography Dimension = "Geography"
	DimRisk      Dimension = "Risk"
	DimStyle     Dimension = "Style"
)

// Dimensions lists label dimensions in display order.
var Dimensions = []Dimension{DimSector, DimTheme, DimGeography, DimRisk, DimStyle}

// Label is a static descriptive tag attached to a holding.
type Label struct {
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value"`
}

// Holding is one instrument inside a model portfolio.
type Holding struct {
	Symbol      string     `json:"symbol"`
	Name        string     `json:"name"`
	AssetClass  AssetClass `json:"asset_class"`
	Allocation  float64    `json:"allocation"`
	Description string     `json:"description,omitempty"`
	Labels      []Label    `json:"labels"`
}

// HasLabel reports whether the holding carries the given label.
func (h Holding) HasLabel(l Label) bool {
	for _, x := range h.Labels {
		if x == l {
			return true
		}
	}
	return false
}

// RebalanceFrequency is how often a model portfolio is brought back to target weights.
type RebalanceFrequency string

const (
	RebalanceMonthly      RebalanceFrequency = "Monthly"
	RebalanceQuarterly    RebalanceFrequency = "Quarterly"
	RebalanceSemiAnnually RebalanceFrequency = "Semi-Annually"
)

// Portfolio is a fixed model portfolio from the catalog.
type Portfolio struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	RiskLevel          int                `json:"risk_level"`
	ExpectedReturn     float64            `json:"expected_return"`
	ExpectedVolatility float64            `json:"expected_volatility"`
	Rebalance          RebalanceFrequency `json:"rebalance_frequency"`
	Holdings           []Holding          `json:"holdings"`
}

// SuitabilityResult is the fit of one portfolio against a risk profile.
type SuitabilityResult struct {
	Portfolio *Portfolio
	Score     float64
}

type suitabilityJSON struct {
	PortfolioID        string             `json:"portfolio_id"`
	Name               string             `json:"name"`
	Score              float64            `json:"score"`
	RiskLevel          int                `json:"risk_level"`
	ExpectedReturn     float64            `json:"expected_return"`
	ExpectedVolatility float64            `json:"expected_volatility"`
	Rebalance          RebalanceFrequency `json:"rebalance_frequency"`
	Holdings           []Holding          `json:"holdings"`
}

// MarshalJSON flattens the portfolio fields next to the score.
func (r SuitabilityResult) MarshalJSON() ([]byte, error) {
	out := suitabilityJSON{Score: r.Score}
	if p := r.Portfolio; p != nil {
		out.PortfolioID = p.ID
		out.Name = p.Name
		out.RiskLevel = p.RiskLevel
		out.ExpectedReturn = p.ExpectedReturn
		out.ExpectedVolatility = p.ExpectedVolatility
		out.Rebalance = p.Rebalance
		out.Holdings = p.Holdings
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a detached copy of the portfolio from the flat form.
func (r *SuitabilityResult) UnmarshalJSON(b []byte) error {
	var in suitabilityJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	r.Score = in.Score
	r.Portfolio = &Portfolio{
		ID:                 in.PortfolioID,
		Name:               in.Name,
		RiskLevel:          in.RiskLevel,
		ExpectedReturn:     in.ExpectedReturn,
		ExpectedVolatility: in.ExpectedVolatility,
		Rebalance:          in.Rebalance,
		Holdings:           in.Holdings,
	}
	return nil
}
