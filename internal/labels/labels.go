// Package labels attaches static descriptive labels to portfolio holdings by
// symbol lookup.
package labels

import (
	"strings"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Risk label values.
const (
	LowRisk    = "Low Risk"
	MediumRisk = "Medium Risk"
	HighRisk   = "High Risk"
)

// Catalog holds the symbol lookup tables. It is read-only after New and safe
// for concurrent use.
type Catalog struct {
	sectors map[string]string
	etfs    map[string][]string
	themes  map[string]model.Label
}

// New builds the label tables.
func New() *Catalog {
	return &Catalog{
		sectors: stockSectors(),
		etfs:    etfThemes(),
		themes:  themeLabels(),
	}
}

// Label returns the labels for a symbol of the given asset class. Stocks are
// looked up in the sector table and ETFs in the theme table; every holding
// ends with exactly one Risk label. Unknown symbols get only the Risk label.
func (c *Catalog) Label(symbol string, class model.AssetClass) []model.Label {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var out []model.Label
	seen := make(map[model.Label]bool)
	add := func(l model.Label) {
		if seen[l] {
			return
		}
		seen[l] = true
		out = append(out, l)
	}

	switch class {
	case model.AssetStock:
		if sector, ok := c.sectors[symbol]; ok {
			if l, ok := c.themes[sector]; ok {
				add(l)
			}
		}
	case model.AssetETF:
		for _, theme := range c.etfs[symbol] {
			if l, ok := c.themes[theme]; ok {
				add(l)
			}
		}
	}

	add(RiskLabel(class))
	return out
}

// Sector returns the raw sector name for a stock symbol.
func (c *Catalog) Sector(symbol string) (string, bool) {
	s, ok := c.sectors[strings.ToUpper(symbol)]
	return s, ok
}

// Themes returns the raw theme list for an ETF symbol, including themes that
// do not map onto a label.
func (c *Catalog) Themes(symbol string) []string {
	return append([]string(nil), c.etfs[strings.ToUpper(symbol)]...)
}

// RiskLabel derives the Risk label from an asset class.
func RiskLabel(class model.AssetClass) model.Label {
	switch class {
	case model.AssetCrypto:
		return model.Label{Dimension: model.DimRisk, Value: HighRisk}
	case model.AssetBond:
		return model.Label{Dimension: model.DimRisk, Value: LowRisk}
	default:
		return model.Label{Dimension: model.DimRisk, Value: MediumRisk}
	}
}
