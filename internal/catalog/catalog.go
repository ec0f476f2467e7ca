// Package catalog defines the fixed set of model portfolios.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/floats"

	"github.com/sells-group/advisor-cli/internal/labels"
	"github.com/sells-group/advisor-cli/internal/model"
)

// ErrUnknownPortfolio is returned by Get for an ID not in the catalog.
var ErrUnknownPortfolio = eris.New("catalog: unknown portfolio")

// allocationEpsilon bounds the rounding error allowed in holding weights.
const allocationEpsilon = 1e-9

// Catalog is the read-only list of model portfolios in declaration order.
type Catalog struct {
	portfolios []*model.Portfolio
	byID       map[string]*model.Portfolio
}

// New builds the catalog and labels every holding with lc.
func New(lc *labels.Catalog) *Catalog {
	return FromPortfolios(lc, defaultPortfolios())
}

// FromPortfolios builds a catalog from caller-supplied portfolios. Holdings
// are relabeled with lc; any labels already present are replaced.
func FromPortfolios(lc *labels.Catalog, ps []model.Portfolio) *Catalog {
	c := &Catalog{byID: make(map[string]*model.Portfolio, len(ps))}
	for i := range ps {
		p := ps[i]
		holdings := make([]model.Holding, len(p.Holdings))
		for j, h := range p.Holdings {
			h.Labels = lc.Label(h.Symbol, h.AssetClass)
			holdings[j] = h
		}
		p.Holdings = holdings
		c.portfolios = append(c.portfolios, &p)
		c.byID[strings.ToLower(p.ID)] = &p
	}
	return c
}

// All returns the portfolios in declaration order. Callers must not modify
// the returned portfolios.
func (c *Catalog) All() []*model.Portfolio {
	return append([]*model.Portfolio(nil), c.portfolios...)
}

// Len returns the number of portfolios.
func (c *Catalog) Len() int { return len(c.portfolios) }

// Get looks up a portfolio by ID.
func (c *Catalog) Get(id string) (*model.Portfolio, error) {
	p, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownPortfolio, "id %q", id)
	}
	return p, nil
}

// IDs returns portfolio IDs in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.portfolios))
	for i, p := range c.portfolios {
		ids[i] = p.ID
	}
	return ids
}

// Validate checks that every portfolio has holdings summing to 1.0, a risk
// level in 1..10 and a unique ID.
func (c *Catalog) Validate() error {
	var errs []string
	seen := make(map[string]bool)

	for _, p := range c.portfolios {
		if p.ID == "" {
			errs = append(errs, fmt.Sprintf("portfolio %q has no id", p.Name))
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate portfolio id %q", p.ID))
		}
		seen[p.ID] = true

		if p.RiskLevel < 1 || p.RiskLevel > 10 {
			errs = append(errs, fmt.Sprintf("%s: risk_level %d outside 1..10", p.ID, p.RiskLevel))
		}
		if len(p.Holdings) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no holdings", p.ID))
			continue
		}
		if sum := HoldingSum(p); math.Abs(sum-1) > allocationEpsilon {
			errs = append(errs, fmt.Sprintf("%s: holdings sum to %.6f", p.ID, sum))
		}
		for _, h := range p.Holdings {
			if h.Allocation <= 0 {
				errs = append(errs, fmt.Sprintf("%s: %s allocation must be > 0", p.ID, h.Symbol))
			}
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("catalog: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// HoldingSum returns the sum of a portfolio's holding allocations.
func HoldingSum(p *model.Portfolio) float64 {
	w := make([]float64, len(p.Holdings))
	for i, h := range p.Holdings {
		w[i] = h.Allocation
	}
	return floats.Sum(w)
}
