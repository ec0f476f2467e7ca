// Package plan assembles an investment plan from a risk profile and a chosen
// portfolio.
package plan

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Generator builds investment plans. It is stateless.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator { return &Generator{} }

// Generate builds the plan for profile and p. It performs no I/O.
func (g *Generator) Generate(profile *model.RiskProfile, p *model.Portfolio) *model.InvestmentPlan {
	factors := append([]string{}, profile.RiskFactors...)

	return &model.InvestmentPlan{
		Summary: model.PlanSummary{
			PortfolioID:        p.ID,
			PortfolioName:      p.Name,
			RiskLevel:          p.RiskLevel,
			ExpectedReturn:     p.ExpectedReturn,
			ExpectedVolatility: p.ExpectedVolatility,
			Rebalance:          p.Rebalance,
			RiskScore:          profile.Score,
			Tolerance:          profile.Tolerance,
		},
		Allocation:     Percentages(p.Holdings),
		LabelBreakdown: LabelBreakdown(p.Holdings),
		AllocationGap:  AllocationGap(profile.RecommendedAllocation, p.Holdings),
		Steps:          Steps(profile.Tolerance, p),
		RiskFactors:    factors,
	}
}

// Percentages re-expresses holding weights as whole percentages that sum to
// exactly 100, using largest-remainder rounding. Ties in the remainder go to
// the earlier holding.
func Percentages(holdings []model.Holding) []model.AllocationLine {
	lines := make([]model.AllocationLine, len(holdings))
	if len(holdings) == 0 {
		return lines
	}

	total := holdingTotal(holdings)
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, len(holdings))
	assigned := 0

	for i, h := range holdings {
		exact := 0.0
		if total > 0 {
			exact = h.Allocation / total * 100
		}
		// Shave float noise so 15.000000000000002 floors to 15.
		exact = math.Round(exact*1e9) / 1e9
		whole := math.Floor(exact)
		lines[i] = model.AllocationLine{Symbol: h.Symbol, Name: h.Name, Percent: int(whole)}
		rems[i] = rem{idx: i, frac: exact - whole}
		assigned += int(whole)
	}

	if total <= 0 {
		return lines
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; assigned < 100; i = (i + 1) % len(rems) {
		lines[rems[i].idx].Percent++
		assigned++
	}
	return lines
}

// LabelBreakdown returns, per dimension, the share of portfolio value
// carrying each label value, sorted by share descending then value.
func LabelBreakdown(holdings []model.Holding) map[model.Dimension][]model.LabelShare {
	total := holdingTotal(holdings)
	acc := make(map[model.Dimension]map[string]float64)

	for _, h := range holdings {
		seen := make(map[model.Label]bool)
		for _, l := range h.Labels {
			if seen[l] {
				continue
			}
			seen[l] = true
			if acc[l.Dimension] == nil {
				acc[l.Dimension] = make(map[string]float64)
			}
			acc[l.Dimension][l.Value] += h.Allocation
		}
	}

	out := make(map[model.Dimension][]model.LabelShare, len(acc))
	for dim, values := range acc {
		shares := make([]model.LabelShare, 0, len(values))
		for v, w := range values {
			pct := 0.0
			if total > 0 {
				pct = math.Min(100, round2(w/total*100))
			}
			shares = append(shares, model.LabelShare{Value: v, Percent: pct})
		}
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].Percent != shares[j].Percent {
				return shares[i].Percent > shares[j].Percent
			}
			return shares[i].Value < shares[j].Value
		})
		out[dim] = shares
	}
	return out
}

// AllocationGap returns recommended minus actual exposure for every asset
// bucket. Positive values mean the portfolio is under the recommendation.
func AllocationGap(recommended model.Allocation, holdings []model.Holding) model.Allocation {
	total := holdingTotal(holdings)
	exposure := make(model.Allocation, len(model.AssetBuckets))
	if total > 0 {
		for _, h := range holdings {
			exposure[h.AssetClass.Bucket()] += h.Allocation / total
		}
	}

	gap := make(model.Allocation, len(model.AssetBuckets))
	for _, b := range model.AssetBuckets {
		gap[b] = math.Round((recommended[b]-exposure[b])*1e4) / 1e4
	}
	return gap
}

// Steps returns the implementation narrative for a tolerance and portfolio.
func Steps(tol model.Tolerance, p *model.Portfolio) []model.PlanStep {
	return []model.PlanStep{
		{Title: "Fund the account", Detail: entryApproach(tol)},
		{
			Title:  "Buy the target allocation",
			Detail: fmt.Sprintf("Purchase the %d holdings of the %s at the weights listed in the allocation table.", len(p.Holdings), p.Name),
		},
		{Title: "Review on schedule", Detail: reviewCadence(p.Rebalance)},
		{
			Title:  "Rebalance on drift",
			Detail: fmt.Sprintf("Rebalance early if any holding drifts more than %g percentage points from its target weight.", DriftBand(tol)),
		},
		{Title: "Reassess your profile", Detail: "Retake the risk questionnaire once a year or after a major change in income, goals or time horizon."},
	}
}

// DriftBand is the allowed deviation from target weight, in percentage
// points, before an off-cycle rebalance.
func DriftBand(tol model.Tolerance) float64 {
	switch tol {
	case model.Conservative:
		return 3
	case model.Moderate:
		return 5
	case model.Aggressive:
		return 7.5
	case model.VeryAggressive:
		return 10
	}
	return 5
}

func entryApproach(tol model.Tolerance) string {
	switch tol {
	case model.Conservative:
		return "Invest in three equal tranches over three months to limit timing risk."
	case model.Moderate:
		return "Invest half now and the remainder in two equal tranches over the next two months."
	case model.Aggressive:
		return "Invest the full amount now, holding back up to 5% in cash for pullbacks."
	case model.VeryAggressive:
		return "Invest the full amount now."
	}
	return "Invest the full amount now."
}

func reviewCadence(f model.RebalanceFrequency) string {
	switch f {
	case model.RebalanceMonthly:
		return "Review positions every month and rebalance back to target weights."
	case model.RebalanceQuarterly:
		return "Review positions every quarter and rebalance back to target weights."
	case model.RebalanceSemiAnnually:
		return "Review positions every six months and rebalance back to target weights."
	}
	return fmt.Sprintf("Review positions on a %s schedule and rebalance back to target weights.", f)
}

func holdingTotal(holdings []model.Holding) float64 {
	w := make([]float64, len(holdings))
	for i, h := range holdings {
		w[i] = h.Allocation
	}
	return floats.Sum(w)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
