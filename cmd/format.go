package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/sells-group/advisor-cli/internal/model"
)

const (
	noMatchMessage         = "No suitable portfolio found."
	noStrategyMatchMessage = "No suitable strategy found."
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatQuestions writes the questionnaire with its options and weights.
func formatQuestions(out io.Writer, qs []model.Question) {
	for i, q := range qs {
		weight := "profile only"
		if q.Weight > 0 {
			weight = fmt.Sprintf("weight %.0f%%", q.Weight*100)
		}
		_, _ = fmt.Fprintf(out, "%d. %s  [%s, %s]\n", i+1, q.Text, q.ID, weight)
		for _, o := range q.Options {
			_, _ = fmt.Fprintf(out, "   %d) %s\n", o.Value, o.Text)
		}
	}
}

// formatCatalog writes one block per portfolio with its labeled holdings.
func formatCatalog(out io.Writer, ps []*model.Portfolio) {
	for i, p := range ps {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprintf(out, "%s (%s)  risk %d/10, return %.1f%%, volatility %.1f%%, %s rebalance\n",
			p.Name, p.ID, p.RiskLevel, p.ExpectedReturn, p.ExpectedVolatility, p.Rebalance)
		if p.Description != "" {
			_, _ = fmt.Fprintf(out, "  %s\n", p.Description)
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, h := range p.Holdings {
			_, _ = fmt.Fprintf(w, "  %s\t%s\t%.0f%%\t%s\n", h.Symbol, h.AssetClass, h.Allocation*100, labelList(h.Labels))
		}
		_ = w.Flush()
	}
}

func labelList(ls []model.Label) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = l.Value
	}
	return strings.Join(parts, ", ")
}

// formatProfile writes a human-readable risk profile.
func formatProfile(out io.Writer, p *model.RiskProfile) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Risk score:\t%.2f/100\n", p.Score)
	_, _ = fmt.Fprintf(w, "Risk tolerance:\t%s\n", p.Tolerance.DisplayName())
	_, _ = fmt.Fprintf(w, "Investment horizon:\t%s\n", p.Horizon.DisplayName())
	_, _ = fmt.Fprintf(w, "Experience level:\t%s\n", p.ExperienceLevel.DisplayName())
	_, _ = fmt.Fprintf(w, "Max drawdown tolerance:\t%.1f%%\n", p.MaxDrawdown*100)
	_, _ = fmt.Fprintf(w, "Volatility tolerance:\t%.1f%%\n", p.VolatilityTolerance*100)
	_, _ = fmt.Fprintf(w, "Diversification preference:\t%.0f%%\n", p.DiversificationPreference*100)
	_, _ = fmt.Fprintf(w, "Liquidity needs:\t%.0f%%\n", p.LiquidityNeeds*100)
	_ = w.Flush()

	_, _ = fmt.Fprintln(out, "\nRecommended allocation:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, b := range model.AssetBuckets {
		if v := p.RecommendedAllocation[b]; v > 0 {
			_, _ = fmt.Fprintf(w, "  %s\t%.0f%%\n", b, v*100)
		}
	}
	_ = w.Flush()

	if len(p.RiskFactors) > 0 {
		_, _ = fmt.Fprintln(out, "\nRisk factors:")
		for _, rf := range p.RiskFactors {
			_, _ = fmt.Fprintf(out, "  - %s\n", rf)
		}
	}
}

// formatMatches writes ranked matches as a table.
func formatMatches(out io.Writer, rs []model.SuitabilityResult) {
	if len(rs) == 0 {
		_, _ = fmt.Fprintln(out, noMatchMessage)
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "RANK\tPORTFOLIO\tSCORE\tRISK\tRETURN\tVOLATILITY\tREBALANCE")
	_, _ = fmt.Fprintln(w, "----\t---------\t-----\t----\t------\t----------\t---------")
	for i, r := range rs {
		p := r.Portfolio
		_, _ = fmt.Fprintf(w, "%d\t%s\t%.1f\t%d/10\t%.1f%%\t%.1f%%\t%s\n",
			i+1, p.Name, r.Score, p.RiskLevel, p.ExpectedReturn, p.ExpectedVolatility, p.Rebalance)
	}
	_ = w.Flush()
}

// formatPlan writes a human-readable investment plan.
func formatPlan(out io.Writer, plan *model.InvestmentPlan) {
	s := plan.Summary
	_, _ = fmt.Fprintf(out, "%s (%s)\n", s.PortfolioName, s.PortfolioID)
	_, _ = fmt.Fprintf(out, "Risk %d/10 for a %s investor (score %.2f). Expected return %.1f%%, volatility %.1f%%, rebalanced %s.\n",
		s.RiskLevel, s.Tolerance.DisplayName(), s.RiskScore, s.ExpectedReturn, s.ExpectedVolatility, strings.ToLower(string(s.Rebalance)))

	_, _ = fmt.Fprintln(out, "\nAllocation:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, a := range plan.Allocation {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%d%%\n", a.Symbol, a.Name, a.Percent)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintln(out, "\nExposure:")
	for _, dim := range model.Dimensions {
		shares := plan.LabelBreakdown[dim]
		if len(shares) == 0 {
			continue
		}
		parts := make([]string, len(shares))
		for i, sh := range shares {
			parts[i] = fmt.Sprintf("%s %.0f%%", sh.Value, sh.Percent)
		}
		_, _ = fmt.Fprintf(out, "  %s: %s\n", dim, strings.Join(parts, ", "))
	}

	if len(plan.AllocationGap) > 0 {
		_, _ = fmt.Fprintln(out, "\nGap to recommended allocation:")
		buckets := make([]string, 0, len(plan.AllocationGap))
		for b := range plan.AllocationGap {
			buckets = append(buckets, string(b))
		}
		sort.Strings(buckets)
		for _, b := range buckets {
			_, _ = fmt.Fprintf(out, "  %s %+.1f%%\n", b, plan.AllocationGap[model.AssetBucket(b)]*100)
		}
	}

	_, _ = fmt.Fprintln(out, "\nSteps:")
	for i, st := range plan.Steps {
		_, _ = fmt.Fprintf(out, "  %d. %s: %s\n", i+1, st.Title, st.Detail)
	}

	if len(plan.RiskFactors) > 0 {
		_, _ = fmt.Fprintln(out, "\nRisk factors:")
		for _, rf := range plan.RiskFactors {
			_, _ = fmt.Fprintf(out, "  - %s\n", rf)
		}
	}
}

// formatStrategyCatalog writes one line per strategy.
func formatStrategyCatalog(out io.Writer, ss []*model.Strategy) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTRATEGY\tTYPE\tRISK\tRETURN\tDRAWDOWN\tHORIZON\tCOMPLEXITY")
	_, _ = fmt.Fprintln(w, "--\t--------\t----\t----\t------\t--------\t-------\t----------")
	for _, s := range ss {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d/10\t%.1f%%\t%.1f%%\t%s\t%s\n",
			s.ID, s.Name, s.Type.DisplayName(), s.RiskLevel, s.ExpectedReturn, s.MaxDrawdown, s.TimeFrame, s.Complexity.DisplayName())
	}
	_ = w.Flush()
}

// formatStrategies writes the recommended strategies and the capital split.
func formatStrategies(out io.Writer, r *model.StrategyReport) {
	if len(r.Strategies) == 0 {
		_, _ = fmt.Fprintln(out, noStrategyMatchMessage)
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "RANK\tSTRATEGY\tSCORE\tRISK\tRETURN\tCOMPLEXITY")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----\t----\t------\t----------")
	for i, m := range r.Strategies {
		s := m.Strategy
		_, _ = fmt.Fprintf(w, "%d\t%s\t%.1f\t%d/10\t%.1f%%\t%s\n",
			i+1, s.Name, m.Score, s.RiskLevel, s.ExpectedReturn, s.Complexity.DisplayName())
	}
	_ = w.Flush()

	p := r.Portfolio
	_, _ = fmt.Fprintln(out, "\nCapital split:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, a := range p.Strategies {
		_, _ = fmt.Fprintf(w, "  %s\t%.1f%%\n", a.Name, a.Allocation*100)
	}
	_, _ = fmt.Fprintf(w, "  Cash Reserve\t%.1f%%\n", p.CashReserve*100)
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "\nExpected return %.1f%%, volatility %.2f, Sharpe %.2f, worst drawdown %.0f%%. Rebalance %s.\n",
		p.ExpectedReturn, p.Volatility, p.SharpeRatio, p.MaxDrawdown, strings.ToLower(p.Rebalancing))
}

// formatAssessments writes a tabular list of saved assessments.
func formatAssessments(out io.Writer, as []model.Assessment) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tUSER\tSCORE\tTOLERANCE\tTOP MATCH\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t----\t-----\t---------\t---------\t-------")
	for _, a := range as {
		top := "-"
		if len(a.Matches) > 0 && a.Matches[0].Portfolio != nil {
			top = a.Matches[0].Portfolio.ID
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			truncateID(a.ID),
			a.UserID,
			a.Profile.Score,
			a.Profile.Tolerance,
			top,
			a.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
