package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

var matchHeader = []string{
	"rank", "portfolio_id", "name", "score", "risk_level",
	"expected_return", "expected_volatility", "rebalance_frequency", "holdings",
}

// WriteMatchesCSV writes ranked suitability results, one row per portfolio.
// Holdings are written as SYMBOL:allocation pairs separated by semicolons.
func WriteMatchesCSV(w io.Writer, results []model.SuitabilityResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(matchHeader); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for i, r := range results {
		p := r.Portfolio
		if p == nil {
			return eris.Errorf("export: result %d has no portfolio", i+1)
		}
		holdings := make([]string, len(p.Holdings))
		for j, h := range p.Holdings {
			holdings[j] = h.Symbol + ":" + formatFloat(h.Allocation)
		}
		rec := []string{
			strconv.Itoa(i + 1),
			p.ID,
			p.Name,
			formatFloat(r.Score),
			strconv.Itoa(p.RiskLevel),
			formatFloat(p.ExpectedReturn),
			formatFloat(p.ExpectedVolatility),
			string(p.Rebalance),
			strings.Join(holdings, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return eris.Wrapf(err, "export: write csv row %d", i+1)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
