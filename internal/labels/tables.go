package labels

import "github.com/sells-group/advisor-cli/internal/model"

func stockSectors() map[string]string {
	return map[string]string{
		// Technology
		"AAPL": "Technology", "MSFT": "Technology", "GOOGL": "Technology",
		"META": "Technology", "NVDA": "Technology", "AMD": "Technology",
		"INTC": "Technology", "CRM": "Technology", "ORCL": "Technology",
		"TSM": "Technology", "ASML": "Technology",

		// Healthcare
		"JNJ": "Healthcare", "PFE": "Healthcare", "UNH": "Healthcare",
		"ABBV": "Healthcare", "TMO": "Healthcare", "ABT": "Healthcare",
		"DHR": "Healthcare", "BMY": "Healthcare",

		// Financials
		"JPM": "Financial Services", "BAC": "Financial Services",
		"WFC": "Financial Services", "GS": "Financial Services",
		"MS": "Financial Services", "C": "Financial Services",
		"V": "Financial Services", "MA": "Financial Services",

		// Energy
		"XOM": "Energy", "CVX": "Energy", "SLB": "Energy",
		"COP": "Energy", "EOG": "Energy",
		// Held by the clean energy portfolio but absent from the base table.
		"ENPH": "Energy",

		// Consumer
		"AMZN": "Consumer Discretionary", "TSLA": "Consumer Discretionary",
		"HD": "Consumer Discretionary", "NKE": "Consumer Discretionary",
		"SBUX": "Consumer Discretionary", "MCD": "Consumer Staples",
		"KO": "Consumer Staples", "PEP": "Consumer Staples",
		"WMT": "Consumer Staples", "PG": "Consumer Staples",

		// Industrials
		"BA": "Industrial", "CAT": "Industrial", "GE": "Industrial",
		"HON": "Industrial", "LMT": "Industrial",

		// Communication
		"DIS": "Communication Services", "NFLX": "Communication Services",
		"CMCSA": "Communication Services", "VZ": "Communication Services",
		"T": "Communication Services",
	}
}

// etfThemes lists raw themes per ETF. Themes with no entry in themeLabels
// (e.g. "Broad Market", "Cyclical") are descriptive only.
func etfThemes() map[string][]string {
	return map[string][]string{
		"SPY":  {"US Market", "Large Cap", "Broad Market"},
		"QQQ":  {"Technology", "Growth Stock", "US Market"},
		"VTI":  {"US Market", "Total Market", "Diversified"},
		"VEA":  {"Developed Market", "International", "Europe"},
		"VWO":  {"Emerging Market", "International", "Asia Pacific"},
		"IWM":  {"US Market", "Small Cap", "Growth Stock"},
		"XLK":  {"Technology", "Sector", "Growth Stock"},
		"XLV":  {"Healthcare", "Sector", "Defensive"},
		"XLF":  {"Financial Services", "Sector", "Value Stock"},
		"XLE":  {"Energy", "Sector", "Cyclical"},
		"XLY":  {"Consumer Discretionary", "Sector", "Growth Stock"},
		"XLP":  {"Consumer Staples", "Sector", "Defensive"},
		"XLI":  {"Industrial", "Sector", "Cyclical"},
		"XLB":  {"Materials", "Sector", "Cyclical"},
		"XLU":  {"Utilities", "Sector", "Defensive", "Dividend Stock"},
		"XLRE": {"Real Estate", "Sector", "Income Focused"},
		"VYM":  {"Dividend Stock", "Value Stock", "Income Focused"},
		"SCHD": {"Dividend Stock", "Value Stock", "Income Focused"},
		"VNQ":  {"Real Estate", "REITs", "Income Focused"},
		// SCHH and ESG are catalog holdings the base theme table omits.
		"SCHH": {"Real Estate", "REITs", "Income Focused"},
		"ESG":  {"ESG Compliant", "Sustainable", "US Market", "Large Cap"},
	}
}

// themeLabels maps raw sector and theme names onto labels.
func themeLabels() map[string]model.Label {
	m := make(map[string]model.Label)
	put := func(d model.Dimension, value string, names ...string) {
		if len(names) == 0 {
			names = []string{value}
		}
		for _, n := range names {
			m[n] = model.Label{Dimension: d, Value: value}
		}
	}

	put(model.DimSector, "Technology")
	put(model.DimSector, "Healthcare")
	put(model.DimSector, "Financial Services")
	put(model.DimSector, "Energy")
	put(model.DimSector, "Consumer Goods", "Consumer Discretionary", "Consumer Staples")
	put(model.DimSector, "Industrial")
	put(model.DimSector, "Materials")
	put(model.DimSector, "Utilities")
	put(model.DimSector, "Real Estate", "Real Estate", "REITs")
	put(model.DimSector, "Communication Services")

	put(model.DimGeography, "US Market")
	put(model.DimGeography, "Emerging Market")
	put(model.DimGeography, "Developed Market")
	put(model.DimGeography, "Asia Pacific")
	put(model.DimGeography, "Europe")

	put(model.DimTheme, "Growth Stock")
	put(model.DimTheme, "Value Stock")
	put(model.DimTheme, "Dividend Stock")
	put(model.DimTheme, "Blue Chip")
	put(model.DimTheme, "Small Cap")
	put(model.DimTheme, "Large Cap")
	put(model.DimTheme, "Mid Cap")

	put(model.DimStyle, "ESG Compliant")
	put(model.DimStyle, "Sustainable")
	put(model.DimStyle, "Income Focused")
	put(model.DimStyle, "Capital Appreciation")
	return m
}
