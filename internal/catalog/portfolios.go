package catalog

import "github.com/sells-group/advisor-cli/internal/model"

// Portfolio IDs.
const (
	Core      = "core"
	Growth    = "growth"
	Dividend  = "dividend"
	ESG       = "esg"
	REITs     = "reits"
	Defensive = "defensive"
)

func holding(symbol, name string, class model.AssetClass, alloc float64, desc string) model.Holding {
	return model.Holding{Symbol: symbol, Name: name, AssetClass: class, Allocation: alloc, Description: desc}
}

func defaultPortfolios() []model.Portfolio {
	return []model.Portfolio{
		{
			ID:                 Core,
			Name:               "Core Portfolio",
			Description:        "A balanced, diversified portfolio suitable for most investors. Mix of stocks, ETFs, and bonds.",
			RiskLevel:          5,
			ExpectedReturn:     8.5,
			ExpectedVolatility: 12.0,
			Rebalance:          model.RebalanceQuarterly,
			Holdings: []model.Holding{
				holding("SPY", "S&P 500 ETF", model.AssetETF, 0.30, "Broad US market exposure"),
				holding("VTI", "Total Stock Market ETF", model.AssetETF, 0.25, "Total US market"),
				holding("VEA", "Developed Markets ETF", model.AssetETF, 0.20, "International developed markets"),
				holding("VWO", "Emerging Markets ETF", model.AssetETF, 0.15, "Emerging markets exposure"),
				holding("TLT", "20+ Year Treasury Bond ETF", model.AssetBond, 0.10, "Long-term bonds for stability"),
			},
		},
		{
			ID:                 Growth,
			Name:               "Growth Portfolio",
			Description:        "Focus on technology and growth companies with high potential returns.",
			RiskLevel:          7,
			ExpectedReturn:     12.0,
			ExpectedVolatility: 18.0,
			Rebalance:          model.RebalanceMonthly,
			Holdings: []model.Holding{
				holding("QQQ", "NASDAQ 100 ETF", model.AssetETF, 0.35, "Tech-heavy growth"),
				holding("AAPL", "Apple Inc", model.AssetStock, 0.15, "Tech giant"),
				holding("MSFT", "Microsoft Corporation", model.AssetStock, 0.15, "Cloud and software leader"),
				holding("NVDA", "NVIDIA Corporation", model.AssetStock, 0.15, "AI and GPU leader"),
				holding("TSLA", "Tesla Inc", model.AssetStock, 0.10, "Electric vehicle leader"),
				holding("AMZN", "Amazon.com Inc", model.AssetStock, 0.10, "E-commerce and cloud"),
			},
		},
		{
			ID:                 Dividend,
			Name:               "Dividend Portfolio",
			Description:        "Focus on dividend-paying stocks and income-generating assets for regular cash flow.",
			RiskLevel:          4,
			ExpectedReturn:     6.5,
			ExpectedVolatility: 10.0,
			Rebalance:          model.RebalanceQuarterly,
			Holdings: []model.Holding{
				holding("VYM", "High Dividend Yield ETF", model.AssetETF, 0.30, "High dividend yield"),
				holding("SCHD", "Dividend Equity ETF", model.AssetETF, 0.25, "Quality dividend stocks"),
				holding("JNJ", "Johnson & Johnson", model.AssetStock, 0.15, "Healthcare dividend aristocrat"),
				holding("KO", "Coca-Cola Company", model.AssetStock, 0.10, "Consumer staples dividend"),
				holding("PG", "Procter & Gamble", model.AssetStock, 0.10, "Consumer goods dividend"),
				holding("XLU", "Utilities Sector ETF", model.AssetETF, 0.10, "Utilities for income"),
			},
		},
		{
			ID:                 ESG,
			Name:               "ESG Portfolio",
			Description:        "Environmentally and socially responsible investments aligned with sustainability goals.",
			RiskLevel:          5,
			ExpectedReturn:     9.0,
			ExpectedVolatility: 13.0,
			Rebalance:          model.RebalanceQuarterly,
			Holdings: []model.Holding{
				holding("ESG", "ESG ETF", model.AssetETF, 0.40, "ESG-focused companies"),
				holding("TSLA", "Tesla Inc", model.AssetStock, 0.20, "Electric vehicles"),
				holding("ENPH", "Enphase Energy", model.AssetStock, 0.15, "Solar energy"),
				holding("XLU", "Utilities Sector ETF", model.AssetETF, 0.15, "Clean utilities"),
				holding("VEA", "Developed Markets ETF", model.AssetETF, 0.10, "International ESG"),
			},
		},
		{
			ID:                 REITs,
			Name:               "REITs Portfolio",
			Description:        "Real Estate Investment Trusts for real estate exposure and income generation.",
			RiskLevel:          5,
			ExpectedReturn:     7.5,
			ExpectedVolatility: 14.0,
			Rebalance:          model.RebalanceQuarterly,
			Holdings: []model.Holding{
				holding("VNQ", "Real Estate ETF", model.AssetETF, 0.50, "US real estate"),
				holding("XLRE", "Real Estate Sector ETF", model.AssetETF, 0.30, "Real estate sector"),
				holding("SCHH", "US REIT ETF", model.AssetETF, 0.20, "Diversified REITs"),
			},
		},
		{
			ID:                 Defensive,
			Name:               "Defensive Portfolio",
			Description:        "Low-risk portfolio focused on stability and capital preservation.",
			RiskLevel:          3,
			ExpectedReturn:     5.5,
			ExpectedVolatility: 8.0,
			Rebalance:          model.RebalanceSemiAnnually,
			Holdings: []model.Holding{
				holding("TLT", "20+ Year Treasury Bond ETF", model.AssetBond, 0.40, "Long-term bonds"),
				holding("XLP", "Consumer Staples ETF", model.AssetETF, 0.25, "Stable consumer goods"),
				holding("XLU", "Utilities Sector ETF", model.AssetETF, 0.20, "Defensive utilities"),
				holding("XLV", "Healthcare Sector ETF", model.AssetETF, 0.15, "Healthcare stability"),
			},
		},
	}
}
