package strategy

import "github.com/sells-group/advisor-cli/internal/model"

// Strategy IDs.
const (
	DCA                = "dca"
	RSIMeanReversion   = "rsi_mean_reversion"
	EMACrossover       = "ema_crossover"
	BollingerReversion = "bollinger_mean_reversion"
	MACDMomentum       = "macd_momentum"
	MultiTimeframe     = "multi_timeframe"
	Scalping           = "scalping"
	Leverage           = "leverage"
)

func defaultStrategies() []model.Strategy {
	return []model.Strategy{
		{
			ID:                 DCA,
			Name:               "DCA (Dollar Cost Averaging)",
			Type:               model.Conservative,
			Category:           model.CategoryPositionTrading,
			Description:        "Regular purchases of fixed amounts regardless of price, reducing impact of volatility",
			RiskLevel:          2,
			ExpectedReturn:     8.0,
			MaxDrawdown:        15.0,
			Volatility:         0.20,
			TimeFrame:          model.LongTermFrame,
			CapitalRequirement: "Low",
			Complexity:         model.Beginner,
			Parameters:         map[string]any{"frequency": "weekly", "amount": 100, "assets": []string{"BTCUSDT", "ETHUSDT"}},
			Pros:               []string{"Reduces timing risk", "Simple to implement", "Low emotional stress", "Good for beginners"},
			Cons:               []string{"Lower potential returns", "No market timing advantage", "Requires discipline"},
			MarketConditions:   []string{"Bull market", "Sideways market", "Volatile market"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "BNBUSDT", "AAPL", "MSFT", "GOOGL"},
		},
		{
			ID:                 RSIMeanReversion,
			Name:               "Conservative RSI Mean Reversion",
			Type:               model.Conservative,
			Category:           model.CategoryMeanReversion,
			Description:        "Buy when RSI is oversold (30) and sell when overbought (70) with conservative position sizing",
			RiskLevel:          3,
			ExpectedReturn:     12.0,
			MaxDrawdown:        20.0,
			Volatility:         0.25,
			TimeFrame:          model.MediumTermFrame,
			CapitalRequirement: "Medium",
			Complexity:         model.Intermediate,
			Parameters:         map[string]any{"rsi_period": 14, "oversold": 30, "overbought": 70, "position_size": 0.05, "stop_loss": 0.10},
			Pros:               []string{"Works well in ranging markets", "Clear entry/exit signals", "Risk management built-in"},
			Cons:               []string{"Poor performance in strong trends", "Can generate false signals", "Requires market monitoring"},
			MarketConditions:   []string{"Sideways market", "Ranging market"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "ADAUSDT", "DOTUSDT", "AAPL", "TSLA", "NVDA"},
		},
		{
			ID:                 EMACrossover,
			Name:               "EMA Crossover Strategy",
			Type:               model.Moderate,
			Category:           model.CategoryTrendFollowing,
			Description:        "Buy when fast EMA crosses above slow EMA, sell when it crosses below",
			RiskLevel:          5,
			ExpectedReturn:     18.0,
			MaxDrawdown:        25.0,
			Volatility:         0.30,
			TimeFrame:          model.MediumTermFrame,
			CapitalRequirement: "Medium",
			Complexity:         model.Intermediate,
			Parameters:         map[string]any{"fast_ema": 12, "slow_ema": 26, "position_size": 0.10, "stop_loss": 0.15},
			Pros:               []string{"Good trend following", "Clear signals", "Works in trending markets"},
			Cons:               []string{"Lagging indicator", "Whipsaws in sideways markets", "Late entries/exits"},
			MarketConditions:   []string{"Bull market", "Bear market", "Strong trends"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT", "SPY", "QQQ", "IWM"},
		},
		{
			ID:                 BollingerReversion,
			Name:               "Bollinger Bands Mean Reversion",
			Type:               model.Moderate,
			Category:           model.CategoryMeanReversion,
			Description:        "Buy when price touches lower band, sell when it touches upper band",
			RiskLevel:          4,
			ExpectedReturn:     15.0,
			MaxDrawdown:        22.0,
			Volatility:         0.28,
			TimeFrame:          model.ShortToMediumFrame,
			CapitalRequirement: "Medium",
			Complexity:         model.Intermediate,
			Parameters:         map[string]any{"period": 20, "std_dev": 2, "position_size": 0.08, "stop_loss": 0.12},
			Pros:               []string{"Adapts to volatility", "Good risk/reward ratio", "Works in ranging markets"},
			Cons:               []string{"Poor in strong trends", "Can break out of bands", "Requires volatility"},
			MarketConditions:   []string{"Sideways market", "Volatile market"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "XRPUSDT", "ADAUSDT", "EURUSD", "GBPUSD", "USDJPY"},
		},
		{
			ID:                 MACDMomentum,
			Name:               "MACD Momentum Strategy",
			Type:               model.Aggressive,
			Category:           model.CategoryMomentum,
			Description:        "Buy when MACD line crosses above signal line, sell when it crosses below",
			RiskLevel:          7,
			ExpectedReturn:     25.0,
			MaxDrawdown:        35.0,
			Volatility:         0.40,
			TimeFrame:          model.ShortToMediumFrame,
			CapitalRequirement: "High",
			Complexity:         model.Advanced,
			Parameters:         map[string]any{"fast": 12, "slow": 26, "signal": 9, "position_size": 0.15, "stop_loss": 0.20},
			Pros:               []string{"Good momentum capture", "Trend confirmation", "High profit potential"},
			Cons:               []string{"High volatility", "False signals possible", "Requires active management"},
			MarketConditions:   []string{"Bull market", "Strong momentum"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "SOLUSDT", "AVAXUSDT", "GOLD", "SILVER", "OIL"},
		},
		{
			ID:                 MultiTimeframe,
			Name:               "Multi-Timeframe Analysis",
			Type:               model.Aggressive,
			Category:           model.CategoryTrendFollowing,
			Description:        "Combine multiple timeframes for trend confirmation and entry timing",
			RiskLevel:          6,
			ExpectedReturn:     22.0,
			MaxDrawdown:        30.0,
			Volatility:         0.35,
			TimeFrame:          model.MediumTermFrame,
			CapitalRequirement: "High",
			Complexity:         model.Advanced,
			Parameters:         map[string]any{"timeframes": []string{"1h", "4h", "1d"}, "position_size": 0.12, "stop_loss": 0.18},
			Pros:               []string{"Better trend confirmation", "Reduced false signals", "Higher accuracy"},
			Cons:               []string{"Complex analysis", "More time consuming", "Requires experience"},
			MarketConditions:   []string{"Trending market", "Clear direction"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT", "SPY", "QQQ", "IWM", "EURUSD"},
		},
		{
			ID:                 Scalping,
			Name:               "Scalping Strategy",
			Type:               model.VeryAggressive,
			Category:           model.CategoryScalping,
			Description:        "Quick trades based on short-term price movements and order book analysis",
			RiskLevel:          9,
			ExpectedReturn:     35.0,
			MaxDrawdown:        50.0,
			Volatility:         0.60,
			TimeFrame:          model.VeryShortTerm,
			CapitalRequirement: "Very high",
			Complexity:         model.Expert,
			Parameters:         map[string]any{"timeframe": "1m", "position_size": 0.20, "stop_loss": 0.05, "take_profit": 0.03},
			Pros:               []string{"High profit potential", "Quick results", "Active trading"},
			Cons:               []string{"Very high risk", "Requires constant attention", "High transaction costs", "Stressful"},
			MarketConditions:   []string{"High volatility", "Liquid markets"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "EURUSD", "GBPUSD", "SPY", "QQQ"},
		},
		{
			ID:                 Leverage,
			Name:               "Leverage Trading Strategy",
			Type:               model.VeryAggressive,
			Category:           model.CategoryMomentum,
			Description:        "Use leverage to amplify returns on strong trend signals",
			RiskLevel:          10,
			ExpectedReturn:     50.0,
			MaxDrawdown:        80.0,
			Volatility:         0.80,
			TimeFrame:          model.ShortTermFrame,
			CapitalRequirement: "Very high",
			Complexity:         model.Expert,
			Parameters:         map[string]any{"leverage": 3, "position_size": 0.25, "stop_loss": 0.10, "max_exposure": 0.75},
			Pros:               []string{"Maximum profit potential", "Capital efficiency", "Quick gains"},
			Cons:               []string{"Maximum risk", "Can lose entire capital", "Requires expert knowledge", "High stress"},
			MarketConditions:   []string{"Strong trends", "High conviction"},
			Symbols:            []string{"BTCUSDT", "ETHUSDT", "SPY", "QQQ", "EURUSD", "GOLD"},
		},
	}
}
