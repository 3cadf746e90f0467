package models

// Metrics holds the summary statistics derived from a close-price series.
//
// Each field is independently present or nil:
//   - nil when the series lacks enough points (fewer than 50 closes means
//     SMA50 is nil, fewer than 200 means SMA200 is nil), or
//   - nil when computing it would divide by zero (first close of 0 means
//     PriceChangePercent is nil).
//
// Present values are rounded to 2 decimals.
type Metrics struct {
	PriceChangeAbsolute *float64
	PriceChangePercent  *float64
	Volatility          *float64
	SMA50               *float64
	SMA200              *float64
	RecentHigh          *float64
	RecentLow           *float64
}

// Insight is the qualitative reading derived from Metrics by fixed rules.
type Insight struct {
	TrendDirection           string
	VolatilityAssessment     string
	InvestmentConsiderations string
}

// Analysis is the immutable result of running the analytics transform
// over a fetched price series. Built fresh per request, never cached.
type Analysis struct {
	Metrics Metrics
	Insight Insight
}
