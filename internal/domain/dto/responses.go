package dto

// AnalysisMetrics carries the derived summary statistics of the analysis
// endpoint. Nil fields serialize as explicit JSON nulls: a metric that
// cannot be computed is reported as null, never omitted or zeroed.
type AnalysisMetrics struct {
	PriceChangeAbsolute *float64 `json:"price_change_absolute" example:"12.34"`
	PriceChangePercent  *float64 `json:"price_change_percent" example:"6.78"`
	Volatility          *float64 `json:"volatility" example:"22.10"`
	SMA50               *float64 `json:"sma_50" example:"187.65"`
	SMA200              *float64 `json:"sma_200" example:"179.02"`
	RecentHigh          *float64 `json:"recent_high" example:"199.62"`
	RecentLow           *float64 `json:"recent_low" example:"164.08"`
}

// AnalysisInsight carries the qualitative reading of the analysis endpoint.
type AnalysisInsight struct {
	TrendDirection           string `json:"trend_direction" example:"Bullish"`
	VolatilityAssessment     string `json:"volatility_assessment" example:"Moderate"`
	InvestmentConsiderations string `json:"investment_considerations"`
}

// AnalysisResponse is the success body of POST /company_analysis.
//
// swagger:model AnalysisResponse
type AnalysisResponse struct {
	Symbol   string          `json:"symbol" example:"AAPL"`
	Metrics  AnalysisMetrics `json:"metrics"`
	Insights AnalysisInsight `json:"insights"`
}

// Officer is one leadership entry of the company info response.
type Officer struct {
	Name  *string `json:"name" example:"Timothy D. Cook"`
	Title *string `json:"title" example:"Chief Executive Officer"`
}

// CompanyInfoResponse is the success body of GET /company/{symbol}.
//
// swagger:model CompanyInfoResponse
type CompanyInfoResponse struct {
	Symbol          string    `json:"symbol" example:"AAPL"`
	CompanyName     *string   `json:"company_name" example:"Apple Inc."`
	BusinessSummary *string   `json:"business_summary"`
	Industry        *string   `json:"industry" example:"Consumer Electronics"`
	Sector          *string   `json:"sector" example:"Technology"`
	Officers        []Officer `json:"officers"`
}

// HistoricalDataPoint is one OHLCV row of the historical data response.
// Dates are YYYY-MM-DD strings; absent values serialize as null.
type HistoricalDataPoint struct {
	Date   string   `json:"date" example:"2024-01-02"`
	Open   *float64 `json:"open" example:"187.15"`
	High   *float64 `json:"high" example:"188.44"`
	Low    *float64 `json:"low" example:"183.89"`
	Close  *float64 `json:"close" example:"185.64"`
	Volume *int64   `json:"volume" example:"82488700"`
}

// HistoricalDataResponse is the success body of POST /historical_stock.
//
// swagger:model HistoricalDataResponse
type HistoricalDataResponse struct {
	Symbol string                `json:"symbol" example:"AAPL"`
	Data   []HistoricalDataPoint `json:"data"`
}

// StockDataResponse is the success body of GET /stock/{symbol}.
//
// swagger:model StockDataResponse
type StockDataResponse struct {
	Symbol           string   `json:"symbol" example:"AAPL"`
	MarketState      *string  `json:"market_state" example:"REGULAR"`
	CurrentPrice     *float64 `json:"current_price" example:"227.52"`
	PercentageChange *float64 `json:"percentage_change" example:"-0.43"`
	OpenPrice        *float64 `json:"open_price" example:"228.46"`
	HighPrice        *float64 `json:"high_price" example:"229.09"`
	LowPrice         *float64 `json:"low_price" example:"225.41"`
	Volume           *int64   `json:"volume" example:"38766800"`
	PreviousClose    *float64 `json:"previous_close" example:"228.50"`
}
