package dto

// AnalysisRequest is the body of POST /company_analysis.
//
// Dates use the YYYY-MM-DD format and the range is inclusive of start_date
// and exclusive of end_date, matching the provider's history contract.
type AnalysisRequest struct {
	Symbol    string `json:"symbol" example:"AAPL"`
	StartDate string `json:"start_date" example:"2024-01-02"`
	EndDate   string `json:"end_date" example:"2024-06-28"`
}

// HistoricalDataRequest is the body of POST /historical_stock.
type HistoricalDataRequest struct {
	Symbol    string `json:"symbol" example:"AAPL"`
	StartDate string `json:"start_date" example:"2024-01-02"`
	EndDate   string `json:"end_date" example:"2024-06-28"`
}
