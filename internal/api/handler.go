package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mukesh881/financial-analysis-endpoints/internal/analysis"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/apperr"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/dto"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/models"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/service"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/validate"
)

// Handler provides the HTTP handlers for the four market data endpoints.
//
// Responsibilities:
//   - Validate incoming symbols, dates, and date ranges before any
//     provider call is made
//   - Delegate data retrieval and derivation to the service layer
//   - Translate service results into response DTOs
//   - Attach classified errors for the centralized ErrorHandler middleware
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): Service dependency used for all data access.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// CompanyAnalysis handles POST /company_analysis requests.
//
// CompanyAnalysis godoc
// @Summary      Analyze a company over a date range
// @Description  Computes price change, volatility, moving averages, and a qualitative insight from historical close prices
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalysisRequest  true  "Symbol and date range"
// @Success      200      {object}  dto.AnalysisResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Not Found"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /company_analysis [post]
func (h *Handler) CompanyAnalysis(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation("Invalid request body"))
		return
	}

	symbol, start, end, ok := h.checkRange(c, req.Symbol, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), symbol, start, end)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{
		Symbol: symbol,
		Metrics: dto.AnalysisMetrics{
			PriceChangeAbsolute: result.Metrics.PriceChangeAbsolute,
			PriceChangePercent:  result.Metrics.PriceChangePercent,
			Volatility:          result.Metrics.Volatility,
			SMA50:               result.Metrics.SMA50,
			SMA200:              result.Metrics.SMA200,
			RecentHigh:          result.Metrics.RecentHigh,
			RecentLow:           result.Metrics.RecentLow,
		},
		Insights: dto.AnalysisInsight{
			TrendDirection:           result.Insight.TrendDirection,
			VolatilityAssessment:     result.Insight.VolatilityAssessment,
			InvestmentConsiderations: result.Insight.InvestmentConsiderations,
		},
	})
}

// CompanyInfo handles GET /company/:symbol requests.
//
// CompanyInfo godoc
// @Summary      Get company information
// @Description  Returns name, business summary, industry, sector, and officers for a symbol
// @Tags         company
// @Produce      json
// @Param        symbol  path      string  true  "Stock ticker" example(AAPL)
// @Success      200     {object}  dto.CompanyInfoResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse        "Not Found"
// @Failure      500     {object}  dto.ErrorResponse        "Internal Error"
// @Router       /company/{symbol} [get]
func (h *Handler) CompanyInfo(c *gin.Context) {
	symbol, ok := h.checkSymbol(c, c.Param("symbol"))
	if !ok {
		return
	}

	profile, err := h.svc.CompanyInfo(c.Request.Context(), symbol)
	if err != nil {
		abortWithError(c, err)
		return
	}

	officers := make([]dto.Officer, 0, len(profile.Officers))
	for _, o := range profile.Officers {
		officers = append(officers, dto.Officer{Name: o.Name, Title: o.Title})
	}

	c.JSON(http.StatusOK, dto.CompanyInfoResponse{
		Symbol:          symbol,
		CompanyName:     profile.Name,
		BusinessSummary: profile.Summary,
		Industry:        profile.Industry,
		Sector:          profile.Sector,
		Officers:        officers,
	})
}

// HistoricalData handles POST /historical_stock requests.
//
// HistoricalData godoc
// @Summary      Get historical OHLCV data
// @Description  Returns daily open/high/low/close/volume rows for a symbol within a date range
// @Tags         historical
// @Accept       json
// @Produce      json
// @Param        request  body      dto.HistoricalDataRequest  true  "Symbol and date range"
// @Success      200      {object}  dto.HistoricalDataResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse           "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse           "Not Found"
// @Failure      500      {object}  dto.ErrorResponse           "Internal Error"
// @Router       /historical_stock [post]
func (h *Handler) HistoricalData(c *gin.Context) {
	var req dto.HistoricalDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperr.Validation("Invalid request body"))
		return
	}

	symbol, start, end, ok := h.checkRange(c, req.Symbol, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	bars, err := h.svc.History(c.Request.Context(), symbol, start, end)
	if err != nil {
		abortWithError(c, err)
		return
	}

	points := make([]dto.HistoricalDataPoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, toDataPoint(b))
	}

	c.JSON(http.StatusOK, dto.HistoricalDataResponse{Symbol: symbol, Data: points})
}

// StockData handles GET /stock/:symbol requests.
//
// StockData godoc
// @Summary      Get real-time stock data
// @Description  Returns the current market snapshot for a symbol, including derived percentage change
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true  "Stock ticker" example(AAPL)
// @Success      200     {object}  dto.StockDataResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse      "Not Found"
// @Failure      500     {object}  dto.ErrorResponse      "Internal Error"
// @Router       /stock/{symbol} [get]
func (h *Handler) StockData(c *gin.Context) {
	symbol, ok := h.checkSymbol(c, c.Param("symbol"))
	if !ok {
		return
	}

	q, err := h.svc.Snapshot(c.Request.Context(), symbol)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StockDataResponse{
		Symbol:           symbol,
		MarketState:      q.MarketState,
		CurrentPrice:     q.Price,
		PercentageChange: q.PercentageChange,
		OpenPrice:        q.Open,
		HighPrice:        q.DayHigh,
		LowPrice:         q.DayLow,
		Volume:           q.Volume,
		PreviousClose:    q.PreviousClose,
	})
}

// checkSymbol validates and normalizes a ticker symbol. On failure it
// attaches a validation error and reports false; no provider call may
// happen after that.
func (h *Handler) checkSymbol(c *gin.Context, raw string) (string, bool) {
	symbol := strings.TrimSpace(raw)
	if !validate.Symbol(symbol) {
		abortWithError(c, apperr.Validation("Invalid company symbol"))
		return "", false
	}
	return strings.ToUpper(symbol), true
}

// checkRange validates symbol and both dates, and enforces date ordering.
func (h *Handler) checkRange(c *gin.Context, rawSymbol, startDate, endDate string) (string, time.Time, time.Time, bool) {
	symbol, ok := h.checkSymbol(c, rawSymbol)
	if !ok {
		return "", time.Time{}, time.Time{}, false
	}

	if !validate.Date(startDate) || !validate.Date(endDate) {
		abortWithError(c, apperr.Validation("Invalid date format. Use YYYY-MM-DD"))
		return "", time.Time{}, time.Time{}, false
	}

	start, _ := validate.ParseDate(startDate)
	end, _ := validate.ParseDate(endDate)
	if end.Before(start) {
		abortWithError(c, apperr.Validation("End date cannot be before start date"))
		return "", time.Time{}, time.Time{}, false
	}

	return symbol, start, end, true
}

// toDataPoint shapes one bar into its wire representation.
func toDataPoint(b models.Bar) dto.HistoricalDataPoint {
	return dto.HistoricalDataPoint{
		Date:   b.Date.Format(validate.DateLayout),
		Open:   round2Ptr(b.Open),
		High:   round2Ptr(b.High),
		Low:    round2Ptr(b.Low),
		Close:  round2Ptr(b.Close),
		Volume: b.Volume,
	}
}

// round2Ptr rounds a present price to 2 decimals and leaves missing
// values missing.
func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return analysis.Round2(*v)
}

// abortWithError hands a classified error to the ErrorHandler middleware.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
