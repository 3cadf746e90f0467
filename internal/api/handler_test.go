package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/apperr"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/dto"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/models"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/middleware"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/service"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

// mockStockService records invocations so tests can assert that invalid
// requests never reach the service (and therefore never reach the provider).
type mockStockService struct {
	called bool

	analysis *models.Analysis
	bars     []models.Bar
	profile  *models.CompanyProfile
	quote    *models.Quote
	err      error
}

func (m *mockStockService) Analyze(_ context.Context, _ string, _, _ time.Time) (*models.Analysis, error) {
	m.called = true
	return m.analysis, m.err
}

func (m *mockStockService) History(_ context.Context, _ string, _, _ time.Time) ([]models.Bar, error) {
	m.called = true
	return m.bars, m.err
}

func (m *mockStockService) CompanyInfo(_ context.Context, _ string) (*models.CompanyProfile, error) {
	m.called = true
	return m.profile, m.err
}

func (m *mockStockService) Snapshot(_ context.Context, _ string) (*models.Quote, error) {
	m.called = true
	return m.quote, m.err
}

var _ service.StockService = (*mockStockService)(nil)

func setupRouterWithMock(svc service.StockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.Use(middleware.ErrorHandler)
	r.POST("/company_analysis", h.CompanyAnalysis)
	r.GET("/company/:symbol", h.CompanyInfo)
	r.POST("/historical_stock", h.HistoricalData)
	r.GET("/stock/:symbol", h.StockData)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid error json: %v (%s)", err, w.Body.String())
	}
	return out["error"]
}

func TestCompanyAnalysis_Validation(t *testing.T) {
	cases := []struct {
		name    string
		req     dto.AnalysisRequest
		message string
	}{
		{
			name:    "invalid symbol",
			req:     dto.AnalysisRequest{Symbol: "AA PL", StartDate: "2024-01-02", EndDate: "2024-06-28"},
			message: "Invalid company symbol",
		},
		{
			name:    "empty symbol",
			req:     dto.AnalysisRequest{StartDate: "2024-01-02", EndDate: "2024-06-28"},
			message: "Invalid company symbol",
		},
		{
			name:    "bad date format",
			req:     dto.AnalysisRequest{Symbol: "AAPL", StartDate: "2024/01/02", EndDate: "2024-06-28"},
			message: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:    "impossible calendar date",
			req:     dto.AnalysisRequest{Symbol: "AAPL", StartDate: "2024-02-30", EndDate: "2024-06-28"},
			message: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:    "end before start",
			req:     dto.AnalysisRequest{Symbol: "AAPL", StartDate: "2024-06-28", EndDate: "2024-01-02"},
			message: "End date cannot be before start date",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockStockService{}
			r := setupRouterWithMock(svc)
			w := postJSON(t, r, "/company_analysis", tc.req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400", w.Code)
			}
			if got := errBody(t, w); got != tc.message {
				t.Fatalf("error %q, want %q", got, tc.message)
			}
			if svc.called {
				t.Fatalf("service must not be invoked on validation failure")
			}
		})
	}
}

func TestCompanyAnalysis_Success(t *testing.T) {
	svc := &mockStockService{
		analysis: &models.Analysis{
			Metrics: models.Metrics{PriceChangeAbsolute: f(10), PriceChangePercent: f(10), RecentHigh: f(110), RecentLow: f(100)},
			Insight: models.Insight{TrendDirection: "Bullish", VolatilityAssessment: "Moderate", InvestmentConsiderations: "..."},
		},
	}
	r := setupRouterWithMock(svc)
	w := postJSON(t, r, "/company_analysis", dto.AnalysisRequest{Symbol: "aapl", StartDate: "2024-01-02", EndDate: "2024-06-28"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var out dto.AnalysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Symbol != "AAPL" {
		t.Fatalf("symbol = %q, want upper-cased AAPL", out.Symbol)
	}
	if out.Insights.TrendDirection != "Bullish" {
		t.Fatalf("unexpected insights: %+v", out.Insights)
	}

	// Missing metrics serialize as explicit nulls.
	var raw map[string]json.RawMessage
	_ = json.Unmarshal(w.Body.Bytes(), &raw)
	var metrics map[string]json.RawMessage
	_ = json.Unmarshal(raw["metrics"], &metrics)
	if string(metrics["sma_50"]) != "null" {
		t.Fatalf("sma_50 = %s, want null", metrics["sma_50"])
	}
}

func TestCompanyAnalysis_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperr.NotFound("No data found for AAPL in the specified date range"), http.StatusNotFound},
		{"upstream", apperr.Upstream("Error performing analysis", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(&mockStockService{err: tc.err})
			w := postJSON(t, r, "/company_analysis", dto.AnalysisRequest{Symbol: "AAPL", StartDate: "2024-01-02", EndDate: "2024-06-28"})
			if w.Code != tc.status {
				t.Fatalf("status %d, want %d", w.Code, tc.status)
			}
		})
	}
}

func TestCompanyInfo_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockStockService
		path   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "invalid symbol",
			svc:    &mockStockService{},
			path:   "/company/BRK-B",
			status: http.StatusBadRequest,
		},
		{
			name:   "not found",
			svc:    &mockStockService{err: apperr.NotFound("Company symbol NOPE not found")},
			path:   "/company/NOPE",
			status: http.StatusNotFound,
		},
		{
			name: "success",
			svc: &mockStockService{profile: &models.CompanyProfile{
				Symbol:   "AAPL",
				Name:     s("Apple Inc."),
				Sector:   s("Technology"),
				Officers: []models.Officer{{Name: s("Timothy D. Cook"), Title: s("CEO")}},
			}},
			path:   "/company/aapl",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.CompanyInfoResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Symbol != "AAPL" || out.CompanyName == nil || *out.CompanyName != "Apple Inc." {
					t.Fatalf("unexpected body: %+v", out)
				}
				if len(out.Officers) != 1 || out.Officers[0].Title == nil || *out.Officers[0].Title != "CEO" {
					t.Fatalf("unexpected officers: %+v", out.Officers)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("status %d, want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusBadRequest && tc.svc.called {
				t.Fatalf("service must not be invoked on validation failure")
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestHistoricalData_Success(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	vol := int64(1000)
	svc := &mockStockService{bars: []models.Bar{
		{Date: day, Open: f(187.149), High: f(188.44), Low: f(183.885), Close: f(185.64), Volume: &vol},
		{Date: day.AddDate(0, 0, 1), Close: f(186.20)},
	}}
	r := setupRouterWithMock(svc)
	w := postJSON(t, r, "/historical_stock", dto.HistoricalDataRequest{Symbol: "AAPL", StartDate: "2024-01-02", EndDate: "2024-01-04"})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var out dto.HistoricalDataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Data) != 2 {
		t.Fatalf("rows = %d, want 2", len(out.Data))
	}
	if out.Data[0].Date != "2024-01-02" {
		t.Fatalf("date = %q, want 2024-01-02", out.Data[0].Date)
	}
	if out.Data[0].Open == nil || *out.Data[0].Open != 187.15 {
		t.Fatalf("open not rounded: %v", out.Data[0].Open)
	}
	if out.Data[1].Open != nil {
		t.Fatalf("missing open must stay null, got %v", *out.Data[1].Open)
	}
}

func TestHistoricalData_EndBeforeStart(t *testing.T) {
	svc := &mockStockService{}
	r := setupRouterWithMock(svc)
	w := postJSON(t, r, "/historical_stock", dto.HistoricalDataRequest{Symbol: "AAPL", StartDate: "2024-06-28", EndDate: "2024-01-02"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if svc.called {
		t.Fatalf("service must not be invoked on validation failure")
	}
}

func TestStockData_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockStockService
		path   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "invalid symbol",
			svc:    &mockStockService{},
			path:   "/stock/AA%20PL",
			status: http.StatusBadRequest,
		},
		{
			name:   "upstream error",
			svc:    &mockStockService{err: apperr.Upstream("Error retrieving stock data", errors.New("boom"))},
			path:   "/stock/AAPL",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, body []byte) {
				if !strings.Contains(string(body), "boom") {
					t.Fatalf("underlying message missing: %s", body)
				}
			},
		},
		{
			name: "success with nulls",
			svc: &mockStockService{quote: &models.Quote{
				Symbol:           "AAPL",
				MarketState:      s("REGULAR"),
				Price:            f(227.52),
				PreviousClose:    f(228.50),
				PercentageChange: f(-0.43),
			}},
			path:   "/stock/BRK.B",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var raw map[string]json.RawMessage
				if err := json.Unmarshal(body, &raw); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if string(raw["symbol"]) != `"BRK.B"` {
					t.Fatalf("symbol = %s", raw["symbol"])
				}
				if string(raw["volume"]) != "null" {
					t.Fatalf("volume = %s, want null", raw["volume"])
				}
				if string(raw["percentage_change"]) != "-0.43" {
					t.Fatalf("percentage_change = %s", raw["percentage_change"])
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("status %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.status == http.StatusBadRequest && tc.svc.called {
				t.Fatalf("service must not be invoked on validation failure")
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
