package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/tidwall/gjson"

	"github.com/Mukesh881/financial-analysis-endpoints/config"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/apperr"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/models"
)

// quoteSummaryPath is the Yahoo endpoint carrying company profile data,
// which the chart/quote APIs do not expose.
const quoteSummaryPath = "/v10/finance/quoteSummary/{symbol}"

// Yahoo fetches market data from Yahoo Finance. Historical bars and
// real-time quotes go through the finance-go client; company profiles go
// through the quoteSummary HTTP API directly.
type Yahoo struct {
	http *resty.Client
}

// NewYahoo constructs a Yahoo provider from configuration. The base URL
// only affects the quoteSummary client, which lets tests point it at a
// local stub server.
func NewYahoo(cfg config.YahooConfig) *Yahoo {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	client.SetHeader("User-Agent", "financial-analysis-endpoints/1.0")

	return &Yahoo{http: client}
}

// History returns daily OHLCV bars for [start, end), oldest first.
// An empty slice with nil error means the provider has no data in range.
func (y *Yahoo) History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	var bars []models.Bar
	for iter.Next() {
		b := iter.Bar()
		open := b.Open.InexactFloat64()
		high := b.High.InexactFloat64()
		low := b.Low.InexactFloat64()
		cls := b.Close.InexactFloat64()
		vol := int64(b.Volume)
		bars = append(bars, models.Bar{
			Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:   &open,
			High:   &high,
			Low:    &low,
			Close:  &cls,
			Volume: &vol,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, classifyNotFound(symbol, err)
	}
	return bars, nil
}

// Quote returns the real-time snapshot for a symbol. Zero values from the
// provider are reported as missing: Yahoo omits fields outside trading
// hours and finance-go decodes an omitted field to its zero value.
func (y *Yahoo) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return nil, classifyNotFound(symbol, err)
	}
	if q == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Company symbol %s not found", symbol))
	}

	return &models.Quote{
		Symbol:        symbol,
		ShortName:     strOrNil(q.ShortName),
		MarketState:   strOrNil(string(q.MarketState)),
		Price:         floatOrNil(q.RegularMarketPrice),
		PreviousClose: floatOrNil(q.RegularMarketPreviousClose),
		Open:          floatOrNil(q.RegularMarketOpen),
		DayHigh:       floatOrNil(q.RegularMarketDayHigh),
		DayLow:        floatOrNil(q.RegularMarketDayLow),
		Volume:        intOrNil(int64(q.RegularMarketVolume)),
	}, nil
}

// Profile fetches the assetProfile and price modules of the quoteSummary
// API and extracts name, summary, industry, sector and officers.
func (y *Yahoo) Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	resp, err := y.http.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParam("modules", "assetProfile,price").
		Get(quoteSummaryPath)
	if err != nil {
		return nil, err
	}

	body := resp.Body()
	if resp.StatusCode() == 404 || gjson.GetBytes(body, "quoteSummary.error.code").Exists() {
		return nil, apperr.NotFound(fmt.Sprintf("Company symbol %s not found", symbol))
	}
	if resp.IsError() {
		return nil, fmt.Errorf("quoteSummary returned status %d", resp.StatusCode())
	}

	results := gjson.GetBytes(body, "quoteSummary.result")
	if !results.IsArray() || len(results.Array()) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("Company symbol %s not found", symbol))
	}
	node := results.Array()[0]

	profile := &models.CompanyProfile{
		Symbol:   symbol,
		Name:     jsonStr(node.Get("price.longName")),
		Summary:  jsonStr(node.Get("assetProfile.longBusinessSummary")),
		Industry: jsonStr(node.Get("assetProfile.industry")),
		Sector:   jsonStr(node.Get("assetProfile.sector")),
		Officers: []models.Officer{},
	}

	for _, o := range node.Get("assetProfile.companyOfficers").Array() {
		profile.Officers = append(profile.Officers, models.Officer{
			Name:  jsonStr(o.Get("name")),
			Title: jsonStr(o.Get("title")),
		})
	}

	return profile, nil
}

// Ping reports whether the provider host is reachable. Any HTTP response
// counts as reachable; only transport failures mean not ready.
func (y *Yahoo) Ping(ctx context.Context) error {
	_, err := y.http.R().SetContext(ctx).Head("/")
	return err
}

// classifyNotFound maps a provider error whose message indicates a
// not-found condition to apperr.NotFound; any other error passes through
// unchanged for the service layer to wrap as an upstream failure.
func classifyNotFound(symbol string, err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "404") || strings.Contains(msg, "not found") {
		return apperr.NotFound(fmt.Sprintf("Company symbol %s not found", symbol))
	}
	return err
}

func floatOrNil(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func intOrNil(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func jsonStr(r gjson.Result) *string {
	if !r.Exists() || r.Type != gjson.String || r.Str == "" {
		return nil
	}
	s := r.String()
	return &s
}
