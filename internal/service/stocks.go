// Package service orchestrates the provider and the analytics transform.
// It owns the empty-result-to-not-found mapping and wraps unclassified
// provider failures with an endpoint-specific upstream message.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mukesh881/financial-analysis-endpoints/internal/analysis"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/apperr"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/models"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/logger"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/provider"
)

// StockService defines the business operations behind the four endpoints.
type StockService interface {
	// Analyze fetches the close-price series for [start, end) and runs the
	// analytics transform over it.
	Analyze(ctx context.Context, symbol string, start, end time.Time) (*models.Analysis, error)

	// History fetches daily OHLCV bars for [start, end).
	History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error)

	// CompanyInfo fetches the descriptive company profile.
	CompanyInfo(ctx context.Context, symbol string) (*models.CompanyProfile, error)

	// Snapshot fetches the real-time quote and derives the percentage change.
	Snapshot(ctx context.Context, symbol string) (*models.Quote, error)
}

type stockService struct {
	data provider.MarketData
}

// NewStockService constructs a StockService on top of a market data provider.
func NewStockService(data provider.MarketData) StockService {
	return &stockService{data: data}
}

func (s *stockService) Analyze(ctx context.Context, symbol string, start, end time.Time) (*models.Analysis, error) {
	bars, err := s.fetchRange(ctx, symbol, start, end, "Error performing analysis")
	if err != nil {
		return nil, err
	}

	closes := make([]*float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	result := analysis.Run(closes)
	return &result, nil
}

func (s *stockService) History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	return s.fetchRange(ctx, symbol, start, end, "Error retrieving historical data")
}

// fetchRange fetches bars and applies the shared empty-result contract:
// no bars in range is a not-found condition naming the symbol and range.
func (s *stockService) fetchRange(ctx context.Context, symbol string, start, end time.Time, upstreamMsg string) ([]models.Bar, error) {
	bars, err := s.data.History(ctx, symbol, start, end)
	if err != nil {
		return nil, wrap(err, upstreamMsg)
	}
	if len(bars) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No data found for %s in the specified date range", symbol))
	}
	return bars, nil
}

func (s *stockService) CompanyInfo(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	var (
		prof  *models.CompanyProfile
		quote *models.Quote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.data.Profile(gctx, symbol)
		if err != nil {
			return err
		}
		prof = p
		return nil
	})
	g.Go(func() error {
		// Name fallback only: a quote failure must not fail the profile.
		q, err := s.data.Quote(gctx, symbol)
		if err != nil {
			logger.L().Debug().Err(err).Str("symbol", symbol).Msg("quote fallback unavailable")
			return nil
		}
		quote = q
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, wrap(err, "Error retrieving company data")
	}

	if prof.Name == nil && quote != nil {
		prof.Name = quote.ShortName
	}
	return prof, nil
}

func (s *stockService) Snapshot(ctx context.Context, symbol string) (*models.Quote, error) {
	q, err := s.data.Quote(ctx, symbol)
	if err != nil {
		return nil, wrap(err, "Error retrieving stock data")
	}

	if q.Price != nil && q.PreviousClose != nil && *q.PreviousClose != 0 {
		q.PercentageChange = analysis.Round2((*q.Price - *q.PreviousClose) / *q.PreviousClose * 100)
	}
	return q, nil
}

// wrap leaves already-classified errors untouched and marks everything
// else as an upstream failure carrying the given message.
func wrap(err error, message string) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Upstream(message, err)
}
