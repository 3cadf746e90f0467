// Package provider abstracts the external market data source behind a
// narrow interface so services and handlers can be tested with a stub,
// independent of the real network call.
package provider

import (
	"context"
	"time"

	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/models"
)

// MarketData is the capability surface the rest of the application uses.
//
// Contract:
//   - History returns the daily bars for [start, end), oldest first. An
//     empty slice with a nil error means "no data in range"; callers map
//     that to a not-found condition, not a crash.
//   - Quote returns a real-time snapshot for the symbol.
//   - Profile returns descriptive company information.
//   - Any provider failure that signals a not-found condition surfaces as
//     an apperr.NotFound; everything else is returned as-is for the
//     service layer to wrap. No retries happen at this level.
type MarketData interface {
	History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error)
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
	Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error)
	Ping(ctx context.Context) error
}
