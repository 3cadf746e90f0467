// Package analysis derives summary statistics and a qualitative insight
// from a close-price series. The transform is deterministic and pure:
// the same series always produces the same result, and every metric is
// either a finite value or nil, never NaN or Inf.
package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/models"
)

// tradingDaysPerYear annualizes the daily-return standard deviation.
const tradingDaysPerYear = 252

// Trend and volatility labels used by the insight rules.
const (
	trendNeutral          = "Neutral"
	trendBullish          = "Bullish"
	trendBearish          = "Bearish"
	trendBullishCrossover = "Bullish (SMA crossover)"
	trendBearishCrossover = "Bearish (SMA crossover)"

	volatilityHigh     = "High"
	volatilityLow      = "Low"
	volatilityModerate = "Moderate"
)

// Run computes the full analysis for an ordered close-price series
// (oldest first). Closes may contain nil entries for days the provider
// returned no value; those stay missing rather than being interpolated.
func Run(closes []*float64) models.Analysis {
	m := computeMetrics(closes)
	return models.Analysis{
		Metrics: m,
		Insight: deriveInsight(m),
	}
}

// computeMetrics calculates each metric independently per the rules in
// the package doc. A metric that cannot be computed is nil.
func computeMetrics(closes []*float64) models.Metrics {
	var m models.Metrics
	if len(closes) == 0 {
		return m
	}

	first, last := closes[0], closes[len(closes)-1]
	if first != nil && last != nil {
		m.PriceChangeAbsolute = Round2(*last - *first)
		if *first != 0 {
			m.PriceChangePercent = Round2((*last - *first) / *first * 100)
		}
	}

	if returns := dailyReturns(closes); len(returns) > 0 {
		m.Volatility = Round2(stdDev(returns) * math.Sqrt(tradingDaysPerYear) * 100)
	}

	m.SMA50 = trailingMean(closes, 50)
	m.SMA200 = trailingMean(closes, 200)

	m.RecentHigh, m.RecentLow = highLow(closes)
	return m
}

// dailyReturns computes pairwise relative changes between consecutive
// closes. Pairs with a missing endpoint are dropped, not zero-filled;
// a zero previous close is dropped as well so no Inf can enter the series.
func dailyReturns(closes []*float64) []float64 {
	var returns []float64
	for i := 1; i < len(closes); i++ {
		prev, cur := closes[i-1], closes[i]
		if prev == nil || cur == nil || *prev == 0 {
			continue
		}
		returns = append(returns, (*cur-*prev)/(*prev))
	}
	return returns
}

// stdDev is the population standard deviation (ddof=0).
func stdDev(xs []float64) float64 {
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / n
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / n)
}

// trailingMean averages the last `window` closes. It is nil when the
// series is shorter than the window or when any close inside the window
// is missing: no interpolation, no partial-window averaging.
func trailingMean(closes []*float64, window int) *float64 {
	if len(closes) < window {
		return nil
	}
	var sum float64
	for _, c := range closes[len(closes)-window:] {
		if c == nil {
			return nil
		}
		sum += *c
	}
	return Round2(sum / float64(window))
}

// highLow returns the max and min over all present closes, or nils when
// every close is missing.
func highLow(closes []*float64) (*float64, *float64) {
	var high, low *float64
	for _, c := range closes {
		if c == nil {
			continue
		}
		if high == nil || *c > *high {
			v := *c
			high = &v
		}
		if low == nil || *c < *low {
			v := *c
			low = &v
		}
	}
	if high == nil {
		return nil, nil
	}
	return Round2(*high), Round2(*low)
}

// deriveInsight applies the fixed labeling rules to the computed metrics.
//
// The crossover signal only replaces the price-change signal when the
// plain label does not already assert the same direction; "Bullish" stays
// "Bullish" even when sma_50 > sma_200 confirms it.
func deriveInsight(m models.Metrics) models.Insight {
	trend := trendNeutral
	if m.PriceChangePercent != nil {
		switch {
		case *m.PriceChangePercent > 5:
			trend = trendBullish
		case *m.PriceChangePercent < -5:
			trend = trendBearish
		}
	}

	if m.SMA50 != nil && m.SMA200 != nil {
		if *m.SMA50 > *m.SMA200 && trend != trendBullish {
			trend = trendBullishCrossover
		} else if *m.SMA50 < *m.SMA200 && trend != trendBearish {
			trend = trendBearishCrossover
		}
	}

	vol := volatilityModerate
	if m.Volatility != nil {
		switch {
		case *m.Volatility > 30:
			vol = volatilityHigh
		case *m.Volatility < 15:
			vol = volatilityLow
		}
	}

	return models.Insight{
		TrendDirection:           trend,
		VolatilityAssessment:     vol,
		InvestmentConsiderations: considerations(trend, vol, m.RecentHigh, m.RecentLow),
	}
}

// considerations renders the advisory sentence. The text is presentational:
// callers rely on the trend label, volatility label, and the closing
// disclaimer being present, not on exact byte equality.
func considerations(trend, vol string, high, low *float64) string {
	entry, nears := "exit", "lows"
	if strings.Contains(trend, trendBullish) {
		entry, nears = "entry", "highs"
	}

	var risk string
	switch vol {
	case volatilityLow:
		risk = "Long-term investors may find this stable"
	case volatilityHigh:
		risk = "Short-term traders may capitalize on price swings"
	default:
		risk = "Balance risk with potential returns"
	}

	return "The stock exhibits a " + strings.ToLower(trend) + " trend with " + strings.ToLower(vol) + " volatility. " +
		"Consider monitoring for " + entry + " points near recent " + nears +
		" (" + fmtOrNA(high) + " or " + fmtOrNA(low) + "). " +
		risk + ". Always consult a financial advisor."
}

// Round2 rounds to 2 decimal places using decimal arithmetic, so values
// like 0.615 round the same way regardless of their float representation.
func Round2(v float64) *float64 {
	r := decimal.NewFromFloat(v).Round(2).InexactFloat64()
	return &r
}

func fmtOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
