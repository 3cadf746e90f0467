package models

import "time"

// Bar represents one daily OHLCV observation for a symbol, as returned
// by the market data provider.
//
// Every price/volume field is a pointer: the provider may omit any value
// for a given day, and a missing value must stay missing all the way to
// the JSON response (serialized as null), never a zero or NaN.
type Bar struct {
	Date   time.Time
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64
}

// Quote represents a real-time market snapshot for a symbol.
//
// Fields mirror what Yahoo Finance exposes for the regular session; any
// of them may be absent when the provider has no value.
type Quote struct {
	Symbol        string
	ShortName     *string
	MarketState   *string
	Price         *float64
	PreviousClose *float64
	Open          *float64
	DayHigh       *float64
	DayLow        *float64
	Volume        *int64

	// PercentageChange is derived from Price and PreviousClose by the
	// service layer; it is nil when either side is missing or the
	// previous close is zero.
	PercentageChange *float64
}
