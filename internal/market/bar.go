package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timeframe is the bar interval requested from a vendor.
type Timeframe string

const (
	TimeframeHour Timeframe = "hour"
	TimeframeDay  Timeframe = "day"
)

// Bar is one normalized OHLCV observation. Timestamps are UTC; prices are in
// the vendor's currency units and trusted as-is (no high/low sanity checks).
type Bar struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    int64           `json:"volume"`
}
