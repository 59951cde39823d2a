package store

import (
	"context"
	"time"

	"swingbot/internal/market"
	"swingbot/internal/store/model"
)

// Store persists fetched prices and the signal/trade rows downstream
// consumers produce from them. Reads are filterable by symbol and date
// range. Writes never deduplicate: repeated fetches over overlapping
// windows produce repeated rows by design.
type Store interface {
	SavePrices(ctx context.Context, symbol string, bars []market.Bar) error
	ListPrices(ctx context.Context, symbol string, from, to time.Time) ([]model.PriceModel, error)

	SaveSignal(ctx context.Context, signal *model.SignalModel) error
	ListSignals(ctx context.Context, symbol string, from, to time.Time) ([]model.SignalModel, error)

	SaveTrade(ctx context.Context, trade *model.TradeModel) error
	ListTrades(ctx context.Context, symbol string, from, to time.Time) ([]model.TradeModel, error)

	Close() error
}
