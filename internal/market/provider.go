package market

import "context"

// Provider fetches historical bars from one vendor. Implementations own a
// single transport client and keep no bar state between calls; a Provider
// instance is single-call-at-a-time unless the underlying transport is known
// to be safe for concurrent use.
type Provider interface {
	// FetchBars returns bars covering the last daysHistory days for symbol,
	// ordered strictly ascending by timestamp with no duplicates. An empty
	// result is valid and not an error.
	FetchBars(ctx context.Context, symbol string, daysHistory int) ([]Bar, error)

	// Name identifies the vendor behind this provider.
	Name() string

	Close() error
}
