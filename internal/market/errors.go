package market

import "errors"

// Fault kinds surfaced by providers. None of them are retried inside this
// layer; a failed fetch discards any partially accumulated pages and callers
// decide whether to try again.
var (
	// ErrConfiguration signals that no vendor client could be built from the
	// run configuration, typically because credentials are missing.
	ErrConfiguration = errors.New("market: invalid data source configuration")

	// ErrTransport covers connection failures and non-success HTTP statuses.
	ErrTransport = errors.New("market: vendor transport failure")

	// ErrMalformedResponse covers vendor bodies that fail to parse.
	ErrMalformedResponse = errors.New("market: malformed vendor response")
)
