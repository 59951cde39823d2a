package gateway

import (
	"fmt"
	"strings"

	"swingbot/internal/config"
	"swingbot/internal/gateway/alpaca"
	"swingbot/internal/gateway/polygon"
	"swingbot/internal/market"
)

// NewProviderFromConfig maps run configuration to a concrete provider. An
// explicit data_source always wins; with data_source=auto, live mode gets the
// live-capable alpaca vendor and everything else reads from polygon. The
// mapping is pure: no I/O happens until the first fetch.
func NewProviderFromConfig(cfg *config.Config) (market.Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	source := strings.ToLower(strings.TrimSpace(cfg.Market.DataSource))
	if source == "" || source == config.SourceAuto {
		if strings.ToLower(strings.TrimSpace(cfg.Market.Mode)) == config.ModeLive {
			source = config.SourceAlpaca
		} else {
			source = config.SourcePolygon
		}
	}
	switch source {
	case config.SourceAlpaca:
		return alpaca.New(alpaca.Config{
			APIKey:     cfg.Alpaca.APIKey,
			APISecret:  cfg.Alpaca.APISecret,
			BaseURL:    cfg.Alpaca.BaseURL,
			Paper:      cfg.Alpaca.Paper,
			RequestLag: cfg.Alpaca.RequestLag(),
			MaxPages:   cfg.Alpaca.MaxPages,
		})
	case config.SourcePolygon:
		return polygon.New(polygon.Config{
			APIKey:   cfg.Polygon.APIKey,
			BaseURL:  cfg.Polygon.BaseURL,
			Timespan: cfg.Polygon.Timespan,
		})
	default:
		return nil, fmt.Errorf("%w: unsupported data source %q", market.ErrConfiguration, source)
	}
}
