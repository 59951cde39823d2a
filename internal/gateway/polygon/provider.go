package polygon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"swingbot/internal/logger"
	"swingbot/internal/market"
)

// Provider implements market.Provider against the aggregates vendor with a
// single request per window. Unlike the alpaca path its noise policy is
// disabled: bars pass through unfiltered.
type Provider struct {
	cfg    Config
	client *Client
	noise  market.NoisePolicy
}

// New builds the provider. Construction does no I/O; the api key is only
// checked for presence.
func New(cfg Config) (*Provider, error) {
	final := cfg.withDefaults()
	if final.APIKey == "" {
		return nil, fmt.Errorf("%w: polygon api key is required", market.ErrConfiguration)
	}
	return &Provider{
		cfg:    final,
		client: NewClient(final),
		noise:  market.DisabledNoisePolicy(),
	}, nil
}

func (p *Provider) Name() string { return "polygon" }

func (p *Provider) FetchBars(ctx context.Context, symbol string, daysHistory int) ([]market.Bar, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if daysHistory <= 0 {
		return nil, fmt.Errorf("daysHistory must be positive, got %d", daysHistory)
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -daysHistory)

	bars, err := p.client.FetchAggs(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		logger.Debugf("[polygon] %s: empty window %s..%s", symbol, start.Format(aggsDateLayout), end.Format(aggsDateLayout))
	}
	return p.noise.Apply(bars, market.Timeframe(p.cfg.Timespan)), nil
}

func (p *Provider) Close() error { return nil }
