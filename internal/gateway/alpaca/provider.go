package alpaca

import (
	"context"
	"fmt"
	"strings"
	"time"

	"swingbot/internal/logger"
	"swingbot/internal/market"
)

// Hourly bars are only worth requesting over short windows; beyond this many
// days the provider switches to daily granularity.
const hourlyWindowMaxDays = 60

// Provider implements market.Provider against the live-capable vendor. It
// drains the vendor's continuation-token pagination for the whole window,
// then applies its liquidity policy before handing bars back.
type Provider struct {
	cfg   Config
	pager BarPager
	noise market.NoisePolicy
}

// New builds the provider with the production REST pager. Construction does
// no I/O; credentials are only validated for presence.
func New(cfg Config) (*Provider, error) {
	final := cfg.withDefaults()
	if final.APIKey == "" || final.APISecret == "" {
		return nil, fmt.Errorf("%w: alpaca api key and secret are required", market.ErrConfiguration)
	}
	return &Provider{
		cfg:   final,
		pager: newRESTPager(final),
		noise: market.DefaultNoisePolicy(),
	}, nil
}

// NewWithPager wires a custom pager in place of the REST transport.
func NewWithPager(cfg Config, pager BarPager) *Provider {
	return &Provider{
		cfg:   cfg.withDefaults(),
		pager: pager,
		noise: market.DefaultNoisePolicy(),
	}
}

func (p *Provider) Name() string { return "alpaca" }

func (p *Provider) FetchBars(ctx context.Context, symbol string, daysHistory int) ([]market.Bar, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if daysHistory <= 0 {
		return nil, fmt.Errorf("daysHistory must be positive, got %d", daysHistory)
	}

	end := time.Now().UTC().Add(-p.cfg.RequestLag)
	start := end.AddDate(0, 0, -daysHistory)
	tf := timeframeFor(daysHistory)

	var bars []market.Bar
	token := ""
	for page := 0; ; page++ {
		if page >= p.cfg.MaxPages {
			return nil, fmt.Errorf("%w: pagination for %s exceeded %d pages", market.ErrTransport, symbol, p.cfg.MaxPages)
		}
		pg, err := p.pager.FetchPage(ctx, PageRequest{
			Symbol:    symbol,
			Start:     start,
			End:       end,
			Timeframe: tf,
			PageToken: token,
		})
		if err != nil {
			return nil, err
		}
		// Pages follow each other by continuation token, so appending in
		// request order keeps timestamps ascending without re-sorting.
		bars = append(bars, pg.Bars...)
		if pg.NextPageToken == "" {
			break
		}
		token = pg.NextPageToken
	}

	filtered := p.noise.Apply(bars, tf)
	if dropped := len(bars) - len(filtered); dropped > 0 {
		logger.Debugf("[alpaca] %s: dropped %d low-volume bars of %d", symbol, dropped, len(bars))
	}
	return filtered, nil
}

func (p *Provider) Close() error { return nil }

func timeframeFor(daysHistory int) market.Timeframe {
	if daysHistory <= hourlyWindowMaxDays {
		return market.TimeframeHour
	}
	return market.TimeframeDay
}
