package config

import (
	"fmt"
	"strings"
)

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Market.Mode) {
	case ModeLive, ModeBacktest, ModeAuto:
	default:
		return fmt.Errorf("market.mode must be live, backtest or auto, got %q", cfg.Market.Mode)
	}
	switch strings.ToLower(cfg.Market.DataSource) {
	case SourceAlpaca, SourcePolygon, SourceAuto:
	default:
		return fmt.Errorf("market.data_source must be alpaca, polygon or auto, got %q", cfg.Market.DataSource)
	}
	if len(cfg.Market.Symbols) == 0 {
		return fmt.Errorf("market.symbols cannot be empty")
	}
	for _, s := range cfg.Market.Symbols {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("market.symbols contains an empty entry")
		}
	}
	if cfg.Alpaca.RequestLagMinutes < 0 {
		return fmt.Errorf("alpaca.request_lag_minutes cannot be negative")
	}
	if cfg.Alpaca.MaxPages < 0 {
		return fmt.Errorf("alpaca.max_pages cannot be negative")
	}
	return nil
}
