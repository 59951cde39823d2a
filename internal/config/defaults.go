package config

import "strings"

const (
	defaultLogLevel    = "info"
	defaultDaysHistory = 90
	defaultTimespan    = "day"
	defaultStorePath   = "data/swingbot.db"
)

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.App.LogLevel) == "" {
		c.App.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(c.Market.Mode) == "" {
		c.Market.Mode = ModeAuto
	}
	if strings.TrimSpace(c.Market.DataSource) == "" {
		c.Market.DataSource = SourceAuto
	}
	if c.Market.DaysHistory <= 0 {
		c.Market.DaysHistory = defaultDaysHistory
	}
	if strings.TrimSpace(c.Polygon.Timespan) == "" {
		c.Polygon.Timespan = defaultTimespan
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = defaultStorePath
	}
}
