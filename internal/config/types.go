package config

import "time"

// Operating modes and data source names recognized by the selector.
const (
	ModeLive     = "live"
	ModeBacktest = "backtest"
	ModeAuto     = "auto"

	SourceAlpaca  = "alpaca"
	SourcePolygon = "polygon"
	SourceAuto    = "auto"
)

// Config is the main configuration carrier.
type Config struct {
	App     AppConfig     `toml:"app"`
	Market  MarketConfig  `toml:"market"`
	Alpaca  AlpacaConfig  `toml:"alpaca"`
	Polygon PolygonConfig `toml:"polygon"`
	Store   StoreConfig   `toml:"store"`
}

type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	LogPath  string `toml:"log_path"`
}

// MarketConfig drives vendor selection and the fetch window.
type MarketConfig struct {
	// Mode is live, backtest or auto. With data_source=auto, live mode picks
	// the alpaca provider and everything else reads from polygon.
	Mode string `toml:"mode"`

	// DataSource explicitly names a vendor (alpaca, polygon) or defers to
	// the mode via auto.
	DataSource string `toml:"data_source"`

	Symbols     []string `toml:"symbols"`
	DaysHistory int      `toml:"days_history"`
}

// AlpacaConfig configures the live-capable vendor.
type AlpacaConfig struct {
	APIKey    string `toml:"api_key"`
	APISecret string `toml:"api_secret"`
	BaseURL   string `toml:"base_url"`

	// Paper selects the simulated trading environment.
	Paper bool `toml:"paper"`

	// RequestLagMinutes keeps the window end behind wall clock so bars that
	// are still settling are never requested.
	RequestLagMinutes int `toml:"request_lag_minutes"`

	// MaxPages bounds the pagination loop.
	MaxPages int `toml:"max_pages"`
}

func (a AlpacaConfig) RequestLag() time.Duration {
	return time.Duration(a.RequestLagMinutes) * time.Minute
}

// PolygonConfig configures the single-shot vendor.
type PolygonConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`

	// Timespan is the default aggregate granularity (day, hour, ...).
	Timespan string `toml:"timespan"`
}

// StoreConfig locates the sqlite database. The path is always injected from
// configuration; there is no built-in absolute default.
type StoreConfig struct {
	Path string `toml:"path"`
}
