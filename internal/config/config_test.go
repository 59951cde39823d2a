package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
market:
  symbols: ["AAPL"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeAuto, cfg.Market.Mode)
	assert.Equal(t, SourceAuto, cfg.Market.DataSource)
	assert.Equal(t, defaultDaysHistory, cfg.Market.DaysHistory)
	assert.Equal(t, defaultTimespan, cfg.Polygon.Timespan)
	assert.Equal(t, defaultStorePath, cfg.Store.Path)
	assert.Equal(t, defaultLogLevel, cfg.App.LogLevel)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  log_level: debug
market:
  mode: live
  data_source: alpaca
  symbols: ["AAPL", "MSFT"]
  days_history: 30
alpaca:
  api_key: key
  api_secret: secret
  paper: true
  request_lag_minutes: 120
  max_pages: 16
polygon:
  api_key: pkey
  timespan: hour
store:
  path: /tmp/bars.db
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeLive, cfg.Market.Mode)
	assert.Equal(t, SourceAlpaca, cfg.Market.DataSource)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Market.Symbols)
	assert.Equal(t, 30, cfg.Market.DaysHistory)
	assert.True(t, cfg.Alpaca.Paper)
	assert.Equal(t, 2*time.Hour, cfg.Alpaca.RequestLag())
	assert.Equal(t, 16, cfg.Alpaca.MaxPages)
	assert.Equal(t, "hour", cfg.Polygon.Timespan)
	assert.Equal(t, "/tmp/bars.db", cfg.Store.Path)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := writeConfig(t, `
market:
  mode: paper
  symbols: ["AAPL"]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "market.mode")
}

func TestLoadRejectsUnknownDataSource(t *testing.T) {
	path := writeConfig(t, `
market:
  data_source: binance
  symbols: ["AAPL"]
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "market.data_source")
}

func TestLoadRequiresSymbols(t *testing.T) {
	path := writeConfig(t, `
market:
  mode: backtest
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "market.symbols")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
