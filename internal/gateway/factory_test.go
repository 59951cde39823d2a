package gateway

import (
	"testing"

	"swingbot/internal/config"
	"swingbot/internal/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *config.Config {
	return &config.Config{
		Market: config.MarketConfig{
			Mode:       config.ModeAuto,
			DataSource: config.SourceAuto,
		},
		Alpaca: config.AlpacaConfig{
			APIKey:    "key",
			APISecret: "secret",
		},
		Polygon: config.PolygonConfig{
			APIKey:   "pkey",
			Timespan: "day",
		},
	}
}

func TestExplicitDataSourceBeatsMode(t *testing.T) {
	cfg := baseConfig()
	cfg.Market.Mode = config.ModeLive
	cfg.Market.DataSource = config.SourcePolygon

	p, err := NewProviderFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "polygon", p.Name())
}

func TestAutoLiveSelectsAlpaca(t *testing.T) {
	cfg := baseConfig()
	cfg.Market.Mode = config.ModeLive

	p, err := NewProviderFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "alpaca", p.Name())
}

func TestAutoBacktestSelectsPolygon(t *testing.T) {
	cfg := baseConfig()
	cfg.Market.Mode = config.ModeBacktest

	p, err := NewProviderFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "polygon", p.Name())
}

func TestAutoModeSelectsPolygon(t *testing.T) {
	p, err := NewProviderFromConfig(baseConfig())
	require.NoError(t, err)
	assert.Equal(t, "polygon", p.Name())
}

func TestMissingCredentialsSurfaceAsConfigurationFault(t *testing.T) {
	cfg := baseConfig()
	cfg.Market.Mode = config.ModeLive
	cfg.Alpaca.APIKey = ""

	_, err := NewProviderFromConfig(cfg)
	assert.ErrorIs(t, err, market.ErrConfiguration)
}

func TestNilConfig(t *testing.T) {
	_, err := NewProviderFromConfig(nil)
	assert.Error(t, err)
}
