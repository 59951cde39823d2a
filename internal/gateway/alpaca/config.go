package alpaca

import (
	"strings"
	"time"
)

const (
	defaultLiveBaseURL  = "https://data.alpaca.markets"
	defaultPaperBaseURL = "https://data.sandbox.alpaca.markets"

	// The most recent hour of bars may still be settling; the window end is
	// kept behind wall clock by this lag.
	defaultRequestLag = time.Hour

	// A bounded time window can only span so many pages; a vendor that keeps
	// handing out continuation tokens past this is looping.
	defaultMaxPages = 64
)

type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string

	// Paper selects the simulated trading environment's data endpoint.
	Paper bool

	HTTPTimeout time.Duration
	RequestLag  time.Duration
	MaxPages    int
}

func (c *Config) withDefaults() Config {
	out := *c
	out.APIKey = strings.TrimSpace(out.APIKey)
	out.APISecret = strings.TrimSpace(out.APISecret)
	out.BaseURL = strings.TrimSpace(out.BaseURL)
	if out.BaseURL == "" {
		if out.Paper {
			out.BaseURL = defaultPaperBaseURL
		} else {
			out.BaseURL = defaultLiveBaseURL
		}
	}
	if out.HTTPTimeout <= 0 {
		out.HTTPTimeout = 15 * time.Second
	}
	if out.RequestLag <= 0 {
		out.RequestLag = defaultRequestLag
	}
	if out.MaxPages <= 0 {
		out.MaxPages = defaultMaxPages
	}
	return out
}
