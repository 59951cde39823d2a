package polygon

import (
	"strings"
	"time"
)

const defaultBaseURL = "https://api.polygon.io"

type Config struct {
	APIKey  string
	BaseURL string

	// Timespan is the aggregate granularity requested for every window
	// (day, hour, ...). The multiplier is always 1.
	Timespan string

	HTTPTimeout time.Duration
}

func (c *Config) withDefaults() Config {
	out := *c
	out.APIKey = strings.TrimSpace(out.APIKey)
	out.BaseURL = strings.TrimSpace(out.BaseURL)
	if out.BaseURL == "" {
		out.BaseURL = defaultBaseURL
	}
	out.Timespan = strings.ToLower(strings.TrimSpace(out.Timespan))
	if out.Timespan == "" {
		out.Timespan = "day"
	}
	if out.HTTPTimeout <= 0 {
		out.HTTPTimeout = 15 * time.Second
	}
	return out
}
