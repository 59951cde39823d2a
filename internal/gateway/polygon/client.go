package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"swingbot/internal/market"

	"github.com/shopspring/decimal"
)

const (
	aggsMultiplier = 1
	aggsLimit      = 50000
	aggsDateLayout = "2006-01-02"
)

// Client performs raw round trips against the vendor's aggregates endpoint.
// One GET per window: no retry, no backoff, no rate-limit awareness.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type aggsEnvelope struct {
	Ticker  string   `json:"ticker"`
	Status  string   `json:"status"`
	Results []aggBar `json:"results"`
}

type aggBar struct {
	Timestamp int64           `json:"t"`
	Open      decimal.Decimal `json:"o"`
	High      decimal.Decimal `json:"h"`
	Low       decimal.Decimal `json:"l"`
	Close     decimal.Decimal `json:"c"`
	Volume    int64           `json:"v"`
}

// FetchAggs retrieves adjusted, ascending aggregates for the window and
// normalizes them into bars. A missing results field is an empty window, not
// an error.
func (c *Client) FetchAggs(ctx context.Context, symbol string, start, end time.Time) ([]market.Bar, error) {
	endpoint := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/%d/%s/%s/%s",
		c.cfg.BaseURL,
		url.PathEscape(symbol),
		aggsMultiplier,
		c.cfg.Timespan,
		start.Format(aggsDateLayout),
		end.Format(aggsDateLayout),
	)
	q := url.Values{}
	q.Set("adjusted", "true")
	q.Set("sort", "asc")
	q.Set("limit", fmt.Sprintf("%d", aggsLimit))
	q.Set("apiKey", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building aggs request: %v", market.ErrTransport, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", market.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: aggs request for %s returned %s", market.ErrTransport, symbol, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading aggs response: %v", market.ErrTransport, err)
	}
	var envelope aggsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", market.ErrMalformedResponse, err)
	}

	bars := make([]market.Bar, 0, len(envelope.Results))
	for _, r := range envelope.Results {
		bars = append(bars, market.Bar{
			Timestamp: time.UnixMilli(r.Timestamp).UTC(),
			Open:      r.Open,
			High:      r.High,
			Low:       r.Low,
			Close:     r.Close,
			Volume:    r.Volume,
		})
	}
	return bars, nil
}
