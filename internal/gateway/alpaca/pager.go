package alpaca

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

// BarPager is the one paginated-request capability the provider needs from
// the vendor transport. Tests substitute a deterministic fake.
type BarPager interface {
	FetchPage(ctx context.Context, req PageRequest) (Page, error)
}

// PageRequest describes one page of a windowed bar query. PageToken is empty
// on the first request and carries the vendor's continuation token afterwards.
type PageRequest struct {
	Symbol    string
	Start     time.Time
	End       time.Time
	Timeframe market.Timeframe
	PageToken string
}

// Page is one response worth of normalized bars. A non-empty NextPageToken
// means more pages remain.
type Page struct {
	Bars          []market.Bar
	NextPageToken string
}

const pageLimit = 10000

// restPager implements BarPager against the vendor's stock-bars endpoint.
type restPager struct {
	cfg    Config
	client *http.Client
}

func newRESTPager(cfg Config) *restPager {
	return &restPager{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type pageEnvelope struct {
	Symbol        string   `json:"symbol"`
	Bars          []rawBar `json:"bars"`
	NextPageToken string   `json:"next_page_token"`
}

type rawBar struct {
	Timestamp time.Time       `json:"t"`
	Open      decimal.Decimal `json:"o"`
	High      decimal.Decimal `json:"h"`
	Low       decimal.Decimal `json:"l"`
	Close     decimal.Decimal `json:"c"`
	Volume    int64           `json:"v"`
}

func timeframeParam(tf market.Timeframe) string {
	if tf == market.TimeframeHour {
		return "1Hour"
	}
	return "1Day"
}

func (p *restPager) FetchPage(ctx context.Context, req PageRequest) (Page, error) {
	endpoint := fmt.Sprintf("%s/v2/stocks/%s/bars", p.cfg.BaseURL, url.PathEscape(req.Symbol))
	q := url.Values{}
	q.Set("timeframe", timeframeParam(req.Timeframe))
	q.Set("start", req.Start.Format(time.RFC3339))
	q.Set("end", req.End.Format(time.RFC3339))
	q.Set("limit", fmt.Sprintf("%d", pageLimit))
	q.Set("adjustment", "split")
	if req.PageToken != "" {
		q.Set("page_token", req.PageToken)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("%w: building bars request: %v", market.ErrTransport, err)
	}
	httpReq.Header.Set("APCA-API-KEY-ID", p.cfg.APIKey)
	httpReq.Header.Set("APCA-API-SECRET-KEY", p.cfg.APISecret)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", market.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Page{}, fmt.Errorf("%w: bars request for %s returned %s", market.ErrTransport, req.Symbol, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("%w: reading bars response: %v", market.ErrTransport, err)
	}
	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Page{}, fmt.Errorf("%w: %v", market.ErrMalformedResponse, err)
	}

	bars := make([]market.Bar, 0, len(envelope.Bars))
	for _, rb := range envelope.Bars {
		bars = append(bars, market.Bar{
			Timestamp: rb.Timestamp.UTC(),
			Open:      rb.Open,
			High:      rb.High,
			Low:       rb.Low,
			Close:     rb.Close,
			Volume:    rb.Volume,
		})
	}
	return Page{Bars: bars, NextPageToken: envelope.NextPageToken}, nil
}
