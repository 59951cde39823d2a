package polygon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swingbot/internal/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func newTestClient(baseURL string) *Client {
	cfg := Config{APIKey: "pkey", BaseURL: baseURL, Timespan: "day", HTTPTimeout: time.Second}
	return NewClient(cfg.withDefaults())
}

func TestFetchAggsBuildsRequest(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Write([]byte(`{"ticker": "AAPL", "status": "OK", "results": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchAggs(context.Background(), "AAPL", windowStart, windowEnd)
	require.NoError(t, err)

	assert.Equal(t, "/v2/aggs/ticker/AAPL/range/1/day/2024-01-01/2024-03-31", gotReq.URL.Path)
	q := gotReq.URL.Query()
	assert.Equal(t, "true", q.Get("adjusted"))
	assert.Equal(t, "asc", q.Get("sort"))
	assert.Equal(t, "50000", q.Get("limit"))
	assert.Equal(t, "pkey", q.Get("apiKey"))
}

func TestFetchAggsNormalizesBars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"ticker": "AAPL",
			"status": "OK",
			"results": [
				{"t": 0, "o": 1.5, "h": 2.0, "l": 1.0, "c": 1.8, "v": 500},
				{"t": 86400000, "o": 1.8, "h": 2.2, "l": 1.7, "c": 2.1, "v": 700}
			]
		}`))
	}))
	defer server.Close()

	bars, err := newTestClient(server.URL).FetchAggs(context.Background(), "AAPL", windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, bars, 2)

	// Epoch millis 0 is the Unix epoch, in UTC.
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), bars[0].Timestamp)
	assert.Equal(t, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC), bars[1].Timestamp)
	assert.Equal(t, int64(500), bars[0].Volume)
	assert.True(t, bars[1].Timestamp.After(bars[0].Timestamp))
}

func TestFetchAggsMissingResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"ticker": "AAPL", "status": "OK", "resultsCount": 0}`))
	}))
	defer server.Close()

	bars, err := newTestClient(server.URL).FetchAggs(context.Background(), "AAPL", windowStart, windowEnd)
	assert.NoError(t, err)
	assert.Empty(t, bars)
}

func TestFetchAggsTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchAggs(context.Background(), "AAPL", windowStart, windowEnd)
	assert.ErrorIs(t, err, market.ErrTransport)
}

func TestFetchAggsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchAggs(context.Background(), "AAPL", windowStart, windowEnd)
	assert.ErrorIs(t, err, market.ErrMalformedResponse)
}

func TestFetchAggsConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).FetchAggs(context.Background(), "AAPL", windowStart, windowEnd)
	assert.ErrorIs(t, err, market.ErrTransport)
}
