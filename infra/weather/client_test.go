package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "48.85", r.URL.Query().Get("lat"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily": [
				{"temp": {"max": 24.6}, "weather": [{"main": "Clouds"}]},
				{"temp": {"max": 28.1}, "weather": [{"main": "Clear"}]}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", WithLocation(48.85, 2.35))
	c.now = func() time.Time { return time.Date(2024, 7, 22, 7, 0, 0, 0, time.UTC) }

	sum, err := c.DailySummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{
		MaxTemp:   24.6,
		Condition: "Clouds",
		FetchedAt: "2024-07-22T07:00:00Z",
	}, sum)
}

func TestDailySummaryNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong")
	_, err := c.DailySummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 401")
}

func TestDailySummaryEmptyForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	_, err := c.DailySummary(context.Background())
	assert.Error(t, err)
}
