package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLocation sets the forecast coordinates.
func WithLocation(lat, lon float64) Option {
	return func(c *Client) { c.lat, c.lon = lat, lon }
}

// Client fetches the daily summary from an OpenWeather-compatible one-call
// endpoint using an API-key credential.
type Client struct {
	baseURL string
	apiKey  string
	lat     float64
	lon     float64
	http    *http.Client
	now     func() time.Time
}

// NewClient creates a Client. apiKey must be non-empty; the command layer
// treats a missing credential as fatal before constructing one.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response mirrors the subset of the one-call payload we keep.
type response struct {
	Daily []struct {
		Temp struct {
			Max float64 `json:"max"`
		} `json:"temp"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"daily"`
}

// DailySummary fetches today's forecast and normalizes it.
func (c *Client) DailySummary(ctx context.Context) (Summary, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("exclude", "minutely,hourly,alerts")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Summary{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read response: %w", err)
	}
	var payload response
	if err := json.Unmarshal(body, &payload); err != nil {
		return Summary{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload.Daily) == 0 {
		return Summary{}, fmt.Errorf("response carries no daily forecast")
	}
	day := payload.Daily[0]
	condition := ""
	if len(day.Weather) > 0 {
		condition = day.Weather[0].Main
	}
	return Summary{
		MaxTemp:   day.Temp.Max,
		Condition: condition,
		FetchedAt: c.now().Format(time.RFC3339),
	}, nil
}
