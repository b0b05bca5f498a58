package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sitetwin/internal/metrics"
	"sitetwin/internal/model"
)

const dailyFields = "temperature_2m_max,temperature_2m_min,sunrise,sunset,precipitation_sum"

// Client open-meteo forecast client
type Client struct {
	endpoint  string
	latitude  float64
	longitude float64
	timezone  string
	timeout   time.Duration
	http      *http.Client
	log       *zap.Logger
}

// NewClient creates a client for one fixed location
func NewClient(endpoint string, latitude, longitude float64, timezone string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint:  endpoint,
		latitude:  latitude,
		longitude: longitude,
		timezone:  timezone,
		timeout:   timeout,
		http:      &http.Client{},
		log:       log,
	}
}

type apiResponse struct {
	CurrentWeather *model.CurrentWeather `json:"current_weather"`
	Daily          struct {
		Time             []string  `json:"time"`
		TempMax          []float64 `json:"temperature_2m_max"`
		TempMin          []float64 `json:"temperature_2m_min"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

// URL request URL with the fixed query parameters
func (c *Client) URL() string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("daily", dailyFields)
	q.Set("timezone", c.timezone)
	return c.endpoint + "?" + q.Encode()
}

// Fetch returns the forecast, or an empty Forecast on any failure
func (c *Client) Fetch(ctx context.Context) model.Forecast {
	start := time.Now()
	forecast, err := c.fetch(ctx)
	if err != nil {
		metrics.RecordWeatherFetch("failed", time.Since(start))
		c.log.Warn("weather fetch failed", zap.Error(err))
		return model.Forecast{}
	}
	metrics.RecordWeatherFetch("success", time.Since(start))
	return forecast
}

func (c *Client) fetch(ctx context.Context) (model.Forecast, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return model.Forecast{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return model.Forecast{}, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Forecast{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Forecast{}, fmt.Errorf("decode: %w", err)
	}
	return toForecast(body), nil
}

// toForecast zips the column arrays; a day missing any column is dropped
func toForecast(body apiResponse) model.Forecast {
	d := body.Daily
	n := len(d.Time)
	for _, l := range []int{len(d.TempMax), len(d.TempMin), len(d.Sunrise), len(d.Sunset), len(d.PrecipitationSum)} {
		if l < n {
			n = l
		}
	}

	out := model.Forecast{
		Current: body.CurrentWeather,
		Daily:   make([]model.DailyForecast, 0, n),
	}
	for i := 0; i < n; i++ {
		out.Daily = append(out.Daily, model.DailyForecast{
			Date:          d.Time[i],
			TempMax:       d.TempMax[i],
			TempMin:       d.TempMin[i],
			Sunrise:       clockPart(d.Sunrise[i]),
			Sunset:        clockPart(d.Sunset[i]),
			Precipitation: d.PrecipitationSum[i],
		})
	}
	return out
}

// clockPart "2025-04-01T06:02" -> "06:02"
func clockPart(ts string) string {
	if _, after, ok := strings.Cut(ts, "T"); ok {
		return after
	}
	return ts
}
