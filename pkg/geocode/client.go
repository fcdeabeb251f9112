// Package geocode resolves postal addresses to coordinates through the
// Mapbox forward-geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"pinpoint/pkg/memcache"
)

type Client interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

type MapboxClient struct {
	HTTP        *http.Client
	BaseURL     string
	AccessToken string
	Cache       memcache.AddressCache
	DefaultTTL  time.Duration
}

func NewMapboxClient(cache memcache.AddressCache) *MapboxClient {
	token := os.Getenv("MAPBOX_ACCESS_TOKEN")
	if token == "" {
		panic("MAPBOX_ACCESS_TOKEN is empty")
	}
	return &MapboxClient{
		HTTP:        &http.Client{Timeout: 10 * time.Second},
		BaseURL:     "https://api.mapbox.com",
		AccessToken: token,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
	}
}

type geocodeResponse struct {
	Features []struct {
		Center [2]float64 `json:"center"` // lng, lat
	} `json:"features"`
}

func (c *MapboxClient) Geocode(ctx context.Context, address string) (float64, float64, error) {
	if address == "" {
		return 0, 0, fmt.Errorf("geocode: empty address")
	}

	if lat, lng, ok := c.Cache.Get(address); ok {
		return lat, lng, nil
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: bad base url: %w", err)
	}
	u.Path = "/geocoding/v5/mapbox.places/" + url.PathEscape(address) + ".json"
	q := u.Query()
	q.Set("access_token", c.AccessToken)
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode: provider returned %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("geocode: decode: %w", err)
	}
	if len(body.Features) == 0 {
		return 0, 0, fmt.Errorf("geocode: no match for %q", address)
	}

	lng, lat := body.Features[0].Center[0], body.Features[0].Center[1]
	c.Cache.Set(address, lat, lng, c.DefaultTTL)
	return lat, lng, nil
}
