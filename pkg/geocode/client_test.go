package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinpoint/pkg/memcache"
)

func newTestClient(baseURL string) *MapboxClient {
	return &MapboxClient{
		HTTP:        &http.Client{Timeout: time.Second},
		BaseURL:     baseURL,
		AccessToken: "test-token",
		Cache:       memcache.NewAddressCache(),
		DefaultTTL:  time.Minute,
	}
}

func TestGeocodeParsesCenterAsLngLat(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[-74.0,40.7]}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	lat, lng, err := client.Geocode(context.Background(), "1 Main St, Hoboken")
	require.NoError(t, err)
	assert.Equal(t, 40.7, lat)
	assert.Equal(t, -74.0, lng)

	// second lookup is served from the cache
	_, _, err = client.Geocode(context.Background(), "1 Main St, Hoboken")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestGeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Geocode(context.Background(), "nowhere")
	assert.Error(t, err)
}

func TestGeocodeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Geocode(context.Background(), "1 Main St")
	assert.Error(t, err)
}

func TestGeocodeEmptyAddress(t *testing.T) {
	_, _, err := newTestClient("http://unused").Geocode(context.Background(), "")
	assert.Error(t, err)
}
