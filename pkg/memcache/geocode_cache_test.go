package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCacheRoundTrip(t *testing.T) {
	c := NewAddressCache()

	_, _, ok := c.Get("1 Main St, Hoboken")
	assert.False(t, ok)

	c.Set("1 Main St, Hoboken", 40.7, -74.0, time.Minute)

	lat, lng, ok := c.Get("1 Main St, Hoboken")
	require.True(t, ok)
	assert.Equal(t, 40.7, lat)
	assert.Equal(t, -74.0, lng)
}

func TestAddressCacheExpiry(t *testing.T) {
	c := NewAddressCache()
	c.Set("1 Main St", 40.7, -74.0, -time.Second)

	_, _, ok := c.Get("1 Main St")
	assert.False(t, ok)
}
