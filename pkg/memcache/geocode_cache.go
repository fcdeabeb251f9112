package memcache

import (
	"sync"
	"time"
)

// AddressCache memoizes geocoder lookups so repeated saves of the same
// address do not burn provider quota.
type AddressCache interface {
	Get(address string) (lat, lng float64, ok bool)
	Set(address string, lat, lng float64, ttl time.Duration)
}

type entry struct {
	lat       float64
	lng       float64
	expiresAt time.Time
}

type addressCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewAddressCache() AddressCache {
	return &addressCache{data: make(map[string]entry)}
}

func (c *addressCache) Get(address string) (float64, float64, bool) {
	c.mu.RLock()
	e, ok := c.data[address]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return 0, 0, false
	}
	return e.lat, e.lng, true
}

func (c *addressCache) Set(address string, lat, lng float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[address] = entry{lat: lat, lng: lng, expiresAt: time.Now().Add(ttl)}
}
