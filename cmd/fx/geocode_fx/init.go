package geocode_fx

import (
	"go.uber.org/fx"

	"pinpoint/pkg/geocode"
	"pinpoint/pkg/memcache"
)

var Module = fx.Provide(
	provideAddressCache, provideGeocoder)

func provideAddressCache() memcache.AddressCache {
	return memcache.NewAddressCache()
}

func provideGeocoder(cache memcache.AddressCache) geocode.Client {
	return geocode.NewMapboxClient(cache)
}
