package directions

import (
	"context"
	"log"

	"github.com/mmcloughlin/geohash"

	"quicktrip-api/internal/domain"
	"quicktrip-api/internal/ports"
)

// Key precision: 7 geohash characters is roughly a 76m cell, tight enough
// that quantized endpoints still describe the same leg.
const geohashChars = 7

// CachedProvider is a read-through cache around another RouteProvider.
//
// Keys quantize both endpoints to geohash cells so nearby lookups share
// entries. Cache failures are logged and never fail a lookup; provider
// failures are never cached.
type CachedProvider struct {
	inner ports.RouteProvider
	cache ports.RouteCache
}

func NewCachedProvider(inner ports.RouteProvider, cache ports.RouteCache) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache}
}

func cacheKey(origin, destination domain.Coordinates, mode domain.TransportMode) string {
	return string(mode) + ":" +
		geohash.EncodeWithPrecision(origin.Lat, origin.Lon, geohashChars) + ":" +
		geohash.EncodeWithPrecision(destination.Lat, destination.Lon, geohashChars)
}

func (c *CachedProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode domain.TransportMode,
) (ports.RouteResult, error) {
	key := cacheKey(origin, destination, mode)

	cached, found, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("route cache read failed key=%s err=%v", key, err)
	} else if found {
		return cached, nil
	}

	result, err := c.inner.Route(ctx, origin, destination, mode)
	if err != nil {
		return ports.RouteResult{}, err
	}

	if err := c.cache.Put(ctx, key, result); err != nil {
		log.Printf("route cache write failed key=%s err=%v", key, err)
	}

	return result, nil
}
