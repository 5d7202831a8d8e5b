package spectral

import (
	"github.com/cwbudde/voicebank-dsp/internal/cache"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// distancePairKey identifies a cached spectral distance by the fingerprints
// of the two samples it was computed between.
type distancePairKey struct {
	a, b voicebank.Fingerprint
}

// DistanceCache memoizes SpectralDistance results by sample-pair
// fingerprint, since the same A/B join is evaluated repeatedly across
// scheduler re-renders.
type DistanceCache struct {
	lru *cache.LRU[distancePairKey, float64]
}

// NewDistanceCache builds a DistanceCache bounded to capacity entries.
// capacity <= 0 uses cache.DefaultCapacity.
func NewDistanceCache(capacity int) *DistanceCache {
	return &DistanceCache{lru: cache.NewLRU[distancePairKey, float64](capacity)}
}

// Distance returns the cached spectral distance between a and b's
// envelopes, computing and caching it on first use.
func (c *DistanceCache) Distance(fpA, fpB voicebank.Fingerprint, envA, envB voicebank.SpectralEnvelope) float64 {
	key := distancePairKey{a: fpA, b: fpB}

	if d, ok := c.lru.Get(key); ok {
		return d
	}

	d := SpectralDistance(envA, envB)
	c.lru.Put(key, d)

	return d
}
