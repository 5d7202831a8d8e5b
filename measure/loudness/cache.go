package loudness

import (
	"github.com/cwbudde/voicebank-dsp/internal/cache"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// AnalysisCache memoizes Analyze results by sample fingerprint.
type AnalysisCache struct {
	lru *cache.LRU[voicebank.Fingerprint, voicebank.LoudnessAnalysis]
}

// NewAnalysisCache builds an AnalysisCache bounded to capacity entries.
// capacity <= 0 uses cache.DefaultCapacity.
func NewAnalysisCache(capacity int) *AnalysisCache {
	return &AnalysisCache{lru: cache.NewLRU[voicebank.Fingerprint, voicebank.LoudnessAnalysis](capacity)}
}

// AnalyzeCached returns a cached loudness analysis for sample if present,
// otherwise computes, caches, and returns a fresh one.
func (c *AnalysisCache) AnalyzeCached(sample voicebank.Sample) voicebank.LoudnessAnalysis {
	fp := voicebank.NewFingerprint(sample)

	if analysis, ok := c.lru.Get(fp); ok {
		return analysis
	}

	analysis := Analyze(sample.Samples)
	c.lru.Put(fp, analysis)

	return analysis
}
