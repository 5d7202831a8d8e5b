package pitch

import (
	"github.com/cwbudde/voicebank-dsp/internal/cache"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// AnalysisCache memoizes AnalyzePitchMarks results by sample fingerprint,
// avoiding repeat pitch-mark analysis across renders of the same source
// sample.
type AnalysisCache struct {
	lru *cache.LRU[voicebank.Fingerprint, voicebank.PsolaAnalysis]
}

// NewAnalysisCache builds an AnalysisCache bounded to capacity entries.
// capacity <= 0 uses cache.DefaultCapacity.
func NewAnalysisCache(capacity int) *AnalysisCache {
	return &AnalysisCache{lru: cache.NewLRU[voicebank.Fingerprint, voicebank.PsolaAnalysis](capacity)}
}

// Get returns a cached analysis for sample's fingerprint, if present.
func (c *AnalysisCache) Get(sample voicebank.Sample) (voicebank.PsolaAnalysis, bool) {
	return c.lru.Get(voicebank.NewFingerprint(sample))
}

// AnalyzeCached returns a cached analysis if present, otherwise computes,
// caches, and returns a fresh one.
func (c *AnalysisCache) AnalyzeCached(sample voicebank.Sample, opts ...AnalysisOption) (voicebank.PsolaAnalysis, error) {
	fp := voicebank.NewFingerprint(sample)

	if analysis, ok := c.lru.Get(fp); ok {
		return analysis, nil
	}

	analysis, err := AnalyzePitchMarks(sample, opts...)
	if err != nil {
		return voicebank.PsolaAnalysis{}, err
	}

	c.lru.Put(fp, analysis)

	return analysis, nil
}
