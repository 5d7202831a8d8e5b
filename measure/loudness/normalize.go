package loudness

import (
	"sort"

	"github.com/cwbudde/voicebank-dsp/dsp/core"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// NormalizationGain computes the linear gain that brings analysis to the
// configured target RMS, clamped by gain range and peak ceiling (with an
// optional soft knee). Silent input always returns 1.0 unmodified,
// matching a caller that treats gain 1.0 as "leave untouched".
func NormalizationGain(analysis voicebank.LoudnessAnalysis, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)

	if !analysis.HasContent {
		return 1.0
	}

	target := cfg.TargetRMSDB
	if cfg.MedianRMSDB != nil {
		target = *cfg.MedianRMSDB
	}

	gainDB := target - analysis.RMSDB
	gainDB = core.Clamp(gainDB, cfg.MinGainDB, cfg.MaxGainDB)

	projectedPeakDB := analysis.PeakDB + gainDB
	if projectedPeakDB > cfg.MaxPeakDB {
		required := projectedPeakDB - cfg.MaxPeakDB

		var reduction float64
		if cfg.KneeDB <= 0 {
			reduction = required
		} else if required > cfg.KneeDB {
			reduction = cfg.KneeDB + 0.5*(required-cfg.KneeDB)
		} else {
			reduction = required
		}

		gainDB -= reduction
	}

	return core.DBToLinear(gainDB)
}

// MedianRMSDB returns the median RMS-in-dB of the analyses that have
// content, used as a voicebank-wide normalization target. Returns the
// default target RMS if no analysis has content.
func MedianRMSDB(analyses []voicebank.LoudnessAnalysis, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)

	var values []float64

	for _, a := range analyses {
		if a.HasContent {
			values = append(values, a.RMSDB)
		}
	}

	if len(values) == 0 {
		return cfg.TargetRMSDB
	}

	sort.Float64s(values)

	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}

	return (values[n/2-1] + values[n/2]) / 2
}

// JoinGainCorrection returns an additional linear gain to apply to clip B
// across the crossfade overlap so that a post-gain loudness mismatch
// between two joined clips doesn't read as a level jump. gainA and gainB
// are the clips' own normalization gains (linear); rmsA and rmsB are their
// pre-gain RMS values.
func JoinGainCorrection(rmsA, gainA, rmsB, gainB float64, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)

	postA := core.LinearToDB(rmsA * gainA)
	postB := core.LinearToDB(rmsB * gainB)

	diff := postA - postB
	if diff < 0 {
		diff = -diff
	}

	if diff <= cfg.JoinThresholdDB {
		return 1.0
	}

	return core.DBToLinear(postA - postB)
}
