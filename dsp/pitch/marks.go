package pitch

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// minAnalysisSamples is the shortest buffer AnalyzePitchMarks will accept;
// shorter input cannot contain even one analysis frame.
const minAnalysisSamples = 100

// unvoicedPeriodMs is the synthetic period assigned to unvoiced frames so
// PSOLA synthesis still has a grain spacing to walk, without implying a
// detected pitch.
const unvoicedPeriodMs = 10

// AnalyzePitchMarks scans sample for glottal pitch marks: a sliding-frame
// autocorrelation pass estimates the local period and voicing of the
// signal, then a forward walk from the first voiced frame lays down marks
// spaced by the local period, snapped to nearby energy peaks.
func AnalyzePitchMarks(sample voicebank.Sample, opts ...AnalysisOption) (voicebank.PsolaAnalysis, error) {
	cfg := ApplyAnalysisOptions(opts...)

	n := len(sample.Samples)
	if n < minAnalysisSamples {
		return voicebank.PsolaAnalysis{}, voicebank.ErrAnalysisEmpty
	}

	frames := scanFrames(sample.Samples, sample.SampleRate, cfg)

	marks, periods, voiced := walkMarks(sample.Samples, frames, sample.SampleRate, cfg)

	return voicebank.PsolaAnalysis{
		PitchMarks:   marks,
		PitchPeriods: periods,
		VoicedFlags:  voiced,
		SampleRate:   sample.SampleRate,
	}, nil
}

// frameEstimate is the per-frame result of the sliding autocorrelation scan.
type frameEstimate struct {
	center  int
	period  float64
	energy  float64
	voiced  bool
	exists  bool // whether autocorrelation produced a usable peak at all
}

func scanFrames(samples []float32, sampleRate int, cfg AnalysisConfig) []frameEstimate {
	frameLen := cfg.FrameSizeSamples
	if frameLen > len(samples) {
		frameLen = len(samples)
	}

	hop := hopSamples(sampleRate)

	minLag := int(float64(sampleRate) / cfg.MaxFreqHz)
	maxLag := int(float64(sampleRate) / cfg.MinFreqHz)

	if minLag < 1 {
		minLag = 1
	}

	var frames []frameEstimate

	for start := 0; start+frameLen <= len(samples); start += hop {
		frame := toFloat64(samples[start : start+frameLen])

		energy := dot(frame, frame) / float64(len(frame))

		lag, strength, ok := autocorrelationPeak(frame, minLag, maxLag)

		est := frameEstimate{
			center: start + frameLen/2,
			energy: energy,
		}

		if ok {
			est.period = lag
			est.exists = true
			est.voiced = strength >= cfg.VoicingThreshold && energy > silenceFloor
		} else {
			est.period = float64(sampleRate) * unvoicedPeriodMs / 1000
			est.voiced = false
		}

		frames = append(frames, est)
	}

	return frames
}

// silenceFloor is the short-time energy below which a frame is never
// considered voiced regardless of autocorrelation strength.
const silenceFloor = 1e-8

func hopSamples(sampleRate int) int {
	hop := sampleRate / 100 // ~10ms
	if hop < 1 {
		hop = 1
	}

	return hop
}

func walkMarks(samples []float32, frames []frameEstimate, sampleRate int, cfg AnalysisConfig) ([]int, []int, []bool) {
	if len(frames) == 0 {
		return nil, nil, nil
	}

	firstVoiced := -1

	for i, f := range frames {
		if f.voiced {
			firstVoiced = i
			break
		}
	}

	unvoicedPeriod := int(float64(sampleRate) * unvoicedPeriodMs / 1000)
	if unvoicedPeriod < 1 {
		unvoicedPeriod = 1
	}

	var marks []int

	var periods []int

	var voicedFlags []bool

	n := len(samples)

	startMark := 0
	if firstVoiced >= 0 {
		startMark = frames[firstVoiced].center
	}

	if startMark >= n {
		startMark = 0
	}

	pos := startMark

	for pos < n {
		f := nearestFrame(frames, pos)

		period := int(math.Round(f.period))
		if period < 1 {
			period = unvoicedPeriod
		}

		snapped := snapToEnergyPeak(samples, pos, period)

		if len(marks) > 0 && snapped <= marks[len(marks)-1] {
			snapped = marks[len(marks)-1] + 1
		}

		if snapped >= n {
			break
		}

		marks = append(marks, snapped)
		periods = append(periods, period)
		voicedFlags = append(voicedFlags, f.voiced)

		pos = snapped + period
	}

	return marks, periods, voicedFlags
}

func nearestFrame(frames []frameEstimate, pos int) frameEstimate {
	best := frames[0]
	bestDist := absInt(frames[0].center - pos)

	for _, f := range frames[1:] {
		d := absInt(f.center - pos)
		if d < bestDist {
			best = f
			bestDist = d
		}
	}

	return best
}

// snapToEnergyPeak nudges a candidate mark to the local sample-magnitude
// maximum within +/-25% of period, biasing pitch marks toward glottal
// closure instants instead of an arbitrary frame-walk position.
func snapToEnergyPeak(samples []float32, pos, period int) int {
	radius := period / 4
	if radius < 1 {
		return clampIndex(pos, len(samples))
	}

	lo := pos - radius
	hi := pos + radius

	if lo < 0 {
		lo = 0
	}

	if hi >= len(samples) {
		hi = len(samples) - 1
	}

	if lo > hi {
		return clampIndex(pos, len(samples))
	}

	best := lo
	bestVal := float32(math.Abs(float64(samples[lo])))

	for i := lo + 1; i <= hi; i++ {
		v := float32(math.Abs(float64(samples[i])))
		if v > bestVal {
			bestVal = v
			best = i
		}
	}

	return best
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func toFloat64(samples []float32) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}

	return out
}
