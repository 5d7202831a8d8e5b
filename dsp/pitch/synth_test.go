package pitch

import (
	"math"
	"testing"

	"github.com/cwbudde/voicebank-dsp/internal/testutil"
)

func TestPsolaSynthesizeFastPathIdentity(t *testing.T) {
	sample := sineSample(200, 44100, 0.1)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	out, err := PsolaSynthesize(sample, analysis, 0, 1)
	if err != nil {
		t.Fatalf("PsolaSynthesize: %v", err)
	}

	if len(out) != len(sample.Samples) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(sample.Samples))
	}

	for i := range out {
		if out[i] != sample.Samples[i] {
			t.Fatalf("out[%d] = %v, want %v (bit-identical fast path)", i, out[i], sample.Samples[i])
		}
	}
}

func TestPsolaSynthesizeTimeStretchLength(t *testing.T) {
	sample := sineSample(200, 44100, 0.1)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	for _, stretch := range []float64{0.5, 1.5, 2.0} {
		out, err := PsolaSynthesize(sample, analysis, 0, stretch)
		if err != nil {
			t.Fatalf("PsolaSynthesize(stretch=%v): %v", stretch, err)
		}

		want := int(math.Ceil(float64(len(sample.Samples)) * stretch))
		if len(out) != want {
			t.Fatalf("stretch=%v: len(out) = %d, want %d", stretch, len(out), want)
		}
	}
}

func TestPsolaSynthesizeNoNaNOrInf(t *testing.T) {
	sample := sineSample(200, 44100, 0.1)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	out, err := PsolaSynthesize(sample, analysis, 12, 1.3)
	if err != nil {
		t.Fatalf("PsolaSynthesize: %v", err)
	}

	testutil.RequireFinite(t, toFloat64Slice32(out))
}

func TestPsolaSynthesizePeakBound(t *testing.T) {
	sample := sineSample(200, 44100, 0.1)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	inPeak := maxAbs32(sample.Samples)

	out, err := PsolaSynthesize(sample, analysis, 3, 1)
	if err != nil {
		t.Fatalf("PsolaSynthesize: %v", err)
	}

	outPeak := maxAbs32(out)

	if outPeak > 2*inPeak {
		t.Fatalf("outPeak = %v, want <= %v", outPeak, 2*inPeak)
	}
}

func TestPsolaSynthesizeSilentInput(t *testing.T) {
	sample := silentSample(44100, 4410)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	out, err := PsolaSynthesize(sample, analysis, 5, 1.2)
	if err != nil {
		t.Fatalf("PsolaSynthesize: %v", err)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want 0 for silent input", i, v)
		}
	}
}

func toFloat64Slice32(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}

	return out
}

func maxAbs32(samples []float32) float32 {
	var m float32

	for _, v := range samples {
		if v < 0 {
			v = -v
		}

		if v > m {
			m = v
		}
	}

	return m
}
