package spectral

import (
	"math"
	"testing"

	"github.com/cwbudde/voicebank-dsp/internal/testutil"
)

func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}

	return out
}

func TestApplyFormantPreservationFastPath(t *testing.T) {
	orig := toFloat32(testutil.DeterministicSine(220, 44100, 0.5, 4096))
	shifted := toFloat32(testutil.DeterministicSine(440, 44100, 0.5, 4096))

	out, err := ApplyFormantPreservation(orig, shifted, 44100, 12, WithFormantScale(1.0))
	if err != nil {
		t.Fatalf("ApplyFormantPreservation: %v", err)
	}

	if len(out) != len(shifted) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(shifted))
	}

	for i := range out {
		if out[i] != shifted[i] {
			t.Fatalf("out[%d] = %v, want byte-identical %v", i, out[i], shifted[i])
		}
	}
}

func TestApplyFormantPreservationFinite(t *testing.T) {
	orig := toFloat32(testutil.DeterministicSine(220, 44100, 0.5, 4096))
	shifted := toFloat32(testutil.DeterministicSine(440, 44100, 0.5, 4096))

	out, err := ApplyFormantPreservation(orig, shifted, 44100, 12, WithFormantScale(0))
	if err != nil {
		t.Fatalf("ApplyFormantPreservation: %v", err)
	}

	testutil.RequireFinite(t, toFloat64(out))
}

func TestApplyFormantPreservationZeroShiftStaysClose(t *testing.T) {
	signal := testutil.DeterministicSine(220, 44100, 0.5, 4096)
	samples := toFloat32(signal)

	out, err := ApplyFormantPreservation(samples, samples, 44100, 0, WithFormantScale(0))
	if err != nil {
		t.Fatalf("ApplyFormantPreservation: %v", err)
	}

	inRMS := rms(samples)
	outRMS := rms(out)

	if outRMS < 0.5*inRMS || outRMS > 2*inRMS {
		t.Fatalf("outRMS = %v, want within 0.5x-2x of inRMS %v", outRMS, inRMS)
	}
}

func rms(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range samples {
		sum += float64(v) * float64(v)
	}

	return math.Sqrt(sum / float64(len(samples)))
}
