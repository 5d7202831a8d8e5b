package spectral

import (
	"testing"

	"github.com/cwbudde/voicebank-dsp/internal/testutil"
)

func TestApplySpectralSmoothingBelowThresholdNoOp(t *testing.T) {
	tailA := toFloat32(testutil.DeterministicSine(220, 44100, 0.5, 4096))
	headB := toFloat32(testutil.DeterministicSine(220, 44100, 0.5, 4096))

	origTail := append([]float32(nil), tailA...)
	origHead := append([]float32(nil), headB...)

	if err := ApplySpectralSmoothing(tailA, headB, 44100, 0.01); err != nil {
		t.Fatalf("ApplySpectralSmoothing: %v", err)
	}

	for i := range tailA {
		if tailA[i] != origTail[i] {
			t.Fatalf("tailA[%d] modified below threshold", i)
		}
	}

	for i := range headB {
		if headB[i] != origHead[i] {
			t.Fatalf("headB[%d] modified below threshold", i)
		}
	}
}

func TestApplySpectralSmoothingShortBuffersNoOp(t *testing.T) {
	tailA := toFloat32(testutil.DeterministicSine(220, 44100, 0.5, 100))
	headB := toFloat32(testutil.DeterministicSine(440, 44100, 0.5, 100))

	orig := append([]float32(nil), tailA...)

	if err := ApplySpectralSmoothing(tailA, headB, 44100, 5.0); err != nil {
		t.Fatalf("ApplySpectralSmoothing: %v", err)
	}

	for i := range tailA {
		if tailA[i] != orig[i] {
			t.Fatalf("tailA[%d] modified despite short buffer", i)
		}
	}
}

func TestApplySpectralSmoothingBoundedEnergyChange(t *testing.T) {
	tailA := toFloat32(testutil.DeterministicSine(220, 44100, 0.5, 4096))
	headB := toFloat32(testutil.DeterministicSine(880, 44100, 0.5, 4096))

	inTailRMS := rms(tailA)
	inHeadRMS := rms(headB)

	if err := ApplySpectralSmoothing(tailA, headB, 44100, 0.8); err != nil {
		t.Fatalf("ApplySpectralSmoothing: %v", err)
	}

	testutil.RequireFinite(t, toFloat64(tailA))
	testutil.RequireFinite(t, toFloat64(headB))

	outTailRMS := rms(tailA)
	outHeadRMS := rms(headB)

	if outTailRMS > 4*inTailRMS || outTailRMS < 0.25*inTailRMS {
		t.Fatalf("tailA RMS changed beyond bounds: %v -> %v", inTailRMS, outTailRMS)
	}

	if outHeadRMS > 4*inHeadRMS || outHeadRMS < 0.25*inHeadRMS {
		t.Fatalf("headB RMS changed beyond bounds: %v -> %v", inHeadRMS, outHeadRMS)
	}
}
