package pitch

import (
	"math"
	"testing"
)

func TestDetectPitchSine(t *testing.T) {
	sample := sineSample(220, 44100, 0.1)

	res := DetectPitch(sample.Samples, sample.SampleRate)
	if !res.Detected {
		t.Fatal("expected detection for a clean sine")
	}

	if res.FrequencyHz < 200 || res.FrequencyHz > 240 {
		t.Fatalf("FrequencyHz = %v, want near 220", res.FrequencyHz)
	}
}

func TestDetectPitchSilence(t *testing.T) {
	sample := silentSample(44100, 4410)

	res := DetectPitch(sample.Samples, sample.SampleRate)
	if res.Detected {
		t.Fatal("expected no detection for silence")
	}

	if res != (Result{}) {
		t.Fatalf("res = %+v, want zero value", res)
	}
}

func TestPitchCorrectionSemitonesIdentity(t *testing.T) {
	if got := PitchCorrectionSemitones(440, 440); got != 0 {
		t.Fatalf("PitchCorrectionSemitones(440, 440) = %v, want 0", got)
	}
}

func TestPitchCorrectionSemitonesOctave(t *testing.T) {
	got := PitchCorrectionSemitones(880, 440)
	if math.Abs(got-(-12)) > 1e-9 {
		t.Fatalf("PitchCorrectionSemitones(880, 440) = %v, want -12", got)
	}
}

func TestPitchCorrectionSemitonesInvalid(t *testing.T) {
	if got := PitchCorrectionSemitones(0, 440); got != 0 {
		t.Fatalf("got %v, want 0 for zero input", got)
	}

	if got := PitchCorrectionSemitones(440, -1); got != 0 {
		t.Fatalf("got %v, want 0 for negative reference", got)
	}
}

func TestOptimalGrainSizeSClampsAndFallback(t *testing.T) {
	if got := OptimalGrainSizeS(-1); got != 0.1 {
		t.Fatalf("OptimalGrainSizeS(-1) = %v, want 0.1", got)
	}

	if got := OptimalGrainSizeS(0.001); got != 0.02 {
		t.Fatalf("OptimalGrainSizeS(0.001) = %v, want 0.02 (lower clamp)", got)
	}

	if got := OptimalGrainSizeS(1); got != 0.2 {
		t.Fatalf("OptimalGrainSizeS(1) = %v, want 0.2 (upper clamp)", got)
	}
}

func TestRepresentativePitchSilence(t *testing.T) {
	sample := silentSample(44100, 44100)

	got := RepresentativePitch(sample.Samples, sample.SampleRate, 5, 0.05, 0.05)
	if got != 0 {
		t.Fatalf("RepresentativePitch(silence) = %v, want 0", got)
	}
}

func TestRepresentativePitchSine(t *testing.T) {
	sample := sineSample(220, 44100, 1.0)

	got := RepresentativePitch(sample.Samples, sample.SampleRate, 5, 0.05, 0.05)
	if got <= 0 {
		t.Fatal("expected a positive representative period for a sustained sine")
	}

	expected := 1.0 / 220

	if got < 0.5*expected || got > 2*expected {
		t.Fatalf("RepresentativePitch = %v, want near %v", got, expected)
	}
}
