package pitch

import (
	"math"
	"testing"

	"github.com/cwbudde/voicebank-dsp/internal/testutil"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

func sineSample(freqHz float64, sr int, durationS float64) voicebank.Sample {
	length := int(durationS * float64(sr))

	return voicebank.Sample{Samples: toFloat32(testutil.DeterministicSine(freqHz, float64(sr), 0.8, length)), SampleRate: sr}
}

func silentSample(sr, length int) voicebank.Sample {
	return voicebank.Sample{Samples: toFloat32(testutil.DC(0, length)), SampleRate: sr}
}

func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}

	return out
}

func TestAnalyzePitchMarksRejectsTooShort(t *testing.T) {
	sample := voicebank.Sample{Samples: make([]float32, 10), SampleRate: 44100}

	_, err := AnalyzePitchMarks(sample)
	if err != voicebank.ErrAnalysisEmpty {
		t.Fatalf("err = %v, want ErrAnalysisEmpty", err)
	}
}

func TestAnalyzePitchMarksMonotonicAndInRange(t *testing.T) {
	const sr = 44100

	sample := sineSample(200, sr, 0.3)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	if len(analysis.PitchMarks) == 0 {
		t.Fatal("expected at least one pitch mark for a sine wave")
	}

	for i, m := range analysis.PitchMarks {
		if m < 0 || m >= len(sample.Samples) {
			t.Fatalf("mark[%d] = %d out of range [0, %d)", i, m, len(sample.Samples))
		}

		if i > 0 && m <= analysis.PitchMarks[i-1] {
			t.Fatalf("marks not strictly increasing at %d: %d <= %d", i, m, analysis.PitchMarks[i-1])
		}
	}

	hasVoiced := false

	for _, v := range analysis.VoicedFlags {
		if v {
			hasVoiced = true
			break
		}
	}

	if !hasVoiced {
		t.Fatal("expected at least one voiced frame for a 200Hz sine")
	}
}

func TestAnalyzePitchMarksSilenceAllUnvoiced(t *testing.T) {
	const sr = 44100

	sample := silentSample(sr, sr/10)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	for i, v := range analysis.VoicedFlags {
		if v {
			t.Fatalf("voicedFlags[%d] = true for silence, want false", i)
		}
	}
}

func TestAnalyzePitchMarksMeanPeriodNearExpected(t *testing.T) {
	const sr = 44100

	sample := sineSample(200, sr, 0.3)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	if len(analysis.PitchPeriods) < 2 {
		t.Skip("not enough marks to compute mean period")
	}

	sum := 0.0
	for _, p := range analysis.PitchPeriods {
		sum += float64(p)
	}

	mean := sum / float64(len(analysis.PitchPeriods))
	expected := float64(sr) / 200

	if mean < 0.8*expected || mean > 1.2*expected {
		t.Fatalf("mean period = %v, want within 20%% of %v", mean, expected)
	}
}

func TestAnalyzePitchMarksFirstMarkNearStart(t *testing.T) {
	const sr = 44100

	sample := sineSample(200, sr, 0.3)

	analysis, err := AnalyzePitchMarks(sample)
	if err != nil {
		t.Fatalf("AnalyzePitchMarks: %v", err)
	}

	if len(analysis.PitchMarks) == 0 {
		t.Fatal("expected marks")
	}

	limit := int(math.Ceil(0.05 * float64(sr)))
	if analysis.PitchMarks[0] >= limit {
		t.Fatalf("first mark %d not near start (limit %d)", analysis.PitchMarks[0], limit)
	}
}
