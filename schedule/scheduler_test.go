package schedule

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/cwbudde/voicebank-dsp/internal/testutil"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

const testSampleRate = 44100

func sineSample(freqHz float64, seconds float64) voicebank.Sample {
	n := int(seconds * testSampleRate)
	f64 := testutil.DeterministicSine(freqHz, testSampleRate, 0.2, n)

	f32 := make([]float32, n)
	for i, v := range f64 {
		f32[i] = float32(v)
	}

	return voicebank.Sample{Samples: f32, SampleRate: testSampleRate}
}

func TestRenderNoNotesOrSamples(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	out, status := s.Render(context.Background(), nil, nil, nil)
	if status.Status != StatusNoSamples {
		t.Fatalf("status = %v, want StatusNoSamples", status.Status)
	}

	if out != nil {
		t.Fatalf("output = %v, want nil", out)
	}

	notes := []voicebank.Note{{DurationS: 0.1, Alias: "ka"}}

	out, status = s.Render(context.Background(), notes, map[string]voicebank.Sample{}, nil)
	if status.Status != StatusNoSamples {
		t.Fatalf("status = %v, want StatusNoSamples for empty sample map", status.Status)
	}

	if out != nil {
		t.Fatalf("output = %v, want nil", out)
	}
}

func TestRenderSilentInputProducesAllZeroNoErrors(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	silence := voicebank.Sample{Samples: make([]float32, 4410), SampleRate: testSampleRate}
	notes := []voicebank.Note{{StartTimeS: 0, DurationS: 0.1, Alias: "ka"}}
	samples := map[string]voicebank.Sample{"ka": silence}
	otos := map[string]voicebank.Oto{"ka": {}}

	out, status := s.Render(context.Background(), notes, samples, otos)
	if status.Status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status.Status)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want 0 for all-silent input", i, v)
		}
	}
}

func TestRenderMissingAliasFallsBackToSilence(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	sample := sineSample(220, 0.7)
	notes := []voicebank.Note{{StartTimeS: 0, DurationS: 0.3, Alias: "nonexistent"}}
	samples := map[string]voicebank.Sample{"ka": sample}

	out, status := s.Render(context.Background(), notes, samples, nil)
	if status.Status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status.Status)
	}

	if len(status.SkippedAliases) != 1 || status.SkippedAliases[0] != "nonexistent" {
		t.Fatalf("SkippedAliases = %v, want [nonexistent]", status.SkippedAliases)
	}

	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want 0 for unresolved alias fallback", i, v)
		}
	}
}

func TestRenderTwoNoteMelodyJoinHasNoEnergySpike(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	sampleKa := sineSample(220, 0.7)
	sampleSa := sineSample(220, 0.7)

	notes := []voicebank.Note{
		{StartTimeS: 0, DurationS: 0.5, PitchSemitones: 0, Alias: "ka", OverlapS: 0.02},
		{StartTimeS: 0.5, DurationS: 0.5, PitchSemitones: 7, Alias: "sa", OverlapS: 0.02},
	}
	samples := map[string]voicebank.Sample{"ka": sampleKa, "sa": sampleSa}

	out, status := s.Render(context.Background(), notes, samples, nil)
	if status.Status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status.Status)
	}

	wantLen := int(1.0 * testSampleRate)
	if math.Abs(float64(len(out)-wantLen)) > float64(testSampleRate)/10 {
		t.Fatalf("len(out) = %d, want approximately %d", len(out), wantLen)
	}

	joinSample := timeToSamples(0.5, testSampleRate)
	window := testSampleRate / 100

	localPeak := peakAround(out, joinSample, window)
	surroundingPeak := math.Max(
		peakAround(out, joinSample-window*3, window),
		peakAround(out, joinSample+window*3, window),
	)

	if surroundingPeak > 0 && localPeak > 2*surroundingPeak {
		t.Fatalf("join energy spike: local peak %v > 2x surrounding peak %v", localPeak, surroundingPeak)
	}
}

func peakAround(buf []float32, center, halfWidth int) float64 {
	start := center - halfWidth
	if start < 0 {
		start = 0
	}

	end := center + halfWidth
	if end > len(buf) {
		end = len(buf)
	}

	peak := 0.0

	for _, v := range buf[start:end] {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}

	return peak
}

func TestRenderCancellationStopsEarly(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	sample := sineSample(220, 0.7)
	notes := []voicebank.Note{
		{StartTimeS: 0, DurationS: 0.3, Alias: "ka"},
		{StartTimeS: 0.3, DurationS: 0.3, Alias: "ka"},
	}
	samples := map[string]voicebank.Sample{"ka": sample}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	time.Sleep(time.Millisecond)

	_, status := s.Render(ctx, notes, samples, nil)
	if status.Status != StatusCancelled {
		t.Fatalf("status = %v, want StatusCancelled", status.Status)
	}
}
