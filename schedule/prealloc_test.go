package schedule

import (
	"context"
	"testing"

	"github.com/cwbudde/voicebank-dsp/internal/testutil"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

func TestPreanalyzePopulatesBothCaches(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	f64 := testutil.DeterministicSine(220, testSampleRate, 0.3, testSampleRate/2)
	f32 := make([]float32, len(f64))

	for i, v := range f64 {
		f32[i] = float32(v)
	}

	sample := voicebank.Sample{Samples: f32, SampleRate: testSampleRate}

	if err := s.preanalyze(context.Background(), []voicebank.Sample{sample}); err != nil {
		t.Fatalf("preanalyze() error = %v", err)
	}

	if _, ok := s.pitchCache.Get(sample); !ok {
		t.Fatal("pitch cache not populated after preanalyze")
	}

	loudnessAnalysis := s.loudnessCache.AnalyzeCached(sample)
	if !loudnessAnalysis.HasContent {
		t.Fatal("loudness analysis for a sine wave should report HasContent")
	}
}

func TestPreanalyzeToleratesTooShortSamples(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate))

	tooShort := voicebank.Sample{Samples: make([]float32, 4), SampleRate: testSampleRate}

	if err := s.preanalyze(context.Background(), []voicebank.Sample{tooShort}); err != nil {
		t.Fatalf("preanalyze() error = %v, want nil (ErrAnalysisEmpty swallowed)", err)
	}
}

func TestMaxWorkersFloorsAtOne(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate), WithMaxWorkers(-5))

	if got := s.maxWorkers(); got < 1 {
		t.Fatalf("maxWorkers() = %d, want >= 1", got)
	}
}

func TestMaxWorkersHonorsConfig(t *testing.T) {
	s := NewScheduler(WithSampleRate(testSampleRate), WithMaxWorkers(3))

	if got := s.maxWorkers(); got != 3 {
		t.Fatalf("maxWorkers() = %d, want 3", got)
	}
}
