package voicebank

import "testing"

func TestOtoClampBounds(t *testing.T) {
	o := Oto{
		OffsetMs:       10,
		ConsonantMs:    50,
		CutoffMs:       -5,
		PreutteranceMs: 5,
		OverlapMs:      200,
	}

	clamped := o.Clamp(100)

	if clamped.CutoffMs != 0 {
		t.Fatalf("CutoffMs = %v, want 0", clamped.CutoffMs)
	}

	if clamped.PreutteranceMs < clamped.OffsetMs {
		t.Fatalf("PreutteranceMs %v < OffsetMs %v", clamped.PreutteranceMs, clamped.OffsetMs)
	}

	if clamped.OverlapMs > clamped.ConsonantMs {
		t.Fatalf("OverlapMs %v > ConsonantMs %v", clamped.OverlapMs, clamped.ConsonantMs)
	}
}

func TestOtoClampNegativeDuration(t *testing.T) {
	o := Oto{OffsetMs: 10, ConsonantMs: 20, PreutteranceMs: 15, OverlapMs: 5}

	clamped := o.Clamp(-10)

	if clamped.OffsetMs != 0 || clamped.ConsonantMs != 0 {
		t.Fatalf("expected all fields clamped to 0, got %+v", clamped)
	}
}

func TestSampleString(t *testing.T) {
	s := Sample{Samples: make([]float32, 10), SampleRate: 44100}
	if got := s.String(); got == "" {
		t.Fatal("String() returned empty string")
	}
}
