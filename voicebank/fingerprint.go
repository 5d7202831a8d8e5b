package voicebank

import (
	"hash/fnv"
	"math"
)

// fingerprintSampleCount is the number of leading samples hashed into a
// Fingerprint. Large enough to distinguish samples that share length and
// rate but differ in content, small enough that fingerprinting a long
// buffer stays O(1) relative to its size.
const fingerprintSampleCount = 128

// Fingerprint is a cheap, collision-resistant-enough key for memoizing
// analysis results against a Sample: its length, its sample rate, and an
// FNV-1a hash of its leading samples.
type Fingerprint struct {
	Length     int
	SampleRate int
	Hash       uint64
}

// NewFingerprint computes the Fingerprint of s.
func NewFingerprint(s Sample) Fingerprint {
	h := fnv.New64a()

	n := fingerprintSampleCount
	if n > len(s.Samples) {
		n = len(s.Samples)
	}

	buf := make([]byte, 4)
	for _, v := range s.Samples[:n] {
		bits := math.Float32bits(v)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		_, _ = h.Write(buf)
	}

	return Fingerprint{
		Length:     len(s.Samples),
		SampleRate: s.SampleRate,
		Hash:       h.Sum64(),
	}
}
