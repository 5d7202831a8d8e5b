package schedule

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/voicebank-dsp/dsp/buffer"
)

// mixClips places every clip at its placementPos and additively mixes them
// into one output buffer, then applies the final soft-knee peak limiter.
// Clips are summed in slice order so the result is deterministic for a
// fixed input regardless of how they were produced. The accumulator comes
// from pool, which Render reuses across calls instead of allocating a
// fresh output-length buffer every time.
func mixClips(clips []processedClip, cfg Config, pool *buffer.Pool) []float32 {
	outLen := 0

	for _, c := range clips {
		if end := c.placementPos + len(c.samples); end > outLen {
			outLen = end
		}
	}

	if outLen <= 0 {
		return nil
	}

	acc := pool.Get(outLen)
	defer pool.Put(acc)

	out := acc.Samples()

	for _, c := range clips {
		src := c.samples
		pos := c.placementPos

		if pos < 0 {
			if -pos >= len(src) {
				continue
			}

			src = src[-pos:]
			pos = 0
		}

		if pos >= len(out) || len(src) == 0 {
			continue
		}

		if pos+len(src) > len(out) {
			src = src[:len(out)-pos]
		}

		vecmath.AddBlockInPlace(out[pos:pos+len(src)], src)
	}

	softKneeLimit(out, cfg.LimiterCeilingDB, cfg.LimiterKneeDB)

	return toFloat32(out)
}
