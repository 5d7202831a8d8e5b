package schedule

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/voicebank-dsp/dsp/core"
)

// softKneeLimit scales buf in place so its peak does not exceed ceilingDB,
// using the same soft-knee reduction formula as measure/loudness's
// normalization gain: reductions above kneeDB only apply at half strength.
// kneeDB <= 0 enforces the ceiling exactly (hard knee). A silent buffer is
// left untouched.
func softKneeLimit(buf []float64, ceilingDB, kneeDB float64) {
	peak := 0.0

	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak <= 0 {
		return
	}

	peakDB := core.LinearToDB(peak)
	if peakDB <= ceilingDB {
		return
	}

	required := peakDB - ceilingDB

	var reduction float64

	switch {
	case kneeDB <= 0:
		reduction = required
	case required > kneeDB:
		reduction = kneeDB + 0.5*(required-kneeDB)
	default:
		reduction = required
	}

	gain := core.DBToLinear(-reduction)

	vecmath.ScaleBlockInPlace(buf, gain)
}
