package core

// EnsureLen returns a slice with the requested length, reusing buf's
// backing array if its capacity already covers n. dsp/spectral's STFT
// frame loop (formant.go's frameAt) calls this every hop to resize a
// per-frame scratch buffer without allocating fresh on each iteration.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0. Used to clear a reused frame scratch
// buffer before copying a new frame's samples into it, so a shorter tail
// frame at the end of a clip never keeps stale samples from the previous,
// longer frame that occupied the same backing array.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements,
// stopping at whichever of the two is shorter. frameAt uses this to copy
// the in-bounds portion of a source clip into a frame scratch buffer that
// was already sized (and zeroed) for the full frame, so a frame that runs
// past the end of the clip is copied short and reads zero beyond it.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
