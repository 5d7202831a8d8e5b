package fft

import "fmt"

// ForwardSplit computes the forward DFT of a real/imaginary pair stored as
// separate float64 slices, in place. This layout exists for the cepstrum
// path in dsp/spectral: a log-magnitude spectrum is purely real going in,
// and allocating a throwaway []complex128 just to discard a zero Im slice
// on every frame would be wasted work in the STFT hot loop.
func (p *Plan) ForwardSplit(re, im []float64) error {
	return p.transformSplit(re, im, false)
}

// InverseSplit computes the inverse DFT of a real/imaginary pair in place,
// normalized by 1/size.
func (p *Plan) InverseSplit(re, im []float64) error {
	return p.transformSplit(re, im, true)
}

func (p *Plan) transformSplit(re, im []float64, inverse bool) error {
	if len(re) != p.size || len(im) != p.size {
		return fmt.Errorf("fft: split buffers must have length %d: got re=%d im=%d",
			p.size, len(re), len(im))
	}

	permuteSplitInPlace(re, im, p.bitRev)
	p.butterfliesSplit(re, im, inverse)

	if inverse {
		scale := 1 / float64(p.size)
		for i := range re {
			re[i] *= scale
			im[i] *= scale
		}
	}

	return nil
}

func (p *Plan) butterfliesSplit(re, im []float64, inverse bool) {
	n := p.size
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size

		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				twRe := real(p.twiddle[k*stride])
				twIm := imag(p.twiddle[k*stride])
				if inverse {
					twIm = -twIm
				}

				aRe, aIm := re[start+k], im[start+k]
				bRe := re[start+k+half]*twRe - im[start+k+half]*twIm
				bIm := re[start+k+half]*twIm + im[start+k+half]*twRe

				re[start+k] = aRe + bRe
				im[start+k] = aIm + bIm
				re[start+k+half] = aRe - bRe
				im[start+k+half] = aIm - bIm
			}
		}
	}
}

func permuteSplitInPlace(re, im []float64, bitRev []int) {
	for i, j := range bitRev {
		if j > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
