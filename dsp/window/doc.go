// Package window provides the small set of analysis window functions the
// voicebank DSP core needs (Hann, Hamming, Triangular, plus a rectangular
// no-op), with periodic/symmetric framing control and vecmath-backed
// block application.
package window
