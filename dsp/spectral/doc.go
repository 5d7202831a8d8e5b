// Package spectral implements the STFT-based spectral stages of the
// engine: cepstral envelope extraction, formant-preserving correction of
// PSOLA output, and spectral smoothing at sample concatenation joins.
package spectral
