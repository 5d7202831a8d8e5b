// Package pitch implements pitch-synchronous analysis and synthesis
// (PSOLA) and standalone autocorrelation pitch detection: locating glottal
// pitch marks in a recording, resynthesizing it at an independent pitch
// shift and time stretch, and estimating the dominant period of an
// arbitrary window of audio.
package pitch
