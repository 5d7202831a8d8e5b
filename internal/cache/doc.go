// Package cache implements a small fingerprint-keyed LRU shared by the
// PSOLA, spectral distance, and loudness analysis stages: all three cache
// an expensive analysis result keyed by a cheap fingerprint of the input
// (a pair of fingerprints for spectral distance) so repeated renders of
// the same note don't re-run the DSP.
package cache
