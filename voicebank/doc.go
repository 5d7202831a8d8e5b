// Package voicebank holds the data model shared across the DSP engine:
// the Sample/Oto/Note types that flow between packages, the analysis
// result types each subsystem produces, and the sentinel errors and
// fingerprinting helper used to key analysis caches.
package voicebank
