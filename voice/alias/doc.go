// Package alias resolves a requested phoneme alias (romaji or kana,
// optionally CV-prefixed or VCV-contextualized) against a voicebank's
// actual alias set, and provides the static kana<->romaji conversion table
// the cascade relies on.
package alias
