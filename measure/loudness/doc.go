// Package loudness implements RMS/peak loudness analysis and the
// normalization gain (with soft-knee peak limiting) and join gain
// correction the scheduler uses to match levels across concatenated
// clips.
package loudness
