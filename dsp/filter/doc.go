// Package filter provides a single biquad whose response can be switched
// between lowpass and highpass (and, optionally, bandpass) at runtime.
//
// A [Filter] remembers its sample rate, cutoff and [Mode], and keeps the
// coefficients of its underlying biquad section consistent with them: every
// cutoff or mode change re-derives the coefficients before the next sample is
// processed. The filter history is never cleared by these changes.
//
// A Filter is not safe for concurrent use.
package filter
