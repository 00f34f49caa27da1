// Package design derives biquad coefficients from a sample rate and a
// corner or center frequency using the RBJ "Audio EQ Cookbook" equations.
//
// [Lowpass] and [Highpass] use a fixed quality factor [Q] of 0.5. [Bandpass]
// uses the constant-bandwidth damping term. All designers are pure and
// deterministic and perform no range checks: out-of-range input produces
// degenerate (possibly NaN or infinite) coefficients rather than an error.
// Callers that want to reject such input up front can use [Validate].
//
// The returned [biquad.Coefficients] are consumed by dsp/filter/biquad.
package design
