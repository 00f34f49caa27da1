// Package response measures the magnitude response of a biquad by
// transforming its impulse response with an FFT.
//
// The measurement is complementary to the closed-form evaluation in
// [biquad.Coefficients.MagnitudeSquared]: it observes what the running
// recurrence actually produces, including truncation of slowly decaying
// impulse responses when the FFT size is too small for a very low cutoff.
package response
