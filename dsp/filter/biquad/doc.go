// Package biquad provides the stateful second-order IIR filter engine.
//
// A [Section] applies the Direct Form I difference equation
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// one sample at a time, keeping the last two inputs and outputs as [History].
// Coefficients can be swapped at any time with [Section.SetCoefficients]; the
// history is carried over unchanged, so an abrupt swap may be audible.
//
// Coefficient design lives in dsp/filter/design. A Section is not safe for
// concurrent use; callers must serialize access.
package biquad
