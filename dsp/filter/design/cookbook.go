package design

import (
	"math"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

// Q is the quality factor used by [Lowpass] and [Highpass].
// With Q = 0.5 the damping term reduces to sin(w0).
const Q = 0.5

// cookbook holds the intermediate quantities shared by all designers.
type cookbook struct {
	cosW0, sinW0 float64
}

func newCookbook(freq, sampleRate float64) cookbook {
	w0 := 2 * math.Pi * freq / sampleRate
	return cookbook{cosW0: math.Cos(w0), sinW0: math.Sin(w0)}
}

// Lowpass designs a second-order lowpass at cutoff (Hz).
func Lowpass(sampleRate, cutoff float64) biquad.Coefficients {
	k := newCookbook(cutoff, sampleRate)
	alpha := k.sinW0 / (2 * Q)

	b0 := (1 - k.cosW0) / 2
	b1 := 1 - k.cosW0
	b2 := (1 - k.cosW0) / 2
	a0 := 1 + alpha
	a1 := -2 * k.cosW0
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs a second-order highpass at cutoff (Hz).
func Highpass(sampleRate, cutoff float64) biquad.Coefficients {
	k := newCookbook(cutoff, sampleRate)
	alpha := k.sinW0 / (2 * Q)

	b0 := (1 + k.cosW0) / 2
	b1 := -(1 + k.cosW0)
	b2 := (1 + k.cosW0) / 2
	a0 := 1 + alpha
	a1 := -2 * k.cosW0
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Bandpass designs a constant-skirt-gain bandpass centered at center (Hz)
// with the given bandwidth (Hz). The peak gain at center is
// center / (sqrt(2) * bandwidth).
func Bandpass(sampleRate, center, bandwidth float64) biquad.Coefficients {
	k := newCookbook(center, sampleRate)
	alpha := k.sinW0 * math.Sqrt2 / 2 * bandwidth / center

	b0 := k.sinW0 / 2
	b1 := 0.0
	b2 := -k.sinW0 / 2
	a0 := 1 + alpha
	a1 := -2 * k.cosW0
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// normalizeBiquad divides every coefficient by a0. A zero or non-finite a0
// is not special-cased; the division result is returned as is.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
