package design

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams reports a sample rate or frequency outside the range the
// cookbook equations are meant for.
var ErrInvalidParams = errors.New("design: invalid parameters")

// Validate checks that sampleRate is positive and finite and that freq lies
// strictly between 0 and the Nyquist frequency. The designers never call it.
func Validate(sampleRate, freq float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v must be positive and finite", ErrInvalidParams, sampleRate)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("%w: frequency %v Hz must be in (0, %v)", ErrInvalidParams, freq, nyquist)
	}

	return nil
}

// ValidateBandwidth checks a band-pass bandwidth in addition to the center
// frequency.
func ValidateBandwidth(sampleRate, center, bandwidth float64) error {
	if err := Validate(sampleRate, center); err != nil {
		return err
	}

	if bandwidth <= 0 || math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) {
		return fmt.Errorf("%w: bandwidth %v Hz must be positive and finite", ErrInvalidParams, bandwidth)
	}

	return nil
}
