package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

var (
	// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two >= 2.
	ErrInvalidFFTSize = errors.New("response: FFT size must be a power of two >= 2")
	// ErrInvalidSampleRate is returned for non-positive or non-finite sample rates.
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive and finite")
)

// Result holds a measured magnitude response for bins 0..FFTSize/2.
type Result struct {
	SampleRate float64
	FFTSize    int
	Magnitude  []float64 // linear |H| per bin
}

// Analyze feeds a unit impulse through a fresh section built from c, takes
// fftSize samples of the output and returns their magnitude spectrum.
func Analyze(c biquad.Coefficients, sampleRate float64, fftSize int) (Result, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	ir := biquad.NewSection(c).ImpulseResponse(fftSize)

	inData := make([]complex128, fftSize)
	for i, v := range ir {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("response: create FFT plan: %w", err)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, inData); err != nil {
		return Result{}, fmt.Errorf("response: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Result{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Magnitude:  mag,
	}, nil
}

// FreqHz returns the center frequency of bin k.
func (r Result) FreqHz(k int) float64 {
	return float64(k) * r.SampleRate / float64(r.FFTSize)
}

// Bin returns the bin nearest to freqHz, clamped to the valid range.
func (r Result) Bin(freqHz float64) int {
	k := int(math.Round(freqHz * float64(r.FFTSize) / r.SampleRate))
	return max(0, min(k, len(r.Magnitude)-1))
}

// GainAt returns the linear gain of the bin nearest to freqHz.
func (r Result) GainAt(freqHz float64) float64 {
	if len(r.Magnitude) == 0 {
		return 0
	}
	return r.Magnitude[r.Bin(freqHz)]
}

// GainDBAt returns the gain of the bin nearest to freqHz in dB.
func (r Result) GainDBAt(freqHz float64) float64 {
	return 20 * math.Log10(r.GainAt(freqHz))
}
