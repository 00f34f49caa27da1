package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

func TestAnalyze_MatchesClosedForm(t *testing.T) {
	const (
		sr   = 44100.0
		size = 4096
	)

	for name, c := range map[string]biquad.Coefficients{
		"lowpass":  design.Lowpass(sr, 1000),
		"highpass": design.Highpass(sr, 1000),
		"bandpass": design.Bandpass(sr, 1000, 300),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := Analyze(c, sr, size)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if len(res.Magnitude) != size/2+1 {
				t.Fatalf("bins = %d, want %d", len(res.Magnitude), size/2+1)
			}
			for k := 0; k < len(res.Magnitude); k += 37 {
				want := math.Sqrt(c.MagnitudeSquared(res.FreqHz(k), sr))
				if !scalar.EqualWithinAbs(res.Magnitude[k], want, 1e-9) {
					t.Fatalf("bin %d (%.1f Hz): got %v, want %v", k, res.FreqHz(k), res.Magnitude[k], want)
				}
			}
		})
	}
}

func TestAnalyze_LowpassHighpassGains(t *testing.T) {
	const sr = 48000.0
	// 1500 Hz lands exactly on bin 128 of a 4096-point FFT at 48 kHz.
	const fc = 1500.0

	lp, err := Analyze(design.Lowpass(sr, fc), sr, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if g := lp.GainAt(0); !scalar.EqualWithinAbs(g, 1, 1e-9) {
		t.Errorf("lowpass DC gain = %v, want 1", g)
	}
	if db := lp.GainDBAt(fc); !scalar.EqualWithinAbs(db, -6.0206, 1e-3) {
		t.Errorf("lowpass gain at cutoff = %v dB, want -6.02", db)
	}

	hp, err := Analyze(design.Highpass(sr, fc), sr, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if g := hp.GainAt(0); !scalar.EqualWithinAbs(g, 0, 1e-9) {
		t.Errorf("highpass DC gain = %v, want 0", g)
	}
	if g := hp.GainAt(sr / 2); !scalar.EqualWithinAbs(g, 1, 1e-9) {
		t.Errorf("highpass Nyquist gain = %v, want 1", g)
	}
}

func TestAnalyze_AgreesWithGonumFFT(t *testing.T) {
	const (
		sr   = 48000.0
		size = 1024
	)
	c := design.Lowpass(sr, 3000)

	res, err := Analyze(c, sr, size)
	if err != nil {
		t.Fatal(err)
	}

	ir := biquad.NewSection(c).ImpulseResponse(size)
	coeffs := fourier.NewFFT(size).Coefficients(nil, ir)

	want := make([]float64, len(coeffs))
	for i, v := range coeffs {
		want[i] = cmplx.Abs(v)
	}
	if !floats.EqualApprox(res.Magnitude, want, 1e-10) {
		t.Fatal("algo-fft and gonum magnitudes disagree")
	}
}

func TestAnalyze_InvalidInput(t *testing.T) {
	c := design.Lowpass(48000, 1000)

	tests := []struct {
		name string
		sr   float64
		size int
		want error
	}{
		{"zero size", 48000, 0, ErrInvalidFFTSize},
		{"one", 48000, 1, ErrInvalidFFTSize},
		{"not power of two", 48000, 1000, ErrInvalidFFTSize},
		{"zero rate", 0, 1024, ErrInvalidSampleRate},
		{"nan rate", math.NaN(), 1024, ErrInvalidSampleRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Analyze(c, tt.sr, tt.size); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResult_Bin(t *testing.T) {
	r := Result{SampleRate: 48000, FFTSize: 1024, Magnitude: make([]float64, 513)}

	tests := []struct {
		freq float64
		want int
	}{
		{0, 0},
		{46.875, 1},
		{24000, 512},
		{30000, 512},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := r.Bin(tt.freq); got != tt.want {
			t.Errorf("Bin(%v) = %d, want %d", tt.freq, got, tt.want)
		}
	}
	if got := r.FreqHz(512); got != 24000 {
		t.Errorf("FreqHz(512) = %v, want 24000", got)
	}
}
