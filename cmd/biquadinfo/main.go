// Command biquadinfo prints the coefficients and magnitude response of a
// cookbook biquad.
//
// Usage:
//
//	biquadinfo [flags]
//
// Examples:
//
//	biquadinfo -rate 48000 -cutoff 2000
//	biquadinfo -mode highpass -cutoff 80 -points 16
//	biquadinfo -mode bandpass -cutoff 1000 -bandwidth 250
//	biquadinfo -config filter.yaml -cutoff 500
//
// Values from -config are applied first; explicitly set flags win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-biquad/dsp/filter"
	"github.com/cwbudde/algo-biquad/measure/response"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "biquadinfo: ", 0)

	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Print(err)
		return 2
	}

	if err := cfg.Validate(); err != nil {
		logger.Print(err)
		return 1
	}

	if err := printReport(stdout, cfg); err != nil {
		logger.Printf("failed to write report: %v", err)
		return 1
	}

	return 0
}

func parseConfig(args []string, stderr io.Writer) (Config, error) {
	def := DefaultConfig()

	fs := flag.NewFlagSet("biquadinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "YAML file with sample_rate, cutoff, mode, bandwidth, fft_size, points")
	rate := fs.Float64("rate", def.SampleRate, "sample rate in Hz")
	cutoff := fs.Float64("cutoff", def.Cutoff, "cutoff (or bandpass center) frequency in Hz")
	mode := fs.String("mode", def.Mode, "response: lowpass, highpass or bandpass")
	bandwidth := fs.Float64("bandwidth", def.Bandwidth, "bandpass bandwidth in Hz")
	fftSize := fs.Int("fft", def.FFTSize, "FFT size for the measured response (power of two)")
	points := fs.Int("points", def.Points, "number of log-spaced frequencies to tabulate")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: biquadinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints cookbook biquad coefficients and magnitude response.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return def, err
	}
	if fs.NArg() > 0 {
		return def, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			return def, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rate":
			cfg.SampleRate = *rate
		case "cutoff":
			cfg.Cutoff = *cutoff
		case "mode":
			cfg.Mode = *mode
		case "bandwidth":
			cfg.Bandwidth = *bandwidth
		case "fft":
			cfg.FFTSize = *fftSize
		case "points":
			cfg.Points = *points
		}
	})

	return cfg, nil
}

func printReport(w io.Writer, cfg Config) error {
	f := cfg.NewFilter()
	c := f.Coefficients()

	measured, err := response.Analyze(c, cfg.SampleRate, cfg.FFTSize)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s @ %g Hz, fs = %g Hz", f.Mode(), f.Cutoff(), f.SampleRate()); err != nil {
		return err
	}
	if f.Mode() == filter.ModeBandpass {
		if _, err := fmt.Fprintf(w, ", bandwidth = %g Hz", f.Bandwidth()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n\nb0 = %.12g\nb1 = %.12g\nb2 = %.12g\na1 = %.12g\na2 = %.12g\nstable: %v\n\n",
		c.B0, c.B1, c.B2, c.A1, c.A2, c.IsStable()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tExact [dB]\tMeasured [dB]\tPhase [deg]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---------\t----------\t-------------\t-----------\n"); err != nil {
		return err
	}

	for _, hz := range logSpaced(20, 0.95*cfg.SampleRate/2, cfg.Points) {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.1f\n",
			hz,
			c.MagnitudeDB(hz, cfg.SampleRate),
			measured.GainDBAt(hz),
			c.Phase(hz, cfg.SampleRate)*180/math.Pi,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// logSpaced returns n frequencies spaced evenly on a log axis from lo to hi.
// If lo is not below hi, the axis starts a decade under hi instead.
func logSpaced(lo, hi float64, n int) []float64 {
	if lo >= hi {
		lo = hi / 10
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}
