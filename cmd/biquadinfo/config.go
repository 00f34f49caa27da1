package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biquad/dsp/filter"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

// Config describes the filter to inspect and how to tabulate it.
type Config struct {
	SampleRate float64 `yaml:"sample_rate"`
	Cutoff     float64 `yaml:"cutoff"`
	Mode       string  `yaml:"mode"`
	Bandwidth  float64 `yaml:"bandwidth"`
	FFTSize    int     `yaml:"fft_size"`
	Points     int     `yaml:"points"`
}

// DefaultConfig returns the settings used when neither a file nor flags
// override them.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Cutoff:     1000,
		Mode:       filter.ModeLowpass.String(),
		Bandwidth:  100,
		FFTSize:    4096,
		Points:     10,
	}
}

// LoadConfig reads a YAML file on top of the defaults. Unknown keys are
// rejected.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate rejects settings the cookbook equations are not meant for.
func (c Config) Validate() error {
	mode, ok := filter.ParseMode(c.Mode)
	if !ok {
		return fmt.Errorf("unknown mode %q (want lowpass, highpass or bandpass)", c.Mode)
	}

	if mode == filter.ModeBandpass {
		if err := design.ValidateBandwidth(c.SampleRate, c.Cutoff, c.Bandwidth); err != nil {
			return err
		}
	} else if err := design.Validate(c.SampleRate, c.Cutoff); err != nil {
		return err
	}

	if c.FFTSize < 2 || c.FFTSize&(c.FFTSize-1) != 0 {
		return fmt.Errorf("fft_size %d must be a power of two >= 2", c.FFTSize)
	}
	if c.Points < 1 {
		return fmt.Errorf("points %d must be at least 1", c.Points)
	}

	return nil
}

// NewFilter builds the configured filter. Construction always starts from
// lowpass and switches mode afterwards.
func (c Config) NewFilter() *filter.Filter {
	f := filter.NewLowpass(c.SampleRate, c.Cutoff)

	mode, _ := filter.ParseMode(c.Mode)
	switch mode {
	case filter.ModeHighpass:
		f.ChangeToHighpass()
	case filter.ModeBandpass:
		f.ChangeToBandpass(c.Bandwidth)
	}

	return f
}
