package filter

import (
	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
	"github.com/cwbudde/algo-biquad/dsp/filter/design"
)

// Mode selects which cookbook response a [Filter] derives its coefficients from.
type Mode int

const (
	// ModeLowpass passes content below the cutoff.
	ModeLowpass Mode = iota
	// ModeHighpass passes content above the cutoff.
	ModeHighpass
	// ModeBandpass passes a band around the cutoff, which acts as the
	// center frequency.
	ModeBandpass
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeLowpass:
		return "lowpass"
	case ModeHighpass:
		return "highpass"
	case ModeBandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name as returned by [Mode.String] back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "lowpass", "lp":
		return ModeLowpass, true
	case "highpass", "hp":
		return ModeHighpass, true
	case "bandpass", "bp":
		return ModeBandpass, true
	default:
		return ModeLowpass, false
	}
}

// Derive returns the coefficients for mode at the given parameters.
// bandwidth is only consulted for [ModeBandpass].
func Derive(mode Mode, sampleRate, cutoff, bandwidth float64) biquad.Coefficients {
	switch mode {
	case ModeHighpass:
		return design.Highpass(sampleRate, cutoff)
	case ModeBandpass:
		return design.Bandpass(sampleRate, cutoff, bandwidth)
	default:
		return design.Lowpass(sampleRate, cutoff)
	}
}
