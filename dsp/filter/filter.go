package filter

import "github.com/cwbudde/algo-biquad/dsp/filter/biquad"

// Filter is a mode-switchable biquad.
//
// Invariant: after any exported method returns, the section coefficients
// equal Derive(Mode(), SampleRate(), Cutoff(), Bandwidth()).
type Filter struct {
	section    biquad.Section
	sampleRate float64
	cutoff     float64
	bandwidth  float64
	mode       Mode
}

// NewLowpass returns a lowpass Filter with zero history.
// Parameters are not validated; see design.Validate.
func NewLowpass(sampleRate, cutoff float64) *Filter {
	f := &Filter{
		sampleRate: sampleRate,
		cutoff:     cutoff,
		mode:       ModeLowpass,
	}
	f.section = *biquad.NewSection(f.derive())
	return f
}

// ProcessSample filters one 64-bit sample.
func (f *Filter) ProcessSample(x float64) float64 {
	return f.section.ProcessSample(x)
}

// Process filters one 32-bit sample. The computation runs in 64-bit and the
// result is narrowed on return.
func (f *Filter) Process(x float32) float32 {
	return float32(f.section.ProcessSample(float64(x)))
}

// SetCutoff re-derives the coefficients for the current mode at cutoff and
// stores cutoff. The history is kept.
func (f *Filter) SetCutoff(cutoff float64) {
	f.cutoff = cutoff
	f.section.SetCoefficients(f.derive())
}

// ChangeToLowpass switches to lowpass. It is a no-op in lowpass mode.
func (f *Filter) ChangeToLowpass() {
	f.changeMode(ModeLowpass)
}

// ChangeToHighpass switches to highpass. It is a no-op in highpass mode.
func (f *Filter) ChangeToHighpass() {
	f.changeMode(ModeHighpass)
}

// ChangeToBandpass switches to bandpass around the current cutoff with the
// given bandwidth (Hz). It always re-derives, since the bandwidth may differ
// from the stored one.
func (f *Filter) ChangeToBandpass(bandwidth float64) {
	f.mode = ModeBandpass
	f.bandwidth = bandwidth
	f.SetCutoff(f.cutoff)
}

func (f *Filter) changeMode(m Mode) {
	if f.mode == m {
		return
	}
	f.mode = m
	f.SetCutoff(f.cutoff)
}

func (f *Filter) derive() biquad.Coefficients {
	return Derive(f.mode, f.sampleRate, f.cutoff, f.bandwidth)
}

// Mode returns the active response mode.
func (f *Filter) Mode() Mode { return f.mode }

// SampleRate returns the sample rate fixed at construction.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Cutoff returns the current cutoff (or center) frequency in Hz.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// Bandwidth returns the bandpass bandwidth in Hz. It is zero until
// ChangeToBandpass is called and is kept across later mode changes.
func (f *Filter) Bandwidth() float64 { return f.bandwidth }

// Coefficients returns the active coefficients.
func (f *Filter) Coefficients() biquad.Coefficients { return f.section.Coefficients() }

// History returns the current filter history.
func (f *Filter) History() biquad.History { return f.section.History() }

// Reset clears the filter history. Mode, cutoff and coefficients are kept.
func (f *Filter) Reset() { f.section.Reset() }
