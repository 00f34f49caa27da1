package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// History is the Direct Form I delay line: the two most recent inputs and
// the two most recent outputs.
type History struct {
	X1, X2 float64
	Y1, Y2 float64
}

// Section is a single biquad filter with coefficients and history.
type Section struct {
	coeffs Coefficients
	hist   History
}

// NewSection returns a Section initialized with the given coefficients
// and zero history.
func NewSection(c Coefficients) *Section {
	return &Section{coeffs: c}
}

// ProcessSample filters one input sample and returns the output.
//
// Samples must be fed in stream order. Non-finite input propagates through
// the recurrence according to IEEE 754 arithmetic.
func (s *Section) ProcessSample(x float64) float64 {
	c := &s.coeffs
	h := &s.hist

	y := c.B0*x + c.B1*h.X1 + c.B2*h.X2 - c.A1*h.Y1 - c.A2*h.Y2

	h.X2 = h.X1
	h.X1 = x
	h.Y2 = h.Y1
	h.Y1 = y

	return y
}

// SetCoefficients replaces the coefficients. The history is left untouched,
// so the next ProcessSample call runs the new response against the old
// delay line.
func (s *Section) SetCoefficients(c Coefficients) {
	s.coeffs = c
}

// Coefficients returns the active coefficients.
func (s *Section) Coefficients() Coefficients {
	return s.coeffs
}

// History returns the current delay-line contents.
func (s *Section) History() History {
	return s.hist
}

// SetHistory restores a previously saved delay line.
func (s *Section) SetHistory(h History) {
	s.hist = h
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.hist = History{}
}
