package diagram

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"mtoohey.com/linedraw/internal/util"
)

// ScrubDomain is the horizontal drag distance, in pixels either side of the
// starting point, that spans a scrubber's whole range.
const ScrubDomain = 100

// Scrubber is a number that is changed by dragging it sideways. The drag
// offset in [-ScrubDomain, +ScrubDomain] maps linearly onto [Low, High];
// offsets outside that are clamped.
type Scrubber struct {
	Name      string
	Low, High float64
	// Precision is the number of decimals the value is displayed with.
	Precision int
	// Raw scrubbers store the exact mapped value. Otherwise the value is
	// rounded to Precision decimals before it is stored, so what is shown is
	// exactly what is used.
	Raw bool

	get func() float64
	set func(float64)

	subject float64
}

// Position maps a drag position onto the value range.
func (s *Scrubber) Position(x float64) float64 {
	x = util.Clamp(-ScrubDomain, x, ScrubDomain)
	return s.Low + (x+ScrubDomain)/(2*ScrubDomain)*(s.High-s.Low)
}

// Invert maps a value back to the drag position that would produce it.
func (s *Scrubber) Invert(v float64) float64 {
	if s.High == s.Low {
		return -ScrubDomain
	}

	x := -ScrubDomain + (v-s.Low)/(s.High-s.Low)*(2*ScrubDomain)
	return util.Clamp(-ScrubDomain, x, ScrubDomain)
}

// Value returns the current value of the bound parameter.
func (s *Scrubber) Value() float64 {
	return s.get()
}

// Text returns the current value formatted to Precision decimals.
func (s *Scrubber) Text() string {
	return Format(s.get(), s.Precision)
}

// Begin starts a drag at the position of the current value.
func (s *Scrubber) Begin() {
	s.subject = s.Invert(s.get())
}

// Move sets the value for a drag that has travelled dx pixels since Begin.
func (s *Scrubber) Move(dx float64) {
	v := s.Position(s.subject + dx)
	if !s.Raw {
		// the formatted text is always parseable
		v, _ = strconv.ParseFloat(Format(v, s.Precision), 64)
	}
	s.set(v)
}

// Format formats v with precision decimals. Like JavaScript's toFixed it
// rounds the exact binary value of v, so 4.35 (really 4.3499...) formats as
// "4.3", while exact halves round away from zero.
func Format(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	precision = util.Max(precision, 0)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, new(big.Rat).SetInt(scale))

	n, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if precision > 0 {
		if len(digits) <= precision {
			digits = strings.Repeat("0", precision-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-precision] + "." + digits[len(digits)-precision:]
	}

	// avoid "-0"
	if v < 0 && n.Sign() != 0 {
		digits = "-" + digits
	}
	return digits
}
