package distance

import "math"

// Model parameters. The penalties are -100·ln(P(kind)/P(1–1)) as measured by
// Gale and Church and must stay fixed for output compatibility.
const (
	// BigDistance is returned by Match when the tail probability underflows to zero.
	BigDistance = 2500

	// ForeignCharsPerEngChar is the expected ratio of target to source length.
	ForeignCharsPerEngChar = 1.0

	// VarPerEngChar is the variance of the length ratio per unit of source length.
	VarPerEngChar = 6.8

	// Penalty21 applies to 2–1 contractions and 1–2 expansions.
	Penalty21 = 230

	// Penalty22 applies to 2–2 meldings.
	Penalty22 = 440

	// Penalty01 applies to 1–0 deletions and 0–1 insertions.
	Penalty01 = 450
)

// Coefficients of Abramowitz & Stegun 26.2.17 (Gradsteyn & Rhyzik p.932).
const (
	tailP  = 0.2316419
	tailB0 = 0.3989423
	tailB1 = 0.319381530
	tailB2 = -0.356563782
	tailB3 = 1.781477937
	tailB4 = -1.821255978
	tailB5 = 1.330274429
)

// Model computes the cost of one alignment operation. Zero lengths mark
// elements that do not take part in the operation:
//
//	Cost(x1, y1, 0, 0)   substitution of x1 by y1
//	Cost(x1, 0, 0, 0)    deletion of x1
//	Cost(0, y1, 0, 0)    insertion of y1
//	Cost(x1, y1, x2, 0)  contraction of (x1, x2) to y1
//	Cost(x1, y1, 0, y2)  expansion of x1 to (y1, y2)
//	Cost(x1, y1, x2, y2) melding of (x1, x2) with (y1, y2)
type Model interface {
	Cost(x1, y1, x2, y2 int) int
}

// Func adapts an ordinary function to Model.
type Func func(x1, y1, x2, y2 int) int

// Cost calls f.
func (f Func) Cost(x1, y1, x2, y2 int) int { return f(x1, y1, x2, y2) }

// GaleChurch is the length-based Gaussian model. The zero value is ready to use.
type GaleChurch struct{}

var (
	_ Model = GaleChurch{}
	_ Model = Func(nil)
)

// Cost implements Model via the package-level Cost.
func (GaleChurch) Cost(x1, y1, x2, y2 int) int { return Cost(x1, y1, x2, y2) }

// NormalTailArea returns the area under the standard normal curve from -∞ to z,
// accurate to about 1e-7. The polynomial is evaluated on |z|; negative scores
// use the symmetry Φ(z) = 1 - Φ(-z).
func NormalTailArea(z float64) float64 {
	if z < 0 {
		return 1 - NormalTailArea(-z)
	}
	t := 1 / (1 + tailP*z)

	return 1 - tailB0*math.Exp(-z*z/2)*
		((((tailB5*t+tailB4)*t+tailB3)*t+tailB2)*t+tailB1)*t
}

// Match returns -100·ln of the probability that a segment of length len2 is a
// translation of a segment of length len1. Two empty segments match for free;
// a probability that underflows to zero costs BigDistance. The logarithm is
// truncated toward zero.
func Match(len1, len2 int) int {
	if len1 == 0 && len2 == 0 {
		return 0
	}
	mean := (float64(len1) + float64(len2)/ForeignCharsPerEngChar) / 2
	z := (ForeignCharsPerEngChar*float64(len1) - float64(len2)) / math.Sqrt(VarPerEngChar*mean)
	z = math.Abs(z)

	pd := 2 * (1 - NormalTailArea(z))
	if pd > 0 {
		return int(-100 * math.Log(pd))
	}

	return BigDistance
}

// Cost returns the cost of the operation implied by which arguments are zero.
// See Model for the argument layout.
func Cost(x1, y1, x2, y2 int) int {
	switch {
	case x2 == 0 && y2 == 0:
		if x1 == 0 || y1 == 0 {
			// insertion or deletion
			return Match(x1, y1) + Penalty01
		}

		return Match(x1, y1)
	case x2 == 0:
		// expansion
		return Match(x1, y1+y2) + Penalty21
	case y2 == 0:
		// contraction
		return Match(x1+x2, y1) + Penalty21
	default:
		// melding
		return Match(x1+x2, y1+y2) + Penalty22
	}
}
