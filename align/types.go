package align

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sentalign/matrix"
)

var (
	// ErrNegativeLength indicates a segment length below zero.
	ErrNegativeLength = errors.New("align: segment lengths must be non-negative")

	// ErrTableTooLarge indicates the DP tables would exceed the cell budget.
	ErrTableTooLarge = errors.New("align: alignment table exceeds cell budget")

	// ErrBrokenPath indicates the predecessor table does not lead back to the
	// origin. It signals a bug in a custom Model or in the engine, never bad input.
	ErrBrokenPath = errors.New("align: backtrace left the table")
)

// Kind enumerates the six alignment operations.
type Kind int

const (
	// Substitution pairs one A-element with one B-element.
	Substitution Kind = iota
	// Deletion leaves one A-element unpaired.
	Deletion
	// Insertion leaves one B-element unpaired.
	Insertion
	// Contraction pairs two A-elements with one B-element.
	Contraction
	// Expansion pairs one A-element with two B-elements.
	Expansion
	// Melding pairs two A-elements with two B-elements.
	Melding
)

// kinds lists every Kind in tie-break priority order.
var kinds = [...]Kind{Substitution, Deletion, Insertion, Contraction, Expansion, Melding}

// Kinds returns every Kind in tie-break priority order.
func Kinds() []Kind {
	out := kinds

	return out[:]
}

// String returns a lower-case name for k.
func (k Kind) String() string {
	switch k {
	case Substitution:
		return "substitution"
	case Deletion:
		return "deletion"
	case Insertion:
		return "insertion"
	case Contraction:
		return "contraction"
	case Expansion:
		return "expansion"
	case Melding:
		return "melding"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Delta reports how many A-elements (dx) and B-elements (dy) k consumes.
// Unknown kinds consume nothing.
func (k Kind) Delta() (dx, dy int) {
	switch k {
	case Substitution:
		return 1, 1
	case Deletion:
		return 1, 0
	case Insertion:
		return 0, 1
	case Contraction:
		return 2, 1
	case Expansion:
		return 1, 2
	case Melding:
		return 2, 2
	default:
		return 0, 0
	}
}

// KindOf classifies a backtrace step by its coordinate delta.
// ok is false for deltas no operation produces.
func KindOf(dx, dy int) (k Kind, ok bool) {
	for _, kind := range kinds {
		if kx, ky := kind.Delta(); kx == dx && ky == dy {
			return kind, true
		}
	}

	return 0, false
}

// Coord addresses a cell of the DP tables: I elements of A and J elements of B
// have been consumed.
type Coord struct {
	I, J int
}

// Operation is one step of an alignment.
//
// X1, X2 are the lengths of the consumed A-elements and Y1, Y2 those of the
// consumed B-elements, in order, with 0 where the operation consumes fewer
// than two (see distance.Model). Kind, not the lengths, decides consumption:
// a substitution of two empty segments still consumes one element per side.
type Operation struct {
	Kind   Kind
	X1, Y1 int
	X2, Y2 int
	Cost   int
}

// String renders op as "kind(x1,x2|y1,y2)=cost".
func (op Operation) String() string {
	return fmt.Sprintf("%s(%d,%d|%d,%d)=%d", op.Kind, op.X1, op.X2, op.Y1, op.Y2, op.Cost)
}

// Result holds the outcome of Solve.
type Result struct {
	// Ops is the optimal operation list in forward order.
	Ops []Operation

	// Distance is the accumulated cost at (nx, ny); it equals TotalCost(Ops).
	Distance int

	// Costs is the filled (nx+1)×(ny+1) cost table.
	Costs *matrix.Dense[int]
}

// TotalCost sums the costs of ops.
func TotalCost(ops []Operation) int {
	total := 0
	for _, op := range ops {
		total += op.Cost
	}

	return total
}
