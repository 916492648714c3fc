package align

import (
	"fmt"

	"github.com/katalvlaran/sentalign/distance"
	"github.com/katalvlaran/sentalign/matrix"
)

// Align: length-based sequence alignment
//
// Description:
//
//	Align computes the minimum-cost list of operations that aligns the segment
//	lengths x with the segment lengths y.
//
// Algorithm Outline:
//  1. Let nx = len(x), ny = len(y). Allocate (nx+1)x(ny+1) tables D (cost)
//     and P (predecessor).
//  2. For j = 0..ny, for i = 0..nx:
//     for every kind k in priority order with (dx,dy) = k.Delta():
//     if i >= dx and j >= dy:
//     cand = D[i-dx][j-dy] + model.Cost(lengths consumed by k)
//     keep the first strictly smaller candidate.
//     A cell with no candidate (only (0,0)) gets cost 0.
//  3. Backtrack from (nx,ny) following P, classifying each step by its
//     delta and charging it D[i][j] - D[P[i][j]].
//  4. Reverse the steps into forward order.
//
// Complexity:
//
//	Time   = O(nx·ny)
//	Memory = O(nx·ny)
//
// Errors:
//   - ErrNegativeLength: some length is below zero.
//   - ErrTableTooLarge: (nx+1)·(ny+1) exceeds the cell budget.
func Align(x, y []int, opts ...Option) ([]Operation, error) {
	res, err := Solve(x, y, opts...)
	if err != nil {
		return nil, err
	}

	return res.Ops, nil
}

// Solve runs Align and also returns the final distance and the cost table.
func Solve(x, y []int, opts ...Option) (*Result, error) {
	if err := validate("x", x); err != nil {
		return nil, err
	}
	if err := validate("y", y); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	nx, ny := len(x), len(y)
	if _, err := matrix.CheckCells(nx+1, ny+1, o.maxCells); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableTooLarge, err)
	}
	costs, err := matrix.NewDense[int](nx+1, ny+1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableTooLarge, err)
	}
	path, err := matrix.NewDense[Coord](nx+1, ny+1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTableTooLarge, err)
	}

	e := &engine{x: x, y: y, model: o.model, costs: costs, path: path}
	if err = e.fill(); err != nil {
		return nil, err
	}
	ops, err := e.backtrace()
	if err != nil {
		return nil, err
	}
	dist, err := costs.At(nx, ny)
	if err != nil {
		return nil, err
	}

	return &Result{Ops: ops, Distance: dist, Costs: costs}, nil
}

// validate rejects negative lengths, naming the side and index.
func validate(side string, lengths []int) error {
	for i, v := range lengths {
		if v < 0 {
			return fmt.Errorf("%s[%d]=%d: %w", side, i, v, ErrNegativeLength)
		}
	}

	return nil
}

// engine holds the per-call state. Nothing outlives Solve.
type engine struct {
	x, y  []int
	model distance.Model
	costs *matrix.Dense[int]
	path  *matrix.Dense[Coord]
}

// fill computes every cell column by column; each cell only looks back.
func (e *engine) fill() error {
	nx, ny := len(e.x), len(e.y)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			if err := e.relax(i, j); err != nil {
				return fmt.Errorf("align: cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}

// relax picks the cheapest transition into (i, j). Kinds are visited in
// priority order and only a strictly smaller candidate replaces the current
// best, so ties go to the earlier kind.
func (e *engine) relax(i, j int) error {
	var (
		best  int
		from  Coord
		found bool
	)
	for _, k := range kinds {
		dx, dy := k.Delta()
		if i < dx || j < dy {
			continue
		}
		prev, err := e.costs.At(i-dx, j-dy)
		if err != nil {
			return err
		}
		x1, y1, x2, y2 := e.lengths(k, i, j)
		d := prev + e.model.Cost(x1, y1, x2, y2)
		if !found || d < best {
			best, from, found = d, Coord{I: i - dx, J: j - dy}, true
		}
	}
	if !found {
		// Only the origin has no incoming transition. It keeps cost 0 and no
		// predecessor; see DESIGN.md on the zero-cost fallback.
		return e.costs.Set(i, j, 0)
	}
	if err := e.costs.Set(i, j, best); err != nil {
		return err
	}

	return e.path.Set(i, j, from)
}

// lengths returns the Model arguments for a k-step ending at (i, j).
func (e *engine) lengths(k Kind, i, j int) (x1, y1, x2, y2 int) {
	dx, dy := k.Delta()
	switch dx {
	case 1:
		x1 = e.x[i-1]
	case 2:
		x1, x2 = e.x[i-2], e.x[i-1]
	}
	switch dy {
	case 1:
		y1 = e.y[j-1]
	case 2:
		y1, y2 = e.y[j-2], e.y[j-1]
	}

	return x1, y1, x2, y2
}

// backtrace walks predecessors from (nx, ny) to (0, 0) and returns the
// operations in forward order.
func (e *engine) backtrace() ([]Operation, error) {
	i, j := len(e.x), len(e.y)
	ops := make([]Operation, 0, i+j)
	for i > 0 || j > 0 {
		from, err := e.path.At(i, j)
		if err != nil {
			return nil, err
		}
		k, ok := KindOf(i-from.I, j-from.J)
		if !ok {
			return nil, fmt.Errorf("(%d,%d)->(%d,%d): %w", i, j, from.I, from.J, ErrBrokenPath)
		}
		here, err := e.costs.At(i, j)
		if err != nil {
			return nil, err
		}
		there, err := e.costs.At(from.I, from.J)
		if err != nil {
			return nil, err
		}
		x1, y1, x2, y2 := e.lengths(k, i, j)
		ops = append(ops, Operation{Kind: k, X1: x1, Y1: y1, X2: x2, Y2: y2, Cost: here - there})
		i, j = from.I, from.J
	}

	// reverse in-place
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops, nil
}
