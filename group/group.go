// Package group turns an operation list into two parallel sequences of
// index groups, one group per operation and side.
package group

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sentalign/align"
)

var (
	// ErrCursorMismatch indicates the operations do not consume exactly the
	// declared number of elements on some side.
	ErrCursorMismatch = errors.New("group: operations do not cover the input")

	// ErrUnknownKind indicates an operation whose kind consumes nothing.
	ErrUnknownKind = errors.New("group: unknown operation kind")
)

// Group walks ops in order and assigns consecutive positions of A (0..nx-1)
// and B (0..ny-1) to each operation according to its kind. An operation that
// consumes nothing on one side gets an empty, non-nil group there.
//
// len(groupsA) == len(groupsB) == len(ops); groupsA[k] is aligned with groupsB[k].
//
// Complexity: O(len(ops) + nx + ny).
func Group(ops []align.Operation, nx, ny int) (groupsA, groupsB [][]int, err error) {
	groupsA = make([][]int, 0, len(ops))
	groupsB = make([][]int, 0, len(ops))
	ca, cb := 0, 0
	for i, op := range ops {
		dx, dy := op.Kind.Delta()
		if dx == 0 && dy == 0 {
			return nil, nil, fmt.Errorf("ops[%d] %v: %w", i, op.Kind, ErrUnknownKind)
		}
		if ca+dx > nx || cb+dy > ny {
			return nil, nil, fmt.Errorf("ops[%d] %v at (%d,%d) overruns (%d,%d): %w",
				i, op.Kind, ca, cb, nx, ny, ErrCursorMismatch)
		}
		groupsA = append(groupsA, span(ca, dx))
		groupsB = append(groupsB, span(cb, dy))
		ca += dx
		cb += dy
	}
	if ca != nx || cb != ny {
		return nil, nil, fmt.Errorf("consumed (%d,%d), want (%d,%d): %w", ca, cb, nx, ny, ErrCursorMismatch)
	}

	return groupsA, groupsB, nil
}

// span returns [from, from+n).
func span(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}

	return out
}

// Flatten concatenates groups in order.
func Flatten(groups [][]int) []int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]int, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}
