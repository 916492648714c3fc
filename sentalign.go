package sentalign

import (
	"github.com/katalvlaran/sentalign/align"
	"github.com/katalvlaran/sentalign/group"
)

// Align aligns the segment lengths a with the segment lengths b and returns,
// for every alignment operation in forward order, the positions of a and of b
// it covers. groupsA[k] is aligned with groupsB[k]; either may be empty.
//
// Concatenating groupsA yields 0..len(a)-1 exactly once each, and likewise for
// groupsB.
//
// Errors:
//   - align.ErrNegativeLength: some length is below zero.
//   - align.ErrTableTooLarge: the input exceeds the cell budget (align.WithMaxCells).
func Align(a, b []int, opts ...align.Option) (groupsA, groupsB [][]int, err error) {
	ops, err := align.Align(a, b, opts...)
	if err != nil {
		return nil, nil, err
	}

	return group.Group(ops, len(a), len(b))
}
