package group_test

import (
	"testing"

	"github.com/katalvlaran/sentalign/align"
	"github.com/katalvlaran/sentalign/group"
	"github.com/stretchr/testify/require"
)

func op(k align.Kind) align.Operation { return align.Operation{Kind: k} }

// TestGroup_AllKinds lays out one operation of every kind.
func TestGroup_AllKinds(t *testing.T) {
	ops := []align.Operation{
		op(align.Substitution),
		op(align.Deletion),
		op(align.Insertion),
		op(align.Contraction),
		op(align.Expansion),
		op(align.Melding),
	}
	ga, gb, err := group.Group(ops, 7, 7)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}, {}, {2, 3}, {4}, {5, 6}}, ga)
	require.Equal(t, [][]int{{0}, {}, {1}, {2}, {3, 4}, {5, 6}}, gb)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, group.Flatten(ga))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, group.Flatten(gb))
}

// TestGroup_EmptyGroupsAreNonNil keeps the two sides the same length with
// explicit empty groups.
func TestGroup_EmptyGroupsAreNonNil(t *testing.T) {
	ga, gb, err := group.Group([]align.Operation{op(align.Deletion)}, 1, 0)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, ga)
	require.Equal(t, [][]int{{}}, gb)
	require.NotNil(t, gb[0])
}

// TestGroup_Empty returns empty results for no operations.
func TestGroup_Empty(t *testing.T) {
	ga, gb, err := group.Group(nil, 0, 0)
	require.NoError(t, err)
	require.Empty(t, ga)
	require.Empty(t, gb)
	require.Empty(t, group.Flatten(ga))
}

// TestGroup_KindDecidesConsumption: zero lengths do not turn a substitution
// into an insertion or deletion.
func TestGroup_KindDecidesConsumption(t *testing.T) {
	ops := []align.Operation{{Kind: align.Substitution, X1: 3, Y1: 0, Cost: 555}}
	ga, gb, err := group.Group(ops, 1, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, ga)
	require.Equal(t, [][]int{{0}}, gb)
}

// TestGroup_Mismatch reports operations that under- or over-consume.
func TestGroup_Mismatch(t *testing.T) {
	_, _, err := group.Group([]align.Operation{op(align.Substitution)}, 2, 1)
	require.ErrorIs(t, err, group.ErrCursorMismatch)

	_, _, err = group.Group([]align.Operation{op(align.Melding)}, 1, 2)
	require.ErrorIs(t, err, group.ErrCursorMismatch)

	_, _, err = group.Group([]align.Operation{op(align.Kind(42))}, 1, 1)
	require.ErrorIs(t, err, group.ErrUnknownKind)
}

// TestGroup_FromEngine runs the engine output through the grouper.
func TestGroup_FromEngine(t *testing.T) {
	x := []int{3, 3, 3, 3}
	y := []int{3, 6, 3}
	ops, err := align.Align(x, y)
	require.NoError(t, err)

	ga, gb, err := group.Group(ops, len(x), len(y))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1, 2}, {3}}, ga)
	require.Equal(t, [][]int{{0}, {1}, {2}}, gb)
}
