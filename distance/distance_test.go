package distance_test

import (
	"testing"

	"github.com/katalvlaran/sentalign/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalTailArea checks the approximation against known values of Φ.
func TestNormalTailArea(t *testing.T) {
	tests := []struct {
		z, want float64
	}{
		{z: 0, want: 0.5},
		{z: 1, want: 0.8413447},
		{z: 1.96, want: 0.9750021},
		{z: 3, want: 0.9986501},
		{z: -1, want: 0.1586553},
		{z: -3, want: 0.0013499},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, distance.NormalTailArea(tc.z), 1e-6, "Φ(%v)", tc.z)
	}
}

// TestNormalTailArea_Symmetric verifies Φ(z) + Φ(-z) == 1 for a spread of scores.
func TestNormalTailArea_Symmetric(t *testing.T) {
	for _, z := range []float64{0.1, 0.5, 2, 4.5, 10} {
		assert.InDelta(t, 1.0, distance.NormalTailArea(z)+distance.NormalTailArea(-z), 1e-12)
	}
}

// TestMatch pins reference costs of the length model.
func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		len1, len2 int
		want       int
	}{
		{name: "both empty", len1: 0, len2: 0, want: 0},
		{name: "equal", len1: 5, len2: 5, want: 0},
		{name: "equal long", len1: 20, len2: 20, want: 0},
		{name: "close", len1: 10, len2: 12, want: 20},
		{name: "double", len1: 10, len2: 20, want: 113},
		{name: "quadruple", len1: 10, len2: 40, want: 384},
		{name: "one empty", len1: 10, len2: 0, want: 244},
		{name: "other empty", len1: 0, len2: 10, want: 244},
		{name: "short pair", len1: 1, len2: 2, want: 28},
		{name: "far apart", len1: 100, len2: 1, want: 1620},
		{name: "underflow", len1: 1000, len2: 1, want: distance.BigDistance},
		{name: "underflow reversed", len1: 1, len2: 1000, want: distance.BigDistance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, distance.Match(tc.len1, tc.len2))
		})
	}
}

// TestMatch_Symmetric holds because the ratio is 1 foreign char per source char.
func TestMatch_Symmetric(t *testing.T) {
	for a := 0; a < 30; a += 3 {
		for b := 0; b < 30; b += 5 {
			require.Equal(t, distance.Match(a, b), distance.Match(b, a), "Match(%d,%d)", a, b)
		}
	}
}

// TestMatch_Monotone verifies the cost never decreases as len2 moves away
// from a fixed len1.
func TestMatch_Monotone(t *testing.T) {
	for _, len1 := range []int{1, 5, 20, 80} {
		prev := distance.Match(len1, len1)
		for len2 := len1 + 1; len2 < 4*len1+50; len2++ {
			cur := distance.Match(len1, len2)
			require.GreaterOrEqual(t, cur, prev, "len1=%d len2=%d", len1, len2)
			prev = cur
		}
		require.Greater(t, prev, distance.Match(len1, len1), "len1=%d: far lengths must cost more", len1)
	}
}

// TestCost covers the six operation kinds and their penalties.
func TestCost(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{name: "substitution", x1: 5, y1: 5, want: 0},
		{name: "substitution uneven", x1: 10, y1: 12, want: 20},
		{name: "deletion", x1: 10, want: 244 + distance.Penalty01},
		{name: "insertion", y1: 10, want: 244 + distance.Penalty01},
		{name: "null insertion", want: distance.Penalty01},
		{name: "expansion", x1: 5, y1: 10, y2: 5, want: distance.Match(5, 15) + distance.Penalty21},
		{name: "contraction", x1: 5, y1: 10, x2: 5, want: distance.Penalty21},
		{name: "melding", x1: 5, y1: 5, x2: 5, y2: 5, want: distance.Penalty22},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, distance.Cost(tc.x1, tc.y1, tc.x2, tc.y2))
		})
	}
	require.Equal(t, 379, distance.Cost(5, 10, 0, 5))
}

// TestGaleChurchModel verifies the Model implementation and the Func adapter.
func TestGaleChurchModel(t *testing.T) {
	var m distance.Model = distance.GaleChurch{}
	require.Equal(t, distance.Cost(3, 4, 5, 0), m.Cost(3, 4, 5, 0))

	calls := 0
	var f distance.Model = distance.Func(func(x1, y1, x2, y2 int) int {
		calls++

		return x1 + y1 + x2 + y2
	})
	require.Equal(t, 10, f.Cost(1, 2, 3, 4))
	require.Equal(t, 1, calls)
}
