package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/sentalign"
	"github.com/katalvlaran/sentalign/align"
)

var (
	// ErrAnchorMismatch indicates the two texts contain a different number of anchors.
	ErrAnchorMismatch = errors.New("text: different number of anchors in texts")

	// ErrBlockCount indicates the engine returned group lists of different lengths.
	ErrBlockCount = errors.New("text: returned block count does not match")
)

// Alignable is a region the engine can align.
type Alignable interface {
	Weight() int
}

// Pair holds the regions of one alignment step. Either side may be empty.
type Pair[T any] struct {
	Left, Right []T
}

// String renders p as "<left,right>", each side joined by single spaces.
func (p Pair[T]) String() string {
	return "<" + joinAny(p.Left) + "," + joinAny(p.Right) + ">"
}

func joinAny[T any](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}

	return strings.Join(parts, " ")
}

// AlignRegions aligns a with b by weight and returns one Pair per alignment
// step, in order.
func AlignRegions[T Alignable](a, b []T, opts ...align.Option) ([]Pair[T], error) {
	ga, gb, err := sentalign.Align(weights(a), weights(b), opts...)
	if err != nil {
		return nil, err
	}
	if len(ga) != len(gb) {
		return nil, fmt.Errorf("%d vs %d: %w", len(ga), len(gb), ErrBlockCount)
	}

	pairs := make([]Pair[T], len(ga))
	for k := range ga {
		pairs[k] = Pair[T]{Left: pick(a, ga[k]), Right: pick(b, gb[k])}
	}

	return pairs, nil
}

func weights[T Alignable](regions []T) []int {
	out := make([]int, len(regions))
	for i, r := range regions {
		out[i] = r.Weight()
	}

	return out
}

func pick[T any](regions []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = regions[j]
	}

	return out
}

// Weigher measures a piece of text.
type Weigher func(string) int

// WordCount counts white-space separated words.
func WordCount(s string) int { return len(strings.Fields(s)) }

// CharCount counts runes.
func CharCount(s string) int { return utf8.RuneCountInString(s) }

// Segment is a region of text weighted by its word count.
type Segment string

// Weight implements Alignable.
func (s Segment) Weight() int { return WordCount(string(s)) }

// String returns the text.
func (s Segment) String() string { return string(s) }

// CharSegment is a region of text weighted by its character count.
type CharSegment string

// Weight implements Alignable.
func (s CharSegment) Weight() int { return CharCount(string(s)) }

// String returns the text.
func (s CharSegment) String() string { return string(s) }

var (
	_ Alignable = Segment("")
	_ Alignable = CharSegment("")
)
