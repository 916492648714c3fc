package text

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/sentalign/align"
)

var (
	anchorRE   = regexp.MustCompile(`\s*\|\|\s*`)
	boundaryRE = regexp.MustCompile(`\s*\|\s*`)
)

// weighed is a region with a precomputed weight.
type weighed struct {
	text   string
	weight int
}

func (w weighed) Weight() int { return w.weight }

// AlignText aligns two delimited texts, weighting regions by word count.
// See AlignTextWith.
func AlignText(a, b string, opts ...align.Option) ([][2]string, error) {
	return AlignTextWith(a, b, WordCount, opts...)
}

// AlignTextWith splits a and b at anchors ("||"), aligns the regions between
// each pair of corresponding anchors independently, and returns the aligned
// pairs in order. Regions aligned together are joined with single spaces; a
// side with no region yields "".
//
// Errors:
//   - ErrAnchorMismatch when a and b have a different number of anchored blocks.
func AlignTextWith(a, b string, weigh Weigher, opts ...align.Option) ([][2]string, error) {
	blocksA := split(anchorRE, a)
	blocksB := split(anchorRE, b)
	if len(blocksA) != len(blocksB) {
		return nil, fmt.Errorf("%d vs %d blocks: %w", len(blocksA), len(blocksB), ErrAnchorMismatch)
	}

	var out [][2]string
	for i := range blocksA {
		pairs, err := AlignRegions(regions(blocksA[i], weigh), regions(blocksB[i], weigh), opts...)
		if err != nil {
			return nil, fmt.Errorf("text: block %d: %w", i, err)
		}
		for _, p := range pairs {
			out = append(out, [2]string{joinTexts(p.Left), joinTexts(p.Right)})
		}
	}

	return out, nil
}

func regions(block string, weigh Weigher) []weighed {
	parts := split(boundaryRE, block)
	out := make([]weighed, len(parts))
	for i, p := range parts {
		out[i] = weighed{text: p, weight: weigh(p)}
	}

	return out
}

func joinTexts(ws []weighed) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.text
	}

	return strings.Join(parts, " ")
}

// split cuts s at re and drops trailing empty fields, so "" has no fields.
func split(re *regexp.Regexp, s string) []string {
	parts := re.Split(s, -1)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}
