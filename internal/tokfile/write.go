package tokfile

import (
	"bufio"
	"fmt"
	"io"
)

// Aligned is one block of both files with its alignment.
// GroupsA[k] is aligned with GroupsB[k].
type Aligned struct {
	A, B             Block
	GroupsA, GroupsB [][]int
}

// WriteDual writes the A side to wa and the B side to wb. Every alignment
// group becomes its tokens followed by one soft delimiter line, so the k-th
// soft delimiter of both outputs closes corresponding text. Blocks are
// separated by hard delimiter lines.
func WriteDual(wa, wb io.Writer, blocks []Aligned, d Delimiters) error {
	ba, bb := bufio.NewWriter(wa), bufio.NewWriter(wb)
	for i, blk := range blocks {
		if i > 0 {
			writeLine(ba, d.Hard)
			writeLine(bb, d.Hard)
		}
		for k := range blk.GroupsA {
			writeGroup(ba, blk.A, blk.GroupsA[k])
			writeLine(ba, d.Soft)
		}
		for k := range blk.GroupsB {
			writeGroup(bb, blk.B, blk.GroupsB[k])
			writeLine(bb, d.Soft)
		}
	}
	if err := ba.Flush(); err != nil {
		return fmt.Errorf("tokfile: write: %w", err)
	}
	if err := bb.Flush(); err != nil {
		return fmt.Errorf("tokfile: write: %w", err)
	}

	return nil
}

// WriteSingle writes both sides to w. Each alignment group starts with a
// "*** Link: n - m ***" header giving the sentence counts, followed by the A
// tokens, a "***" line and the B tokens.
func WriteSingle(w io.Writer, blocks []Aligned, d Delimiters) error {
	bw := bufio.NewWriter(w)
	for i, blk := range blocks {
		if i > 0 {
			writeLine(bw, d.Hard)
		}
		for k := range blk.GroupsA {
			writeLine(bw, fmt.Sprintf("*** Link: %d - %d ***", len(blk.GroupsA[k]), len(blk.GroupsB[k])))
			writeGroup(bw, blk.A, blk.GroupsA[k])
			writeLine(bw, "***")
			writeGroup(bw, blk.B, blk.GroupsB[k])
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tokfile: write: %w", err)
	}

	return nil
}

// writeGroup writes the tokens of the sentences at idx, one per line.
// bufio.Writer keeps the first error and reports it on Flush.
func writeGroup(w *bufio.Writer, b Block, idx []int) {
	for _, i := range idx {
		for _, tok := range b[i] {
			writeLine(w, tok)
		}
	}
}

func writeLine(w *bufio.Writer, s string) {
	_, _ = w.WriteString(s)
	_ = w.WriteByte('\n')
}
