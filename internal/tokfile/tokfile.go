// Package tokfile reads and writes tokenized parallel corpora: one token per
// line, with a hard delimiter line closing an anchored block and a soft
// delimiter line closing a sentence inside a block.
package tokfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const maxLine = 1 << 20

var (
	// ErrAnchorMismatch indicates the two files hold a different number of blocks.
	ErrAnchorMismatch = errors.New("tokfile: different number of hard-delimited blocks")

	// ErrDelimiters indicates unusable delimiter settings.
	ErrDelimiters = errors.New("tokfile: hard and soft delimiters must be non-empty and distinct")
)

// Sentence is the tokens of one soft-delimited segment.
type Sentence []string

// Len returns the number of characters of the tokens, not counting separators.
func (s Sentence) Len() int {
	n := 0
	for _, tok := range s {
		n += utf8.RuneCountInString(tok)
	}

	return n
}

// Block is the sentences between two hard delimiters.
type Block []Sentence

// Lengths returns the length of every sentence of b.
func (b Block) Lengths() []int {
	out := make([]int, len(b))
	for i, s := range b {
		out[i] = s.Len()
	}

	return out
}

// Delimiters names the marker lines.
type Delimiters struct {
	Hard string
	Soft string
}

// Validate reports ErrDelimiters for empty or identical markers.
func (d Delimiters) Validate() error {
	if d.Hard == "" || d.Soft == "" || d.Hard == d.Soft {
		return fmt.Errorf("hard=%q soft=%q: %w", d.Hard, d.Soft, ErrDelimiters)
	}

	return nil
}

// Read parses a tokenized stream. Blank lines are ignored. A soft delimiter
// closes the current sentence and a hard delimiter closes the current block;
// sentences without tokens are dropped, blocks without sentences are kept so
// anchors stay in step. Trailing tokens after the last delimiter form a final
// sentence and block.
func Read(r io.Reader, d Delimiters) ([]Block, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var (
		blocks []Block
		block  Block
		sent   Sentence
		open   bool // block has content not yet closed by a hard delimiter
	)
	closeSentence := func() {
		if len(sent) > 0 {
			block = append(block, sent)
			sent = nil
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case d.Soft:
			closeSentence()
			open = true
		case d.Hard:
			closeSentence()
			blocks = append(blocks, block)
			block, open = nil, false
		default:
			sent = append(sent, line)
			open = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokfile: read: %w", err)
	}
	closeSentence()
	if open {
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, d Delimiters) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokfile: %w", err)
	}
	defer f.Close()

	blocks, err := Read(f, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return blocks, nil
}

// Pair checks that a and b can be aligned block by block.
func Pair(a, b []Block) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrAnchorMismatch)
	}

	return nil
}
