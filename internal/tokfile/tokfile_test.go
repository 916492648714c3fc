package tokfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/sentalign/internal/tokfile"
	"github.com/stretchr/testify/require"
)

var delims = tokfile.Delimiters{Hard: ".PARA", Soft: ".EOS"}

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

// TestRead_Blocks splits on both delimiters and measures sentences.
func TestRead_Blocks(t *testing.T) {
	in := lines("The", "quick", ".EOS", "", "Jumps", ".EOS", ".PARA", "Over", "the", "dog")
	blocks, err := tokfile.Read(strings.NewReader(in), delims)
	require.NoError(t, err)
	require.Equal(t, []tokfile.Block{
		{{"The", "quick"}, {"Jumps"}},
		{{"Over", "the", "dog"}},
	}, blocks)
	require.Equal(t, []int{8, 5}, blocks[0].Lengths())
	require.Equal(t, []int{10}, blocks[1].Lengths())
}

// TestRead_EdgeCases covers empty input, empty blocks and dropped empty sentences.
func TestRead_EdgeCases(t *testing.T) {
	blocks, err := tokfile.Read(strings.NewReader(""), delims)
	require.NoError(t, err)
	require.Empty(t, blocks)

	blocks, err = tokfile.Read(strings.NewReader(lines(".PARA", ".PARA")), delims)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	require.Empty(t, blocks[0])
	require.Empty(t, blocks[1])

	blocks, err = tokfile.Read(strings.NewReader(lines("a", ".EOS", ".EOS", "b", ".EOS", ".PARA")), delims)
	require.NoError(t, err)
	require.Equal(t, []tokfile.Block{{{"a"}, {"b"}}}, blocks)

	blocks, err = tokfile.Read(strings.NewReader(lines("  é  ", ".EOS")), delims)
	require.NoError(t, err)
	require.Equal(t, []int{1}, blocks[0].Lengths())
}

// TestRead_BadDelimiters rejects unusable markers.
func TestRead_BadDelimiters(t *testing.T) {
	_, err := tokfile.Read(strings.NewReader("a\n"), tokfile.Delimiters{Hard: "x", Soft: "x"})
	require.ErrorIs(t, err, tokfile.ErrDelimiters)

	_, err = tokfile.Read(strings.NewReader("a\n"), tokfile.Delimiters{Hard: ".PARA"})
	require.ErrorIs(t, err, tokfile.ErrDelimiters)
}

// TestReadFile reads from disk and reports missing files.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.tok")
	require.NoError(t, os.WriteFile(path, []byte(lines("a", ".EOS")), 0o600))

	blocks, err := tokfile.ReadFile(path, delims)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	_, err = tokfile.ReadFile(filepath.Join(t.TempDir(), "missing"), delims)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestPair requires equal block counts.
func TestPair(t *testing.T) {
	require.NoError(t, tokfile.Pair(make([]tokfile.Block, 2), make([]tokfile.Block, 2)))
	require.ErrorIs(t, tokfile.Pair(make([]tokfile.Block, 2), nil), tokfile.ErrAnchorMismatch)
}

func sample() []tokfile.Aligned {
	return []tokfile.Aligned{
		{
			A:       tokfile.Block{{"The", "quick"}, {"Jumps"}},
			B:       tokfile.Block{{"Den", "kvikke"}, {"hopper"}},
			GroupsA: [][]int{{0}, {1}},
			GroupsB: [][]int{{0}, {1}},
		},
		{
			A:       tokfile.Block{{"Over", "the", "dog"}},
			B:       tokfile.Block{{"elegant"}, {"over", "den", "hunden"}},
			GroupsA: [][]int{{0}},
			GroupsB: [][]int{{0, 1}},
		},
	}
}

// TestWriteDual keeps soft delimiters in step across both outputs.
func TestWriteDual(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, tokfile.WriteDual(&a, &b, sample(), delims))
	require.Equal(t, lines("The", "quick", ".EOS", "Jumps", ".EOS", ".PARA", "Over", "the", "dog", ".EOS"), a.String())
	require.Equal(t, lines("Den", "kvikke", ".EOS", "hopper", ".EOS", ".PARA", "elegant", "over", "den", "hunden", ".EOS"), b.String())
}

// TestWriteDual_EmptyGroup writes a bare soft delimiter for an unmatched side.
func TestWriteDual_EmptyGroup(t *testing.T) {
	var a, b bytes.Buffer
	blk := []tokfile.Aligned{{
		A:       tokfile.Block{{"x"}},
		GroupsA: [][]int{{0}},
		GroupsB: [][]int{{}},
	}}
	require.NoError(t, tokfile.WriteDual(&a, &b, blk, delims))
	require.Equal(t, lines("x", ".EOS"), a.String())
	require.Equal(t, lines(".EOS"), b.String())
}

// TestWriteSingle interleaves both sides under link headers.
func TestWriteSingle(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, tokfile.WriteSingle(&out, sample(), delims))
	require.Equal(t, lines(
		"*** Link: 1 - 1 ***", "The", "quick", "***", "Den", "kvikke",
		"*** Link: 1 - 1 ***", "Jumps", "***", "hopper",
		".PARA",
		"*** Link: 1 - 2 ***", "Over", "the", "dog", "***", "elegant", "over", "den", "hunden",
	), out.String())
}
