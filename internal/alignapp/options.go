package alignapp

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
)

// Defaults for the delimiter lines.
const (
	DefaultHard = ".PARA"
	DefaultSoft = ".EOS"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	FileA, FileB string
	Hard, Soft   string

	// Output
	Single bool // write only FileA.al, both sides interleaved

	// Performance
	Workers  int
	MaxCells int

	Verbose bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: length-based sentence aligner

Aligns two tokenized files (one token per line). Soft delimiter lines end
sentences, hard delimiter lines end blocks that are aligned independently.
Writes FILE1.al and FILE2.al, or only FILE1.al with -s.

Usage of %s:
  %s [flags] FILE1 FILE2

`, name, name, name)
		fs.PrintDefaults()
	}

	return fs
}

// ParseArgs registers and parses all flags and returns the validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Hard, "D", DefaultHard, "hard delimiter: blocks are never merged across it")
	fs.StringVar(&opt.Soft, "d", DefaultSoft, "soft delimiter: ends a sentence")
	fs.BoolVar(&opt.Single, "s", false, "write a single interleaved FILE1.al")
	fs.IntVar(&opt.Workers, "j", 0, "blocks aligned in parallel (0 = all CPUs)")
	fs.IntVar(&opt.MaxCells, "max-cells", 0, "per-block DP cell budget (0 = library default)")
	fs.BoolVar(&opt.Verbose, "v", false, "debug logging")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if fs.NArg() != 2 {
		return opt, fmt.Errorf("expected FILE1 FILE2, got %d argument(s)", fs.NArg())
	}
	opt.FileA, opt.FileB = fs.Arg(0), fs.Arg(1)
	if opt.Workers == 0 {
		opt.Workers = runtime.NumCPU()
	}

	return opt, opt.Validate()
}

// Validate checks option consistency.
func (o Options) Validate() error {
	switch {
	case o.Hard == "" || o.Soft == "":
		return errors.New("-D and -d must be non-empty")
	case o.Hard == o.Soft:
		return errors.New("-D and -d must differ")
	case o.Workers < 1:
		return errors.New("-j must be ≥ 0")
	case o.MaxCells < 0:
		return errors.New("-max-cells must be ≥ 0")
	case o.FileA == o.FileB:
		return errors.New("FILE1 and FILE2 must differ")
	}

	return nil
}
