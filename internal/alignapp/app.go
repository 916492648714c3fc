// Package alignapp implements the sentalign command: it reads two tokenized
// files, aligns them block by block and writes the aligned output.
package alignapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/sentalign/align"
	"github.com/katalvlaran/sentalign/internal/tokfile"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// OutputSuffix is appended to input file names to form output names.
const OutputSuffix = ".al"

// RunContext parses argv, runs the alignment and returns the process exit code.
// Logs go to stderr; stdout is unused.
func RunContext(ctx context.Context, argv []string, _ io.Writer, stderr io.Writer) int {
	fs := NewFlagSet("sentalign", stderr)
	opt, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "sentalign: %v\n", err)

		return ExitUsage
	}

	log := newLogger(stderr, opt.Verbose)
	start := time.Now()
	log.Info("start", "file_a", opt.FileA, "file_b", opt.FileB, "workers", opt.Workers, "single", opt.Single)

	blocks, err := Run(ctx, log, opt)
	if err != nil {
		log.Error("failed", "err", err, "dur_ms", time.Since(start).Milliseconds())

		return ExitError
	}
	log.Info("finish", "blocks", blocks, "dur_ms", time.Since(start).Milliseconds())

	return ExitOK
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).With("comp", "sentalign")
}

// Run aligns opt.FileA with opt.FileB and writes the outputs. It returns the
// number of aligned blocks.
func Run(ctx context.Context, log *slog.Logger, opt Options) (int, error) {
	d := tokfile.Delimiters{Hard: opt.Hard, Soft: opt.Soft}
	blocksA, err := tokfile.ReadFile(opt.FileA, d)
	if err != nil {
		return 0, err
	}
	blocksB, err := tokfile.ReadFile(opt.FileB, d)
	if err != nil {
		return 0, err
	}
	log.Debug("read", "blocks_a", len(blocksA), "blocks_b", len(blocksB))

	var alignOpts []align.Option
	if opt.MaxCells > 0 {
		alignOpts = append(alignOpts, align.WithMaxCells(opt.MaxCells))
	}
	aligned, err := alignBlocks(ctx, log, blocksA, blocksB, opt.Workers, alignOpts...)
	if err != nil {
		return 0, err
	}

	if opt.Single {
		err = writeFile(opt.FileA+OutputSuffix, func(w io.Writer) error {
			return tokfile.WriteSingle(w, aligned, d)
		})

		return len(aligned), err
	}

	fa, err := os.Create(opt.FileA + OutputSuffix)
	if err != nil {
		return 0, err
	}
	defer fa.Close()
	fb, err := os.Create(opt.FileB + OutputSuffix)
	if err != nil {
		return 0, err
	}
	defer fb.Close()
	if err = tokfile.WriteDual(fa, fb, aligned, d); err != nil {
		return 0, err
	}
	if err = fa.Close(); err != nil {
		return 0, err
	}
	if err = fb.Close(); err != nil {
		return 0, err
	}

	return len(aligned), nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
