// Command sentalign aligns the sentences of two tokenized parallel files.
//
//	sentalign -D .PARA -d .EOS file1 file2
//
// writes file1.al and file2.al, where the k-th soft delimiter of one output
// closes the text aligned with the text closed by the k-th soft delimiter of
// the other. Use -s to write a single interleaved file1.al instead.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sentalign/internal/alignapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := alignapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
