package alignapp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/sentalign"
	"github.com/katalvlaran/sentalign/align"
	"github.com/katalvlaran/sentalign/internal/tokfile"
)

// alignBlocks aligns blocksA[i] with blocksB[i] for every i on up to workers
// goroutines. Results keep block order. It returns the first error, or the
// context error after cancellation.
func alignBlocks(
	ctx context.Context,
	log *slog.Logger,
	blocksA, blocksB []tokfile.Block,
	workers int,
	opts ...align.Option,
) ([]tokfile.Aligned, error) {
	if err := tokfile.Pair(blocksA, blocksB); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]tokfile.Aligned, len(blocksA))
	jobs := make(chan int, workers*2)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					a, b := blocksA[i], blocksB[i]
					ga, gb, err := sentalign.Align(a.Lengths(), b.Lengths(), opts...)
					if err != nil {
						fail(fmt.Errorf("block %d: %w", i, err))

						return
					}
					out[i] = tokfile.Aligned{A: a, B: b, GroupsA: ga, GroupsB: gb}
					log.Debug("block aligned", "block", i, "sentences_a", len(a), "sentences_b", len(b), "groups", len(ga))
				}
			}
		}()
	}

feed:
	for i := range blocksA {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
