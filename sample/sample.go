// Package sample implements the worker-pool board sampler: it shuffles
// the tile pool, canonicalizes and ranks the result, solves it, and
// hands (rank, Result) batches to a single writer goroutine that alone
// calls the Sink — workers never touch storage directly.
package sample

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/canon"
	"github.com/niyagame/niya/solve"
	"github.com/niyagame/niya/tile"
)

// Record is one sampled-and-solved board, keyed by its canonical rank.
type Record struct {
	Rank   uint64
	Result solve.Result
}

// Sink persists a batch of Records. Implementations must tolerate
// duplicate ranks across batches (the same canonical board can be
// sampled more than once) by ignoring rather than erroring on conflict.
// Run calls InsertBatch from exactly one goroutine; a Sink never needs
// to guard against concurrent calls from the sampler itself.
type Sink interface {
	InsertBatch(ctx context.Context, records []Record) error
}

// Options configures a sampling run.
type Options struct {
	Workers   int  // 0 selects DefaultWorkers()
	BatchSize int  // 0 selects DefaultBatchSize()
	SkipP2    bool // skip Phase 2 P2 reply enumeration
	Target    int  // total boards to produce; 0 means unbounded (run until ctx is done)
}

// DefaultWorkers returns one worker per available CPU core.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// DefaultBatchSize returns 10 on most machines, but halves on systems
// reporting less than 512MiB of total memory, so a low-memory runner
// doesn't accumulate an oversized in-flight batch per worker.
func DefaultBatchSize() int {
	const lowMemThreshold = 512 * 1024 * 1024
	if memory.TotalMemory() > 0 && memory.TotalMemory() < lowMemThreshold {
		return 5
	}
	return 10
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return DefaultWorkers()
}

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize()
}

// Run drives the worker pool until ctx is canceled or Target boards have
// been produced (whichever comes first, when Target > 0). Each worker
// owns its own shuffle source, local batch buffer, and board-to-board
// state; workers share no mutable state except the atomic produced
// counter and the channel of completed batches. A single writer
// goroutine reads that channel and is the only caller of sink.InsertBatch,
// so the storage file sees one writer at a time the way a single parent
// process would.
func Run(ctx context.Context, opts Options, sink Sink) error {
	runID := uuid.New()
	workers := opts.workers()
	batchSize := opts.batchSize()

	log.Info().
		Str("run_id", runID.String()).
		Int("workers", workers).
		Int("batch_size", batchSize).
		Bool("skip_p2", opts.SkipP2).
		Int("target", opts.Target).
		Msg("sample-run-start")

	var produced int64
	pool := tile.Pool()

	batches := make(chan []Record, workers)
	writeCtx, cancelWrite := context.WithCancel(ctx)
	defer cancelWrite()

	var writerErr error
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		writerErr = runWriter(writeCtx, batches, sink, opts.Target)
		if writerErr != nil {
			// A persistent write failure should stop the whole run, not
			// just the writer.
			cancelWrite()
		}
	}()

	g, gctx := errgroup.WithContext(writeCtx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			return runWorker(gctx, w, pool, opts, batchSize, batches, &produced)
		})
	}

	workerErr := g.Wait()
	close(batches)
	<-writerDone

	log.Info().
		Str("run_id", runID.String()).
		Int64("produced", atomic.LoadInt64(&produced)).
		Msg("sample-run-end")

	if workerErr != nil {
		return workerErr
	}
	return writerErr
}

// runWriter is the sole goroutine that calls sink.InsertBatch. It drains
// batches until the channel is closed, or stops early if ctx is
// canceled (a persistent store error cancels writeCtx itself). After each
// flush it logs the running total and, when target > 0, an ETA derived
// from the elapsed time per board written so far.
func runWriter(ctx context.Context, batches <-chan []Record, sink Sink, target int) error {
	start := time.Now()
	written := 0
	for {
		select {
		case batch, ok := <-batches:
			if !ok {
				return nil
			}
			if err := sink.InsertBatch(ctx, batch); err != nil {
				return err
			}
			written += len(batch)
			ev := log.Info().Int("flushed", len(batch)).Int("written", written)
			if target > 0 && written < target {
				perBoard := time.Since(start) / time.Duration(written)
				ev = ev.Dur("eta", perBoard*time.Duration(target-written))
			}
			ev.Msg("batch-flushed")
		case <-ctx.Done():
			return nil
		}
	}
}

func runWorker(ctx context.Context, id int, pool [tile.PoolSize]tile.Tile, opts Options, batchSize int, batches chan<- []Record, produced *int64) error {
	tiles := append([]tile.Tile(nil), pool[:]...)
	batch := make([]Record, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		select {
		case batches <- batch:
			log.Debug().Int("worker", id).Int("queued", len(batch)).Msg("batch-queued")
		case <-ctx.Done():
		}
		batch = make([]Record, 0, batchSize)
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return nil
		default:
		}

		if opts.Target > 0 && atomic.LoadInt64(produced) >= int64(opts.Target) {
			flush()
			return nil
		}

		frand.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
		b := board.FromSlice(tiles)
		c := canon.CanonicalizeFast(b)
		rank := canon.Rank(c)
		result := solve.Solve(c, opts.SkipP2)

		batch = append(batch, Record{Rank: rank, Result: result})
		atomic.AddInt64(produced, 1)

		if len(batch) >= batchSize {
			flush()
		}
	}
}
