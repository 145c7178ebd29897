// Package coordinator runs a fixed pool of worker goroutines that drain a
// shared chunk-generation queue, the same worker-pool shape the adapted
// world package used to run generation tasks inline with column loading,
// pulled out into its own package now that generation is the whole of this
// module's job rather than one corner of a live server.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm-vev/adamant/server/world/chunk"
)

// Generator produces the block and biome contents of one column. It is the
// same shape gen.NoiseChunkGenerator implements, kept as an interface here
// so the coordinator doesn't import the gen package directly.
type Generator interface {
	GenerateChunk(pos chunk.Pos, col *chunk.ChunkColumn)
}

// task is one queued unit of work: generate col at pos, then close done.
type task struct {
	pos  chunk.Pos
	col  *chunk.ChunkColumn
	done chan struct{}
}

// Coordinator owns a bounded queue and a fixed set of workers that drain
// it, mirroring the adapted world package's generatorQueue/generatorWorker
// pair: a full queue falls back to an asynchronous enqueue rather than
// blocking the caller, and backpressure is logged, throttled to once a
// minute, rather than applying backoff.
type Coordinator struct {
	gen Generator
	log *slog.Logger

	queue chan task

	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	saturation      atomic.Uint64
	lastSaturation  atomic.Uint64
	workers         int
}

// New starts a Coordinator with the given number of workers draining a
// queue of the given size, dispatching generation work to gen. log
// receives panic and backpressure diagnostics; a nil log discards them.
func New(gen Generator, workers, queueSize int, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)

	c := &Coordinator{
		gen:     gen,
		log:     log,
		queue:   make(chan task, queueSize),
		group:   group,
		ctx:     gctx,
		cancel:  cancel,
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		group.Go(c.worker)
	}
	return c
}

// Generate runs col through the generator and blocks until it is filled.
// Safe for concurrent callers; generation itself still only ever touches
// one column from one worker goroutine at a time.
func (c *Coordinator) Generate(pos chunk.Pos, col *chunk.ChunkColumn) {
	<-c.GenerateAsync(pos, col)
}

// GenerateAsync schedules generation of col at pos and returns a channel
// that closes once generation completes (or the coordinator is closed
// before the task runs). It never blocks the caller: a full queue falls
// back to an asynchronous enqueue goroutine, exactly like the adapted
// world package's generateChunkAsync did for live chunk loading.
func (c *Coordinator) GenerateAsync(pos chunk.Pos, col *chunk.ChunkColumn) <-chan struct{} {
	t := task{pos: pos, col: col, done: make(chan struct{})}
	if c.ctx.Err() != nil {
		close(t.done)
		return t.done
	}

	select {
	case <-c.ctx.Done():
		close(t.done)
	case c.queue <- t:
	default:
		go c.enqueue(t)
		c.logBackpressure()
	}
	return t.done
}

func (c *Coordinator) enqueue(t task) {
	select {
	case <-c.ctx.Done():
		close(t.done)
	case c.queue <- t:
	}
}

func (c *Coordinator) worker() error {
	for {
		select {
		case t := <-c.queue:
			c.run(t)
		case <-c.ctx.Done():
			c.drain()
			return nil
		}
	}
}

func (c *Coordinator) run(t task) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("generate chunk: panic", "error", fmt.Sprint(r), "x", t.pos.X(), "z", t.pos.Z())
		}
		close(t.done)
	}()
	c.gen.GenerateChunk(t.pos, t.col)
}

// drain closes every task still sitting in the queue without running it,
// so a caller blocked on GenerateAsync's channel during shutdown never
// hangs waiting for a worker that has already stopped.
func (c *Coordinator) drain() {
	for {
		select {
		case t := <-c.queue:
			close(t.done)
		default:
			return
		}
	}
}

func (c *Coordinator) logBackpressure() {
	count := c.saturation.Add(1)
	now := uint64(time.Now().UnixNano())
	last := c.lastSaturation.Load()
	if last != 0 && time.Duration(now-last) < time.Minute {
		return
	}
	if !c.lastSaturation.CompareAndSwap(last, now) {
		return
	}
	c.log.Warn("generation queue saturated: chunk generation backlog detected",
		"queued_tasks", count, "queue_size", cap(c.queue), "workers", c.workers)
}

// Close stops accepting new work, lets running tasks finish, drains
// whatever is left in the queue, and waits for every worker to exit.
func (c *Coordinator) Close() error {
	c.cancel()
	return c.group.Wait()
}
