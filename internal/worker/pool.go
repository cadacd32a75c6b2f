// Package worker provides a worker pool for parallel position searches.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore/internal/chess"
)

// WorkItem is one position to search. The pool's consumer owns Board; no
// two items may share one.
type WorkItem struct {
	Board  *chess.Board
	ToMove chess.Colour
	Depth  int
	Label  string // Move that led to Board, e.g. "e2e4"
	Index  int
}

// ProcessResult carries the node count searched below one item.
type ProcessResult struct {
	Label string
	Index int
	Nodes uint64
}

// ProcessFunc searches a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
// Once stopped, queued items are drained without being searched, so the
// result stream may be shorter than the submissions.
type Pool struct {
	workers  int
	buffer   int
	items    chan WorkItem
	results  chan ProcessResult
	process  ProcessFunc
	wg       sync.WaitGroup
	stopped  atomic.Bool
	skipped  atomic.Int64
	stopOnce sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the item and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless the
// options say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, buffer: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full. It reports false
// without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		p.skipped.Add(1)
		return false
	}
	p.items <- item
	return true
}

// Stop makes the workers skip every item not yet started. Searches already
// running finish.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Skipped returns how many items were dropped because of Stop.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// StopOnCancel stops the pool when ctx is cancelled, immediately if it
// already is. Call the returned func once the pool is drained.
func (p *Pool) StopOnCancel(ctx context.Context) (release func()) {
	if ctx.Err() != nil {
		p.Stop()
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()
	return func() { p.stopOnce.Do(func() { close(done) }) }
}

// Close ends submission, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished searches.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
