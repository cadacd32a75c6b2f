package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
)

// countingProcessFunc returns a process function that increments a counter
// and reports one node per item.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Label: item.Label, Index: item.Index, Nodes: 1}
	}
}

// collectResults drains the result channel and returns the summed nodes.
func collectResults(pool *Pool) uint64 {
	var nodes uint64
	for r := range pool.Results() {
		nodes += r.Nodes
	}
	return nodes
}

func TestPoolProcessesEveryItem(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 20
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Board: chess.NewBoard(), ToMove: chess.White, Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("nodes = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolResultsKeepLabels(t *testing.T) {
	labels := []string{"e2e4", "d2d4", "g1f3", "c2c4"}
	pool := NewPool(func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Label: item.Label, Index: item.Index}
	}, WithWorkers(3), WithBufferSize(len(labels)))
	pool.Start()

	for i, l := range labels {
		pool.Submit(WorkItem{Label: l, Index: i})
	}
	go pool.Close()

	seen := map[string]int{}
	for r := range pool.Results() {
		seen[r.Label] = r.Index
	}
	for i, l := range labels {
		if got, ok := seen[l]; !ok || got != i {
			t.Errorf("result for %s = (%d, %v); want (%d, true)", l, got, ok, i)
		}
	}
}

func TestPoolStop(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithBufferSize(4))
	if pool.Stopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()
	pool.Start()
	if pool.Submit(WorkItem{Index: 0}) {
		t.Error("Submit() after Stop = true; want false")
	}
	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed after Stop = %d; want 0", got)
	}
	if got := pool.Skipped(); got != 1 {
		t.Errorf("Skipped() = %d; want 1", got)
	}
}

func TestPoolStopDrainsQueuedItems(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	pool := NewPool(func(item WorkItem) ProcessResult {
		if item.Index == 0 {
			started <- struct{}{}
			<-release
		}
		return ProcessResult{Index: item.Index, Nodes: 1}
	}, WithBufferSize(8))
	pool.Start()

	for i := 0; i < 5; i++ {
		pool.Submit(WorkItem{Index: i})
	}
	<-started
	pool.Stop()
	close(release)
	go pool.Close()

	if got := collectResults(pool); got != 1 {
		t.Errorf("nodes = %d; want 1 (only the item already running)", got)
	}
	if got := pool.Skipped(); got != 4 {
		t.Errorf("Skipped() = %d; want 4", got)
	}
}

func TestPoolStopOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(countingProcessFunc(new(int32)))
	release := pool.StopOnCancel(ctx)
	defer release()

	cancel()
	deadline := time.Now().Add(time.Second)
	for !pool.Stopped() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !pool.Stopped() {
		t.Fatal("pool not stopped after cancel")
	}

	already := NewPool(countingProcessFunc(new(int32)))
	already.StopOnCancel(ctx)()
	if !already.Stopped() {
		t.Error("cancelled context should stop the pool at once")
	}
}

func TestPoolReleaseKeepsRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(countingProcessFunc(new(int32)))
	release := pool.StopOnCancel(ctx)
	release()
	release()
	cancel()

	time.Sleep(10 * time.Millisecond)
	if pool.Stopped() {
		t.Error("released watcher still stopped the pool")
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(countingProcessFunc(new(int32)), tt.opts...)
			if pool.workers != tt.wantWorkers {
				t.Errorf("workers = %d; want %d", pool.workers, tt.wantWorkers)
			}
			if cap(pool.items) != tt.wantBuffer {
				t.Errorf("buffer = %d; want %d", cap(pool.items), tt.wantBuffer)
			}
		})
	}
}
