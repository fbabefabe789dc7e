package sample

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	mu      sync.Mutex
	records []Record
}

func (m *memSink) InsertBatch(ctx context.Context, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, records...)
	return nil
}

func (m *memSink) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func TestRunStopsAtTarget(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sink := &memSink{}
	opts := Options{Workers: 2, BatchSize: 2, SkipP2: true, Target: 6}

	err := Run(ctx, opts, sink)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sink.count(), 6)
}

func TestRunRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink := &memSink{}
	opts := Options{Workers: 2, BatchSize: 1000, SkipP2: true}

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, opts, sink)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestDefaultWorkersPositive(t *testing.T) {
	assert.Greater(t, DefaultWorkers(), 0)
}

func TestDefaultBatchSizePositive(t *testing.T) {
	assert.Greater(t, DefaultBatchSize(), 0)
}

// trackingSink records how many InsertBatch calls are in flight
// concurrently, to confirm Run funnels every write through one goroutine.
type trackingSink struct {
	inFlight    int32
	maxInFlight int32

	mu    sync.Mutex
	total int
}

func (t *trackingSink) InsertBatch(ctx context.Context, records []Record) error {
	n := atomic.AddInt32(&t.inFlight, 1)
	defer atomic.AddInt32(&t.inFlight, -1)
	for {
		cur := atomic.LoadInt32(&t.maxInFlight)
		if n <= cur {
			break
		}
		if atomic.CompareAndSwapInt32(&t.maxInFlight, cur, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)

	t.mu.Lock()
	t.total += len(records)
	t.mu.Unlock()
	return nil
}

func TestRunCallsSinkFromSingleWriterOnly(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sink := &trackingSink{}
	opts := Options{Workers: 4, BatchSize: 2, SkipP2: true, Target: 20}

	err := Run(ctx, opts, sink)
	require.NoError(t, err)
	assert.LessOrEqual(t, int(atomic.LoadInt32(&sink.maxInFlight)), 1)
	assert.GreaterOrEqual(t, sink.total, 20)
}
