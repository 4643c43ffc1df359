// application/writequeue/queue_test.go
package writequeue

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSerializesWritesPerKey(t *testing.T) {
	q := New()

	var inFlight int32
	var maxInFlight int32
	var order []int
	var orderMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			err := q.Do("list:abc", func() error {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					max := atomic.LoadInt32(&maxInFlight)
					if n <= max || atomic.CompareAndSwapInt32(&maxInFlight, max, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				orderMu.Lock()
				order = append(order, i)
				orderMu.Unlock()
				atomic.AddInt32(&inFlight, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight), "writes on one key must not overlap")
	assert.Len(t, order, 10)
}

func TestDoIndependentKeysDoNotBlock(t *testing.T) {
	q := New()

	blocker := make(chan struct{})
	done := make(chan struct{})

	go func() {
		q.Do("list:a", func() error {
			<-blocker
			return nil
		})
	}()

	// Give the first write time to take its lane.
	time.Sleep(10 * time.Millisecond)

	go func() {
		q.Do("list:b", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("write on an independent key was blocked")
	}
	close(blocker)
}

func TestDoReturnsWriteError(t *testing.T) {
	q := New()

	want := errors.New("column does not exist")
	err := q.Do("note:x", func() error { return want })
	assert.Equal(t, want, err)
}

func TestEnqueueCoalescesToLatest(t *testing.T) {
	q := New()

	started := make(chan struct{})
	release := make(chan struct{})
	var ran []int
	var mu sync.Mutex

	q.Enqueue("note:1", func() error {
		close(started)
		<-release
		mu.Lock()
		ran = append(ran, 0)
		mu.Unlock()
		return nil
	})

	<-started

	// All of these park behind the in-flight write; only the last survives.
	for i := 1; i <= 3; i++ {
		i := i
		q.Enqueue("note:1", func() error {
			mu.Lock()
			ran = append(ran, i)
			mu.Unlock()
			return nil
		})
	}

	close(release)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(ran) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 3}, ran, "superseded parked writes must be dropped")
}

func TestEnqueueSwallowsErrors(t *testing.T) {
	q := New()

	done := make(chan struct{})
	q.Enqueue("note:err", func() error {
		defer close(done)
		return errors.New("write failed")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueued write never ran")
	}

	// The lane must be reusable after a failure.
	err := q.Do("note:err", func() error { return nil })
	assert.NoError(t, err)
}

func TestLanesAreReclaimed(t *testing.T) {
	q := New()

	for i := 0; i < 5; i++ {
		q.Do("tag:1", func() error { return nil })
	}

	require.Eventually(t, func() bool {
		q.mu.Lock()
		defer q.mu.Unlock()
		return len(q.lanes) == 0
	}, time.Second, 5*time.Millisecond, "idle lanes should be deleted")
}
