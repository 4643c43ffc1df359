// application/writequeue/queue.go
package writequeue

import (
	"log"
	"sync"
)

// Queue gives every entity key its own single-flight write lane. Rapid
// mutations against the same entity otherwise race as independent writes
// with no completion-order guarantee, letting a slow earlier write overwrite
// newer state.
type Queue struct {
	mu    sync.Mutex
	lanes map[string]*lane
}

type lane struct {
	mu      sync.Mutex // held for the duration of each write
	refs    int
	busy    bool
	pending func() error // latest-wins; superseded writes are dropped
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{lanes: make(map[string]*lane)}
}

func (q *Queue) acquire(key string) *lane {
	q.mu.Lock()
	defer q.mu.Unlock()

	l, ok := q.lanes[key]
	if !ok {
		l = &lane{}
		q.lanes[key] = l
	}
	l.refs++
	return l
}

func (q *Queue) release(key string, l *lane) {
	q.mu.Lock()
	defer q.mu.Unlock()

	l.refs--
	if l.refs == 0 && !l.busy && l.pending == nil {
		delete(q.lanes, key)
	}
}

// Do runs write with at most one write in flight per key. Callers block
// until their own write completes, so writes against one entity apply in
// submission order.
func (q *Queue) Do(key string, write func() error) error {
	l := q.acquire(key)
	defer q.release(key, l)

	l.mu.Lock()
	defer l.mu.Unlock()
	return write()
}

// Enqueue runs write asynchronously on the key's lane. If a write is already
// in flight, the new one is parked as pending; parking again replaces the
// parked write (latest wins). Errors are logged, not returned; callers on
// this path recover through their next mutation.
func (q *Queue) Enqueue(key string, write func() error) {
	q.mu.Lock()
	l, ok := q.lanes[key]
	if !ok {
		l = &lane{}
		q.lanes[key] = l
	}
	if l.busy {
		l.pending = write
		q.mu.Unlock()
		return
	}
	l.busy = true
	q.mu.Unlock()

	go q.run(key, l, write)
}

func (q *Queue) run(key string, l *lane, write func() error) {
	for {
		l.mu.Lock()
		err := write()
		l.mu.Unlock()
		if err != nil {
			log.Printf("[WriteQueue] write failed for %s: %v", key, err)
		}

		q.mu.Lock()
		if l.pending == nil {
			l.busy = false
			if l.refs == 0 {
				delete(q.lanes, key)
			}
			q.mu.Unlock()
			return
		}
		write = l.pending
		l.pending = nil
		q.mu.Unlock()
	}
}
