package network

import "sync"

// Queue is an ordered, bounded buffer of decoded authority messages. Router
// callbacks push from necs goroutines; the frame loop drains once per frame.
// When full, the oldest message is dropped.
type Queue struct {
	mu      sync.Mutex
	items   []any
	limit   int
	dropped int
}

// NewQueue returns a queue holding at most limit messages. A limit of zero or
// less means unbounded.
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

// Push appends msg.
func (q *Queue) Push(msg any) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.limit > 0 && len(q.items) >= q.limit {
		q.items = q.items[1:]
		q.dropped++
	}
	q.items = append(q.items, msg)
}

// Drain returns every queued message in arrival order and empties the queue.
func (q *Queue) Drain() []any {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	return out
}

// Dropped returns how many messages were discarded because the queue was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
