package synchro

import (
	"sync"
	"sync/atomic"
)

// TimeFunc extracts a signed 64-bit timestamp from a stream item.
// The unit is caller-defined; all time functions of one Synchronizer must
// use the same unit.
type TimeFunc func(item any) int64

// DroppedFunc consumes an item that was retired from its queue without ever
// becoming part of a synchronized set. The synchronizer hands over ownership.
type DroppedFunc func(item any)

// MatchFunc consumes one synchronized set: one item per stream, in stream
// order. Items are removed from their queues before the call; the callback
// owns them.
type MatchFunc func(set []any)

// streamState holds one stream's pending items plus the search bookkeeping
// for that stream. The queue is guarded by mu so that a producer appending
// to one stream and a search pass reading it from another goroutine stay
// within the memory model; searchIdx and optimalIdx are only touched while
// the search lock is held.
type streamState struct {
	mu    sync.Mutex
	queue []any

	name      string
	timeFunc  TimeFunc
	onDropped DroppedFunc

	searchIdx  int
	optimalIdx int

	accepted atomic.Int64
	rejected atomic.Int64
	dropped  atomic.Int64
}

func (s *streamState) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// timeAt returns the timestamp of the queued item at index i.
func (s *streamState) timeAt(i int) int64 {
	s.mu.Lock()
	item := s.queue[i]
	s.mu.Unlock()
	return s.timeFunc(item)
}

// push appends an item with timestamp t, rejecting non-monotonic arrivals.
func (s *streamState) push(item any, t int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.queue); n > 0 && t < s.timeFunc(s.queue[n-1]) {
		return false
	}
	s.queue = append(s.queue, item)
	return true
}

func (s *streamState) popFront() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return item
}

// pendingTimes snapshots the queued timestamps, front to back.
func (s *streamState) pendingTimes() []int64 {
	s.mu.Lock()
	items := make([]any, len(s.queue))
	copy(items, s.queue)
	s.mu.Unlock()

	times := make([]int64, len(items))
	for i, item := range items {
		times[i] = s.timeFunc(item)
	}
	return times
}
