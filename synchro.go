// Package synchro provides an approximate-time synchronizer for multiple
// independently-arriving, monotonically-timestamped message streams.
//
// A Synchronizer owns one FIFO queue per stream. Producers add items with
// Add or AddAndSearch; whenever every stream has data straddling the current
// pivot (the furthest-ahead front element), the search engine picks the
// combination of near-front elements with the smallest time spread and
// delivers it as one synchronized set to the match callback. Items skipped
// over by a match are retired through per-stream dropped callbacks, so no
// accepted item is ever lost silently.
//
// Basic usage:
//
//	sync := synchro.New(2).
//		TimeFunc(0, func(item any) int64 { return item.(Reading).Stamp }).
//		TimeFunc(1, func(item any) int64 { return item.(Fix).Stamp }).
//		OnMatch(func(set []any) {
//			fuse(set[0].(Reading), set[1].(Fix))
//		})
//
//	// one producer goroutine per stream
//	sync.AddAndSearch(0, reading)
//	sync.AddAndSearch(1, fix)
//
// The search runs synchronously on the calling goroutine; the synchronizer
// spawns no goroutines of its own.
package synchro

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Synchronizer groups items from N time-ordered streams into synchronized
// sets that minimize the time spread between chosen elements, enforcing an
// optional minimum gap between consecutive sets.
type Synchronizer struct {
	streams []streamState
	onMatch MatchFunc
	logger  *zap.Logger

	// searchMu serializes search passes; producers acquire it with TryLock
	// and skip the search entirely when another goroutine already holds it.
	searchMu sync.Mutex

	minGap int64
	nextT  atomic.Int64

	matches    atomic.Int64
	lastSpread atomic.Int64
}

// New creates a synchronizer over n streams.
// Streams are identified by their index k in [0, n). Every stream needs a
// time function registered via TimeFunc before its first Add; match and
// dropped callbacks default to no-ops.
//
// When to use:
//   - Fusing sensor streams (IMU + GPS + lidar) into aligned tuples
//   - Joining event feeds that share a clock but arrive independently
//   - Pairing request/response legs recorded on separate channels
//   - Any approximate-time join where exact timestamp equality is too strict
//
// Example:
//
//	// Two streams, sets at least 100 time units apart
//	sync := synchro.New(2).
//		WithMinGap(100).
//		WithStreamNames("imu", "gps").
//		TimeFunc(0, imuTime).
//		TimeFunc(1, gpsTime).
//		OnMatch(handleSet).
//		OnDropped(1, func(item any) {
//			log.Printf("unmatched gps fix: %v", item)
//		})
//
// Parameters:
//   - n: Number of streams (must be >= 1)
//
// Returns a new Synchronizer with fluent configuration.
func New(n int) *Synchronizer {
	if n < 1 {
		panic("synchro: stream count must be at least 1")
	}
	sz := &Synchronizer{
		streams: make([]streamState, n),
		onMatch: func([]any) {},
		logger:  zap.NewNop(),
	}
	sz.nextT.Store(math.MinInt64)
	for k := range sz.streams {
		sz.streams[k].name = fmt.Sprintf("stream-%d", k)
	}
	return sz
}

// WithMinGap sets the minimum time distance between the earliest elements of
// two consecutive synchronized sets, in the unit of the time functions.
// Zero (the default) enforces no gap. Must be set before the first search.
func (sz *Synchronizer) WithMinGap(gap int64) *Synchronizer {
	sz.minGap = gap
	return sz
}

// WithStreamNames assigns human-readable stream names used in the debug
// dump, log fields and statistics. Defaults to "stream-k".
func (sz *Synchronizer) WithStreamNames(names ...string) *Synchronizer {
	if len(names) != len(sz.streams) {
		panic(fmt.Sprintf("synchro: got %d stream names for %d streams", len(names), len(sz.streams)))
	}
	for k, name := range names {
		sz.streams[k].name = name
	}
	return sz
}

// WithLogger sets a logger for debug-level tracing of matches, drops and
// rejections. Defaults to a no-op logger.
func (sz *Synchronizer) WithLogger(logger *zap.Logger) *Synchronizer {
	if logger != nil {
		sz.logger = logger
	}
	return sz
}

// TimeFunc registers the timestamp extractor for stream k.
// Mandatory before the first Add on that stream; Add panics without it.
func (sz *Synchronizer) TimeFunc(k int, fn TimeFunc) *Synchronizer {
	sz.stream(k).timeFunc = fn
	return sz
}

// OnMatch registers the callback invoked with every synchronized set.
// The set holds one item per stream, in stream order, removed from their
// queues; the callback owns them. If not set, sets are silently discarded.
func (sz *Synchronizer) OnMatch(fn MatchFunc) *Synchronizer {
	if fn == nil {
		fn = func([]any) {}
	}
	sz.onMatch = fn
	return sz
}

// OnDropped registers the callback invoked for every item of stream k that
// is retired without becoming part of a synchronized set. If not set,
// dropped items are silently discarded. Items rejected by Add (non-monotonic
// arrival or below the gap floor) never reach this callback.
func (sz *Synchronizer) OnDropped(k int, fn DroppedFunc) *Synchronizer {
	sz.stream(k).onDropped = fn
	return sz
}

// Add inserts an item into stream k's queue.
//
// The item is silently rejected when its timestamp is below the minimum-gap
// floor established by the previous match, or when it would break the
// stream's monotonic time order. Rejected items trigger no callback.
//
// Add alone is not synchronized against a concurrently running Search; the
// supported concurrent pattern is one producer goroutine per stream index,
// each calling AddAndSearch for its own index only.
func (sz *Synchronizer) Add(k int, item any) {
	st := sz.stream(k)
	if st.timeFunc == nil {
		panic(fmt.Sprintf("synchro: no time function registered for stream %d (%s)", k, st.name))
	}

	t := st.timeFunc(item)
	if t < sz.nextT.Load() {
		st.rejected.Add(1)
		sz.logger.Debug("rejected item",
			zap.String("stream", st.name),
			zap.Int64("time", t),
			zap.String("reason", "below gap floor"))
		return
	}
	if !st.push(item, t) {
		st.rejected.Add(1)
		sz.logger.Debug("rejected item",
			zap.String("stream", st.name),
			zap.Int64("time", t),
			zap.String("reason", "not monotonic"))
		return
	}
	st.accepted.Add(1)
}

// AddAndSearch inserts an item into stream k's queue and then runs the
// search to completion, delivering every synchronized set it finds.
//
// If another goroutine is already searching, the search step is skipped
// rather than waited for: the running search re-reads live queue state on
// every pass and will pick up the newly added item. This makes AddAndSearch
// safe to call concurrently from one producer goroutine per stream without
// producers ever blocking on each other.
func (sz *Synchronizer) AddAndSearch(k int, item any) {
	sz.Add(k, item)
	if sz.searchMu.TryLock() {
		defer sz.searchMu.Unlock()
		for sz.Search() {
		}
	}
}

// Stats returns a point-in-time snapshot of synchronizer activity.
// Safe to call concurrently with producers.
func (sz *Synchronizer) Stats() Stats {
	stats := Stats{
		Matches:         sz.matches.Load(),
		LastMatchSpread: sz.lastSpread.Load(),
		Streams:         make([]StreamStats, len(sz.streams)),
	}
	for k := range sz.streams {
		st := &sz.streams[k]
		stats.Streams[k] = StreamStats{
			Name:     st.name,
			Accepted: st.accepted.Load(),
			Rejected: st.rejected.Load(),
			Dropped:  st.dropped.Load(),
			Pending:  st.len(),
		}
	}
	return stats
}

// String returns a human-readable dump of each queue's pending timestamps,
// useful in tests and for tracing.
func (sz *Synchronizer) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "synchro: %d streams (gap=%d, floor=%d)\n", len(sz.streams), sz.minGap, sz.nextT.Load())
	for k := range sz.streams {
		st := &sz.streams[k]
		times := st.pendingTimes()
		if len(times) == 0 {
			fmt.Fprintf(&b, "  %s: (empty)\n", st.name)
			continue
		}
		fmt.Fprintf(&b, "  %s:", st.name)
		for _, t := range times {
			fmt.Fprintf(&b, " %d", t)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (sz *Synchronizer) stream(k int) *streamState {
	if k < 0 || k >= len(sz.streams) {
		panic(fmt.Sprintf("synchro: stream index %d out of range [0, %d)", k, len(sz.streams)))
	}
	return &sz.streams[k]
}

// drop retires an item that never made it into a synchronized set.
func (sz *Synchronizer) drop(st *streamState, item any) {
	st.dropped.Add(1)
	sz.logger.Debug("dropped item",
		zap.String("stream", st.name),
		zap.Int64("time", st.timeFunc(item)))
	if st.onDropped != nil {
		st.onDropped(item)
	}
}
