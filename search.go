package synchro

import (
	"math"

	"go.uber.org/zap"
)

// Search runs one pass of the pivot search and commits at most one
// synchronized set. It returns true when a set was delivered to the match
// callback, in which case another pass may find more; callers loop until it
// returns false. AddAndSearch does exactly that under the search mutex.
//
// Search never blocks waiting for data: with any queue empty, or with some
// stream not yet reaching the pivot, it returns false after retiring
// stragglers below the gap floor.
//
// Search is not safe for concurrent use with itself; serialize passes
// through AddAndSearch or an external lock.
func (sz *Synchronizer) Search() bool {
	streams := sz.streams

	// Retire everything below the floor left behind by the previous match.
	sz.keepBefore(0, sz.nextT.Load())

	for k := range streams {
		if streams[k].len() == 0 {
			return false
		}
	}

	// The pivot is the timestamp of the furthest-ahead front element.
	pivot := streams[0].timeAt(0)
	for k := 1; k < len(streams); k++ {
		if t := streams[k].timeAt(0); t > pivot {
			pivot = t
		}
	}

	// Keep at most one element at or before the pivot in each queue.
	sz.keepBefore(1, pivot)

	// Every queue must straddle the pivot: at least one element at or
	// before it and at least one at or after it. Otherwise some stream has
	// not caught up yet and no set can be committed.
	for k := range streams {
		st := &streams[k]
		if st.timeAt(0) > pivot || st.timeAt(st.len()-1) < pivot {
			return false
		}
	}

	minT, maxT := sz.searchSpan()
	minBest, maxBest := minT, pivot

	for minT < pivot {
		// Greedy step: advance every stream currently sitting at the
		// minimum. Streams at or past the pivot never move, and any stream
		// below the pivot still has a later element, so the pointer stays
		// in bounds.
		for k := range streams {
			st := &streams[k]
			if st.timeAt(st.searchIdx) <= minT {
				st.searchIdx++
			}
		}

		minT, maxT = sz.searchSpan()

		if maxT-pivot >= maxBest-minBest {
			// Cannot improve on the best window: its lower edge is at most
			// the pivot, so the spread is bounded below by maxT - pivot.
			break
		}
		if maxT-minT < maxBest-minBest {
			minBest, maxBest = minT, maxT
			for k := range streams {
				streams[k].optimalIdx = streams[k].searchIdx
			}
		}
	}

	// Retire everything the winning combination skipped over.
	for k := range streams {
		st := &streams[k]
		for i := 0; i < st.optimalIdx; i++ {
			sz.drop(st, st.popFront())
		}
	}

	// A very old pivot can leave additional staleness behind.
	sz.keepBefore(1, maxBest)

	// Earliest acceptable timestamp for the next match's minimal element.
	sz.nextT.Store(minBest + sz.minGap)

	set := make([]any, len(streams))
	for k := range streams {
		set[k] = streams[k].popFront()
		streams[k].searchIdx = 0
		streams[k].optimalIdx = 0
	}

	sz.matches.Add(1)
	sz.lastSpread.Store(maxBest - minBest)
	sz.logger.Debug("synchronized set",
		zap.Int64("pivot", pivot),
		zap.Int64("spread", maxBest-minBest),
		zap.Int64("next_floor", minBest+sz.minGap))

	sz.onMatch(set)
	return true
}

// keepBefore retires front elements until every queue holds at most n
// elements with a timestamp at or before t. Retired elements go to their
// stream's dropped callback.
func (sz *Synchronizer) keepBefore(n int, t int64) {
	for k := range sz.streams {
		st := &sz.streams[k]
		for st.len() > n && st.timeAt(n) <= t {
			sz.drop(st, st.popFront())
		}
	}
}

// searchSpan returns the minimal and maximal timestamps under the streams'
// current search pointers.
func (sz *Synchronizer) searchSpan() (minT, maxT int64) {
	minT = math.MaxInt64
	maxT = math.MinInt64
	for k := range sz.streams {
		st := &sz.streams[k]
		t := st.timeAt(st.searchIdx)
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
	}
	return minT, maxT
}
