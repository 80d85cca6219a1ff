package synchro

// Stats is a point-in-time snapshot of synchronizer activity, taken with
// atomic loads only. Counters are cumulative since construction.
type Stats struct {
	// Matches is the number of synchronized sets delivered so far.
	Matches int64
	// LastMatchSpread is the time spread of the most recent set, in the
	// unit of the time functions. Zero until the first match.
	LastMatchSpread int64
	// Streams holds one entry per stream, in stream order.
	Streams []StreamStats
}

// StreamStats describes one stream's accounting.
type StreamStats struct {
	// Name is the stream's configured name.
	Name string
	// Accepted counts items that passed Add's rejection rules.
	Accepted int64
	// Rejected counts items silently refused by Add (non-monotonic arrival
	// or below the minimum-gap floor). Rejected items trigger no callbacks.
	Rejected int64
	// Dropped counts accepted items retired through the dropped callback
	// without ever joining a synchronized set.
	Dropped int64
	// Pending is the number of items currently queued.
	Pending int
}

// Matched returns how many of the stream's accepted items have left the
// queue as part of a synchronized set.
func (s StreamStats) Matched() int64 {
	return s.Accepted - s.Dropped - int64(s.Pending)
}
