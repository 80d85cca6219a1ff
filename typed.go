package synchro

// Typed frontends over Synchronizer. Go has no variadic generics, so fixed
// arities 2 through 4 are spelled out; streams beyond four use the untyped
// Synchronizer directly.

// Sync2 synchronizes two streams of distinct item types with a fully typed
// surface: time functions, callbacks and adds never touch `any`.
//
// Example:
//
//	sync := synchro.NewSync2[Scan, Pose]().
//		TimeFuncA(func(s Scan) int64 { return s.Stamp }).
//		TimeFuncB(func(p Pose) int64 { return p.Stamp }).
//		OnMatch(func(s Scan, p Pose) { fuse(s, p) })
//
//	sync.AddAndSearchA(scan)
//	sync.AddAndSearchB(pose)
type Sync2[A, B any] struct {
	sz *Synchronizer
}

// NewSync2 creates a typed synchronizer over two streams.
func NewSync2[A, B any]() *Sync2[A, B] {
	return &Sync2[A, B]{sz: New(2)}
}

// WithMinGap sets the minimum time distance between consecutive sets.
func (s *Sync2[A, B]) WithMinGap(gap int64) *Sync2[A, B] {
	s.sz.WithMinGap(gap)
	return s
}

// TimeFuncA registers the timestamp extractor for the first stream.
func (s *Sync2[A, B]) TimeFuncA(fn func(A) int64) *Sync2[A, B] {
	s.sz.TimeFunc(0, func(item any) int64 { return fn(item.(A)) })
	return s
}

// TimeFuncB registers the timestamp extractor for the second stream.
func (s *Sync2[A, B]) TimeFuncB(fn func(B) int64) *Sync2[A, B] {
	s.sz.TimeFunc(1, func(item any) int64 { return fn(item.(B)) })
	return s
}

// OnMatch registers the typed callback invoked with every synchronized set.
func (s *Sync2[A, B]) OnMatch(fn func(A, B)) *Sync2[A, B] {
	s.sz.OnMatch(func(set []any) { fn(set[0].(A), set[1].(B)) })
	return s
}

// OnDroppedA registers the dropped callback for the first stream.
func (s *Sync2[A, B]) OnDroppedA(fn func(A)) *Sync2[A, B] {
	s.sz.OnDropped(0, func(item any) { fn(item.(A)) })
	return s
}

// OnDroppedB registers the dropped callback for the second stream.
func (s *Sync2[A, B]) OnDroppedB(fn func(B)) *Sync2[A, B] {
	s.sz.OnDropped(1, func(item any) { fn(item.(B)) })
	return s
}

// AddA inserts into the first stream without searching.
func (s *Sync2[A, B]) AddA(v A) { s.sz.Add(0, v) }

// AddB inserts into the second stream without searching.
func (s *Sync2[A, B]) AddB(v B) { s.sz.Add(1, v) }

// AddAndSearchA inserts into the first stream and searches.
func (s *Sync2[A, B]) AddAndSearchA(v A) { s.sz.AddAndSearch(0, v) }

// AddAndSearchB inserts into the second stream and searches.
func (s *Sync2[A, B]) AddAndSearchB(v B) { s.sz.AddAndSearch(1, v) }

// Search runs one search pass; see Synchronizer.Search.
func (s *Sync2[A, B]) Search() bool { return s.sz.Search() }

// Stats returns the underlying synchronizer's statistics.
func (s *Sync2[A, B]) Stats() Stats { return s.sz.Stats() }

func (s *Sync2[A, B]) String() string { return s.sz.String() }

// Sync3 synchronizes three streams of distinct item types.
type Sync3[A, B, C any] struct {
	sz *Synchronizer
}

// NewSync3 creates a typed synchronizer over three streams.
func NewSync3[A, B, C any]() *Sync3[A, B, C] {
	return &Sync3[A, B, C]{sz: New(3)}
}

// WithMinGap sets the minimum time distance between consecutive sets.
func (s *Sync3[A, B, C]) WithMinGap(gap int64) *Sync3[A, B, C] {
	s.sz.WithMinGap(gap)
	return s
}

func (s *Sync3[A, B, C]) TimeFuncA(fn func(A) int64) *Sync3[A, B, C] {
	s.sz.TimeFunc(0, func(item any) int64 { return fn(item.(A)) })
	return s
}

func (s *Sync3[A, B, C]) TimeFuncB(fn func(B) int64) *Sync3[A, B, C] {
	s.sz.TimeFunc(1, func(item any) int64 { return fn(item.(B)) })
	return s
}

func (s *Sync3[A, B, C]) TimeFuncC(fn func(C) int64) *Sync3[A, B, C] {
	s.sz.TimeFunc(2, func(item any) int64 { return fn(item.(C)) })
	return s
}

func (s *Sync3[A, B, C]) OnMatch(fn func(A, B, C)) *Sync3[A, B, C] {
	s.sz.OnMatch(func(set []any) { fn(set[0].(A), set[1].(B), set[2].(C)) })
	return s
}

func (s *Sync3[A, B, C]) OnDroppedA(fn func(A)) *Sync3[A, B, C] {
	s.sz.OnDropped(0, func(item any) { fn(item.(A)) })
	return s
}

func (s *Sync3[A, B, C]) OnDroppedB(fn func(B)) *Sync3[A, B, C] {
	s.sz.OnDropped(1, func(item any) { fn(item.(B)) })
	return s
}

func (s *Sync3[A, B, C]) OnDroppedC(fn func(C)) *Sync3[A, B, C] {
	s.sz.OnDropped(2, func(item any) { fn(item.(C)) })
	return s
}

func (s *Sync3[A, B, C]) AddAndSearchA(v A) { s.sz.AddAndSearch(0, v) }
func (s *Sync3[A, B, C]) AddAndSearchB(v B) { s.sz.AddAndSearch(1, v) }
func (s *Sync3[A, B, C]) AddAndSearchC(v C) { s.sz.AddAndSearch(2, v) }

func (s *Sync3[A, B, C]) Search() bool { return s.sz.Search() }

func (s *Sync3[A, B, C]) Stats() Stats { return s.sz.Stats() }

func (s *Sync3[A, B, C]) String() string { return s.sz.String() }

// Sync4 synchronizes four streams of distinct item types.
type Sync4[A, B, C, D any] struct {
	sz *Synchronizer
}

// NewSync4 creates a typed synchronizer over four streams.
func NewSync4[A, B, C, D any]() *Sync4[A, B, C, D] {
	return &Sync4[A, B, C, D]{sz: New(4)}
}

// WithMinGap sets the minimum time distance between consecutive sets.
func (s *Sync4[A, B, C, D]) WithMinGap(gap int64) *Sync4[A, B, C, D] {
	s.sz.WithMinGap(gap)
	return s
}

func (s *Sync4[A, B, C, D]) TimeFuncA(fn func(A) int64) *Sync4[A, B, C, D] {
	s.sz.TimeFunc(0, func(item any) int64 { return fn(item.(A)) })
	return s
}

func (s *Sync4[A, B, C, D]) TimeFuncB(fn func(B) int64) *Sync4[A, B, C, D] {
	s.sz.TimeFunc(1, func(item any) int64 { return fn(item.(B)) })
	return s
}

func (s *Sync4[A, B, C, D]) TimeFuncC(fn func(C) int64) *Sync4[A, B, C, D] {
	s.sz.TimeFunc(2, func(item any) int64 { return fn(item.(C)) })
	return s
}

func (s *Sync4[A, B, C, D]) TimeFuncD(fn func(D) int64) *Sync4[A, B, C, D] {
	s.sz.TimeFunc(3, func(item any) int64 { return fn(item.(D)) })
	return s
}

func (s *Sync4[A, B, C, D]) OnMatch(fn func(A, B, C, D)) *Sync4[A, B, C, D] {
	s.sz.OnMatch(func(set []any) { fn(set[0].(A), set[1].(B), set[2].(C), set[3].(D)) })
	return s
}

func (s *Sync4[A, B, C, D]) OnDroppedA(fn func(A)) *Sync4[A, B, C, D] {
	s.sz.OnDropped(0, func(item any) { fn(item.(A)) })
	return s
}

func (s *Sync4[A, B, C, D]) OnDroppedB(fn func(B)) *Sync4[A, B, C, D] {
	s.sz.OnDropped(1, func(item any) { fn(item.(B)) })
	return s
}

func (s *Sync4[A, B, C, D]) OnDroppedC(fn func(C)) *Sync4[A, B, C, D] {
	s.sz.OnDropped(2, func(item any) { fn(item.(C)) })
	return s
}

func (s *Sync4[A, B, C, D]) OnDroppedD(fn func(D)) *Sync4[A, B, C, D] {
	s.sz.OnDropped(3, func(item any) { fn(item.(D)) })
	return s
}

func (s *Sync4[A, B, C, D]) AddAndSearchA(v A) { s.sz.AddAndSearch(0, v) }
func (s *Sync4[A, B, C, D]) AddAndSearchB(v B) { s.sz.AddAndSearch(1, v) }
func (s *Sync4[A, B, C, D]) AddAndSearchC(v C) { s.sz.AddAndSearch(2, v) }
func (s *Sync4[A, B, C, D]) AddAndSearchD(v D) { s.sz.AddAndSearch(3, v) }

func (s *Sync4[A, B, C, D]) Search() bool { return s.sz.Search() }

func (s *Sync4[A, B, C, D]) Stats() Stats { return s.sz.Stats() }

func (s *Sync4[A, B, C, D]) String() string { return s.sz.String() }
