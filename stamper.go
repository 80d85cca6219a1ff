package synchro

import "time"

// Arrival wraps a value with the instant it entered the pipeline. It gives
// streams whose items carry no intrinsic timestamp something for a TimeFunc
// to extract.
type Arrival[T any] struct {
	Value T
	At    time.Time
}

// Stamper assigns arrival timestamps to items using an injectable clock.
//
// When to use:
//   - Synchronizing streams whose items have no embedded timestamp
//   - Aligning feeds by receive time rather than origin time
//   - Deterministic tests of arrival-ordered pipelines via a fake clock
//
// Example:
//
//	stamper := synchro.NewStamper[Frame]()
//	sync := synchro.New(2).
//		TimeFunc(0, synchro.ArrivalTime[Frame]).
//		TimeFunc(1, synchro.ArrivalTime[Audio])
//
//	sync.AddAndSearch(0, stamper.Stamp(frame))
//
// Returns a new Stamper using the real clock; override with WithClock.
func NewStamper[T any]() *Stamper[T] {
	return &Stamper[T]{clock: RealClock}
}

// Stamper stamps values of one type with their arrival time.
type Stamper[T any] struct {
	clock Clock
}

// WithClock sets the clock used for stamping. Defaults to RealClock.
func (s *Stamper[T]) WithClock(clock Clock) *Stamper[T] {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Stamp wraps a value with the clock's current time.
func (s *Stamper[T]) Stamp(v T) Arrival[T] {
	return Arrival[T]{Value: v, At: s.clock.Now()}
}

// ArrivalTime is a TimeFunc over Arrival-wrapped items of type T, in Unix
// nanoseconds.
func ArrivalTime[T any](item any) int64 {
	return item.(Arrival[T]).At.UnixNano()
}
