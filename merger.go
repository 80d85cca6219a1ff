package synchro

import (
	"context"
	"fmt"
	"sync"
)

// Merger bridges a Synchronizer into a channel pipeline: one input channel
// per stream in, synchronized sets out.
type Merger struct {
	sz   *Synchronizer
	name string
}

// NewMerger creates a channel adapter around a configured synchronizer.
// The synchronizer's time functions and dropped callbacks are used as
// registered; the match callback is owned by the Merger and must not be set
// by the caller.
//
// When to use:
//   - Synchronizing streams that already flow through channels
//   - Consuming matched sets with range instead of a callback
//   - Plugging approximate-time joins into channel-based pipelines
//
// Example:
//
//	sync := synchro.New(2).
//		TimeFunc(0, scanTime).
//		TimeFunc(1, poseTime)
//
//	merger := synchro.NewMerger(sync)
//	sets := merger.Process(ctx, scans, poses)
//	for set := range sets {
//		fuse(set[0].(Scan), set[1].(Pose))
//	}
//
// Parameters:
//   - sz: The synchronizer to feed (one input channel per stream)
//
// Returns a new Merger with fluent configuration.
func NewMerger(sz *Synchronizer) *Merger {
	return &Merger{
		sz:   sz,
		name: "merger",
	}
}

// WithName sets a custom name for this adapter.
// If not set, defaults to "merger".
func (m *Merger) WithName(name string) *Merger {
	m.name = name
	return m
}

// Process feeds each input channel into its stream and emits synchronized
// sets on the returned channel. One goroutine per input calls AddAndSearch,
// so producers never block on each other's searches. The output channel is
// closed once every input is closed and the final search pass has run.
func (m *Merger) Process(ctx context.Context, ins ...<-chan any) <-chan []any {
	if len(ins) != len(m.sz.streams) {
		panic(fmt.Sprintf("synchro: merger got %d input channels for %d streams", len(ins), len(m.sz.streams)))
	}

	out := make(chan []any)

	// Sets are delivered inside some producer's AddAndSearch, which holds
	// the search lock, so sends are already serialized.
	m.sz.OnMatch(func(set []any) {
		select {
		case out <- set:
		case <-ctx.Done():
		}
	})

	var wg sync.WaitGroup
	for k, in := range ins {
		wg.Add(1)
		go func(k int, in <-chan any) {
			defer wg.Done()
			for {
				select {
				case item, ok := <-in:
					if !ok {
						return
					}
					m.sz.AddAndSearch(k, item)
				case <-ctx.Done():
					return
				}
			}
		}(k, in)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (m *Merger) Name() string {
	return m.name
}
