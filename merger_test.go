package synchro

import (
	"context"
	"testing"
	"time"
)

func TestMergerProcess(t *testing.T) {
	ctx := context.Background()

	sync := New(2).
		TimeFunc(0, intTime).
		TimeFunc(1, intTime)

	in0 := make(chan any)
	in1 := make(chan any)
	out := NewMerger(sync).Process(ctx, in0, in1)

	go func() {
		for _, v := range []int{11, 21, 31, 41} {
			in0 <- v
		}
		close(in0)
	}()
	go func() {
		for _, v := range []int{12, 22, 32} {
			in1 <- v
		}
		close(in1)
	}()

	var sets [][2]int
	for set := range out {
		sets = append(sets, [2]int{set[0].(int), set[1].(int)})
	}

	want := [][2]int{{11, 12}, {21, 22}, {31, 32}}
	if len(sets) != len(want) {
		t.Fatalf("expected %d sets, got %d: %v", len(want), len(sets), sets)
	}
	for i, w := range want {
		if sets[i] != w {
			t.Errorf("set %d: expected %v, got %v", i, w, sets[i])
		}
	}
}

func TestMergerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	sync := New(2).
		TimeFunc(0, intTime).
		TimeFunc(1, intTime)

	in0 := make(chan any)
	in1 := make(chan any)
	out := NewMerger(sync).Process(ctx, in0, in1)

	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Error("expected closed output after cancellation")
		}
	case <-time.After(time.Second):
		t.Error("output not closed after cancellation")
	}
}

func TestMergerInputCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on input count mismatch")
		}
	}()

	sync := New(2).
		TimeFunc(0, intTime).
		TimeFunc(1, intTime)
	NewMerger(sync).Process(context.Background(), make(chan any))
}

func TestMergerName(t *testing.T) {
	m := NewMerger(New(1).TimeFunc(0, intTime))
	if m.Name() != "merger" {
		t.Errorf("expected default name %q, got %q", "merger", m.Name())
	}
	if got := m.WithName("fusion").Name(); got != "fusion" {
		t.Errorf("expected custom name %q, got %q", "fusion", got)
	}
}
