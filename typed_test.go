package synchro

import "testing"

type scan struct {
	stamp int64
	id    string
}

type pose struct {
	stamp int64
	x, y  float64
}

func TestSync2(t *testing.T) {
	var gotScan scan
	var gotPose pose
	var droppedScans []scan

	sync := NewSync2[scan, pose]().
		TimeFuncA(func(s scan) int64 { return s.stamp }).
		TimeFuncB(func(p pose) int64 { return p.stamp }).
		OnMatch(func(s scan, p pose) {
			gotScan = s
			gotPose = p
		}).
		OnDroppedA(func(s scan) {
			droppedScans = append(droppedScans, s)
		})

	for i := 0; i < 10; i++ {
		sync.AddAndSearchA(scan{stamp: int64(i), id: "early"})
	}
	sync.AddAndSearchB(pose{stamp: 11, x: 1, y: 2})
	sync.AddAndSearchA(scan{stamp: 12, id: "match"})

	if gotScan.stamp != 12 || gotScan.id != "match" {
		t.Errorf("expected scan stamp 12, got %+v", gotScan)
	}
	if gotPose.stamp != 11 || gotPose.x != 1 {
		t.Errorf("expected pose stamp 11, got %+v", gotPose)
	}
	if len(droppedScans) != 10 {
		t.Errorf("expected 10 dropped scans, got %d", len(droppedScans))
	}

	stats := sync.Stats()
	if stats.Matches != 1 {
		t.Errorf("expected 1 match, got %d", stats.Matches)
	}
}

func TestSync3(t *testing.T) {
	var got [3]int64
	sync := NewSync3[int64, int64, int64]().
		TimeFuncA(func(v int64) int64 { return v }).
		TimeFuncB(func(v int64) int64 { return v }).
		TimeFuncC(func(v int64) int64 { return v }).
		OnMatch(func(a, b, c int64) {
			got = [3]int64{a, b, c}
		})

	sync.AddAndSearchA(10)
	sync.AddAndSearchB(11)
	sync.AddAndSearchC(12)

	// the next round closes the straddle around the pivot and commits
	sync.AddAndSearchA(20)
	sync.AddAndSearchB(21)
	if got != [3]int64{10, 11, 12} {
		t.Errorf("expected set (10, 11, 12), got %v", got)
	}
}

func TestSync4MinGap(t *testing.T) {
	var sets [][4]int64
	sync := NewSync4[int64, int64, int64, int64]().
		WithMinGap(15).
		TimeFuncA(func(v int64) int64 { return v }).
		TimeFuncB(func(v int64) int64 { return v }).
		TimeFuncC(func(v int64) int64 { return v }).
		TimeFuncD(func(v int64) int64 { return v })
	sync.OnMatch(func(a, b, c, d int64) {
		sets = append(sets, [4]int64{a, b, c, d})
	})

	feed := func(vals [4]int64) {
		sync.AddAndSearchA(vals[0])
		sync.AddAndSearchB(vals[1])
		sync.AddAndSearchC(vals[2])
		sync.AddAndSearchD(vals[3])
	}

	feed([4]int64{10, 11, 12, 13})
	feed([4]int64{20, 21, 22, 23}) // within the gap of set 1, must be skipped
	feed([4]int64{30, 31, 32, 33})
	feed([4]int64{50, 51, 52, 53}) // flushes set 3

	if len(sets) < 2 {
		t.Fatalf("expected at least 2 sets, got %v", sets)
	}
	if sets[0] != [4]int64{10, 11, 12, 13} {
		t.Errorf("expected first set (10, 11, 12, 13), got %v", sets[0])
	}
	for _, s := range sets {
		if s[0] >= 20 && s[0] < 30 {
			t.Errorf("set %v violates the minimum gap", s)
		}
	}
}
