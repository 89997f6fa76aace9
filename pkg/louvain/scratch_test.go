package louvain

import "testing"

func TestScratchScanExcludesSelfByDefault(t *testing.T) {
	s := newScratch(4)
	vcom := []int{0, 1, 2, 3}

	s.scan(vcom, 0, 0, 5.0, false)
	if len(s.vcs) != 0 {
		t.Fatalf("self-loop should be excluded when self=false, got vcs=%v", s.vcs)
	}

	s.scan(vcom, 0, 1, 2.0, false)
	if len(s.vcs) != 1 || s.vcout[1] != 2.0 {
		t.Fatalf("vcs=%v vcout[1]=%v, want [1] and 2.0", s.vcs, s.vcout[1])
	}
}

func TestScratchScanIncludesSelfWhenRequested(t *testing.T) {
	s := newScratch(2)
	vcom := []int{0, 0}

	s.scan(vcom, 0, 0, 3.0, true)
	if len(s.vcs) != 1 || s.vcout[0] != 3.0 {
		t.Fatalf("vcs=%v vcout[0]=%v, want [0] and 3.0", s.vcs, s.vcout[0])
	}
}

func TestScratchAccumulatesRepeatedCommunity(t *testing.T) {
	s := newScratch(3)
	vcom := []int{1, 1, 1}

	s.scan(vcom, 0, 1, 1.0, false)
	s.scan(vcom, 0, 2, 4.0, false)

	if len(s.vcs) != 1 {
		t.Fatalf("expected a single touched community, got %v", s.vcs)
	}
	if s.vcout[1] != 5.0 {
		t.Fatalf("vcout[1] = %v, want 5.0 (1.0 + 4.0 accumulated)", s.vcout[1])
	}
}

func TestScratchClearResetsTouchedOnly(t *testing.T) {
	s := newScratch(3)
	vcom := []int{0, 1, 2}
	s.scan(vcom, 9, 1, 1.0, false)
	s.scan(vcom, 9, 2, 2.0, false)

	s.clear()

	if len(s.vcs) != 0 {
		t.Fatalf("clear did not empty vcs: %v", s.vcs)
	}
	for i, v := range s.vcout {
		if v != 0 {
			t.Fatalf("vcout[%d] = %v after clear, want 0", i, v)
		}
	}
}

func TestScratchPoolPerWorkerIsolation(t *testing.T) {
	p := newScratchPool(2, 4)
	vcom := []int{0, 1, 2, 3}

	p.get(0).scan(vcom, 9, 1, 1.0, false)
	p.get(1).scan(vcom, 9, 2, 1.0, false)

	if len(p.get(0).vcs) != 1 || p.get(0).vcs[0] != 1 {
		t.Fatalf("worker 0 scratch leaked worker 1's state: %v", p.get(0).vcs)
	}
	if len(p.get(1).vcs) != 1 || p.get(1).vcs[0] != 2 {
		t.Fatalf("worker 1 scratch leaked worker 0's state: %v", p.get(1).vcs)
	}
}

func TestScratchResizeGrowsAndClears(t *testing.T) {
	s := newScratch(2)
	vcom := []int{0, 1}
	s.scan(vcom, 9, 1, 1.0, false)

	s.resize(5)
	if len(s.vcout) != 5 {
		t.Fatalf("len(vcout) = %d, want 5", len(s.vcout))
	}
	for i, v := range s.vcout {
		if v != 0 {
			t.Fatalf("vcout[%d] = %v after resize, want 0", i, v)
		}
	}
	if len(s.vcs) != 0 {
		t.Fatalf("vcs not cleared by resize: %v", s.vcs)
	}
}
