package louvain

import (
	"testing"

	"github.com/gilchrisn/louvain-engine/internal/atomicfloat"
	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

func TestChooseCommunityPicksBestGain(t *testing.T) {
	s := newScratch(3)
	vtot := []float64{1, 1, 1}
	ctot := atomicfloat.NewSlice(3)
	ctot.Set(0, 1) // u's current community
	ctot.Set(1, 5)
	ctot.Set(2, 1)

	vcom := []int{0, 1, 2}
	s.scan(vcom, 0, 1, 3.0, false) // strong pull towards community 1
	s.scan(vcom, 0, 2, 0.1, false) // weak pull towards community 2

	best, gain := chooseCommunity(0, 0, s, vtot, ctot, 10, 1)
	if best != 1 {
		t.Fatalf("chooseCommunity picked %d, want 1 (strongest pull)", best)
	}
	if gain <= 0 {
		t.Fatalf("gain = %v, want > 0", gain)
	}
}

func TestChooseCommunityStaysWhenNoImprovement(t *testing.T) {
	s := newScratch(2)
	vtot := []float64{1, 1}
	ctot := atomicfloat.NewSlice(2)
	ctot.Set(0, 10)
	ctot.Set(1, 10)

	vcom := []int{0, 1}
	s.scan(vcom, 0, 1, 0.0001, false)

	best, gain := chooseCommunity(0, 0, s, vtot, ctot, 100, 1)
	if best != 0 {
		t.Fatalf("chooseCommunity picked %d, want 0 (no real improvement)", best)
	}
	if gain != 0 {
		t.Fatalf("gain = %v, want 0", gain)
	}
}

func TestLocalMoveConvergesOnTwoTriangles(t *testing.T) {
	g := graph.New(6)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 1, 2, 1)
	mustAddEdge(t, g, 2, 0, 1)
	mustAddEdge(t, g, 3, 4, 1)
	mustAddEdge(t, g, 4, 5, 1)
	mustAddEdge(t, g, 5, 3, 1)
	mustAddEdge(t, g, 2, 3, 0.01)
	g.Freeze()

	vtot := make([]float64, g.Span())
	vertexWeights(g, vtot, 2)
	vcom := make([]int, g.Span())
	ctot := atomicfloat.NewSlice(g.Span())
	initializeSingleton(g, vcom, ctot, vtot, 2)

	vaff := make([]bool, g.Span())
	for i := range vaff {
		vaff[i] = true
	}

	pool := newScratchPool(2, g.Span())
	m := graph.EdgeWeight(g) / 2

	order := []int{0, 1, 2, 3, 4, 5}
	for i := 0; i < 20; i++ {
		moves, _ := localMove(g, vcom, vtot, ctot, vaff, pool, order, m, 1.0, 2)
		if moves == 0 {
			break
		}
	}

	for v := 0; v < 3; v++ {
		if vcom[v] != vcom[0] {
			t.Fatalf("triangle {0,1,2} split across communities: %v", vcom)
		}
	}
	for v := 3; v < 6; v++ {
		if vcom[v] != vcom[3] {
			t.Fatalf("triangle {3,4,5} split across communities: %v", vcom)
		}
	}
}
