package graph

import "testing"

func TestCSRBasic(t *testing.T) {
	g := New(3)
	if err := g.AddEdge(0, 1, 2.0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(1, 2, 3.0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	g.Freeze()

	if g.Span() != 3 || g.Order() != 3 {
		t.Fatalf("span/order = %d/%d, want 3/3", g.Span(), g.Order())
	}
	if d := g.Degree(1); d != 2 {
		t.Fatalf("Degree(1) = %d, want 2", d)
	}

	var got []int
	g.ForEachEdge(1, func(v int, w float64) { got = append(got, v) })
	if len(got) != 2 {
		t.Fatalf("ForEachEdge(1) produced %d edges, want 2", len(got))
	}
	if w := EdgeWeight(g); w != 10 {
		t.Fatalf("EdgeWeight = %v, want 10 (2*2 + 2*3)", w)
	}
}

func TestCSRSelfLoop(t *testing.T) {
	g := New(2)
	if err := g.AddEdge(0, 0, 1.5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	g.Freeze()

	if d := g.Degree(0); d != 1 {
		t.Fatalf("Degree(0) = %d, want 1 (self-loop counted once in adjacency)", d)
	}
	if wd := g.WeightedDegree(0); wd != 1.5 {
		t.Fatalf("WeightedDegree(0) = %v, want 1.5 (self-loop counted once, per spec data model)", wd)
	}
}

func TestCSROutOfRange(t *testing.T) {
	g := New(2)
	if err := g.AddEdge(0, 5, 1.0); err == nil {
		t.Fatal("expected error for out-of-range vertex")
	}
}

func TestFromArrays(t *testing.T) {
	// Triangle 0-1-2, each edge weight 1, built as a raw symmetric CSR
	// the way the aggregator assembles a next-level graph.
	offsets := []int{0, 2, 4, 6}
	adj := []int{1, 2, 0, 2, 0, 1}
	wei := []float64{1, 1, 1, 1, 1, 1}

	g := FromArrays(3, offsets, adj, wei)
	if g.Span() != 3 {
		t.Fatalf("Span() = %d, want 3", g.Span())
	}
	for u := 0; u < 3; u++ {
		if d := g.Degree(u); d != 2 {
			t.Fatalf("Degree(%d) = %d, want 2", u, d)
		}
		if wd := g.WeightedDegree(u); wd != 2 {
			t.Fatalf("WeightedDegree(%d) = %v, want 2", u, wd)
		}
	}
	if w := EdgeWeight(g); w != 6 {
		t.Fatalf("EdgeWeight = %v, want 6", w)
	}
}
