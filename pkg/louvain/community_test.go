package louvain

import (
	"reflect"
	"sort"
	"testing"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
)

func TestRenumberCommunitiesCompactsIDs(t *testing.T) {
	g := graph.New(5)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 2, 3, 1)
	mustAddEdge(t, g, 4, 0, 1)
	g.Freeze()

	// Sparse, non-contiguous community ids.
	vcom := []int{1, 1, 3, 3, 1}

	count := renumberCommunities(vcom, g, 2)
	if count != 2 {
		t.Fatalf("renumberCommunities = %d communities, want 2", count)
	}

	for _, c := range vcom {
		if c < 0 || c >= count {
			t.Fatalf("vcom contains out-of-range id %d after renumbering (count=%d)", c, count)
		}
	}
	if vcom[0] != vcom[1] || vcom[1] != vcom[4] {
		t.Fatalf("vertices originally in community 1 diverged after renumbering: %v", vcom)
	}
	if vcom[2] != vcom[3] {
		t.Fatalf("vertices originally in community 3 diverged after renumbering: %v", vcom)
	}
	if vcom[0] == vcom[2] {
		t.Fatalf("distinct original communities collapsed to the same id: %v", vcom)
	}
}

func TestBuildCommunityCSRGroupsMembers(t *testing.T) {
	g := graph.New(5)
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 2, 3, 1)
	mustAddEdge(t, g, 4, 0, 1)
	g.Freeze()

	vcom := []int{0, 0, 1, 1, 0}
	offsets, members := buildCommunityCSR(vcom, g, 2, 2)

	if len(offsets) != 3 {
		t.Fatalf("len(offsets) = %d, want 3", len(offsets))
	}

	c0 := append([]int(nil), members[offsets[0]:offsets[1]]...)
	c1 := append([]int(nil), members[offsets[1]:offsets[2]]...)
	sort.Ints(c0)
	sort.Ints(c1)

	if !reflect.DeepEqual(c0, []int{0, 1, 4}) {
		t.Fatalf("community 0 members = %v, want [0 1 4]", c0)
	}
	if !reflect.DeepEqual(c1, []int{2, 3}) {
		t.Fatalf("community 1 members = %v, want [2 3]", c1)
	}
}
