package molecule

import "testing"

func buildWater(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	g.AddAtom(0, &Atom{Resname: "HOH", Resid: 1, Chain: "A", Element: "O", Atomname: "OW"})
	g.AddAtom(1, &Atom{Resname: "HOH", Resid: 1, Chain: "A", Element: "H", Atomname: "HW1"})
	g.AddAtom(2, &Atom{Resname: "HOH", Resid: 1, Chain: "A", Element: "H", Atomname: "HW2"})
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	return g
}

func TestGraphBasics(t *testing.T) {
	g := buildWater(t)

	if g.NumNodes() != 3 {
		t.Errorf("NumNodes = %d, want 3", g.NumNodes())
	}
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges = %d, want 2", g.NumEdges())
	}
	if !g.HasEdge(1, 0) {
		t.Error("edges must be undirected")
	}
	if g.HasEdge(1, 2) {
		t.Error("no bond between the two hydrogens")
	}
	if g.Degree(0) != 2 {
		t.Errorf("Degree(0) = %d, want 2", g.Degree(0))
	}
	if max := g.MaxNode(); max != 2 {
		t.Errorf("MaxNode = %d, want 2", max)
	}
}

func TestGraphAddEdgeMissingNode(t *testing.T) {
	g := buildWater(t)
	g.AddEdge(0, 99)
	if g.NumEdges() != 2 {
		t.Errorf("edge to absent node must be ignored, NumEdges = %d", g.NumEdges())
	}
	g.AddEdge(1, 1)
	if g.HasEdge(1, 1) {
		t.Error("self loops must be ignored")
	}
}

func TestGraphMaxNodeEmpty(t *testing.T) {
	if max := NewGraph().MaxNode(); max != -1 {
		t.Errorf("MaxNode of empty graph = %d, want -1", max)
	}
}

func TestSubgraphIsInduced(t *testing.T) {
	g := buildWater(t)
	sub := g.Subgraph([]int{0, 1})

	if sub.NumNodes() != 2 || sub.NumEdges() != 1 {
		t.Fatalf("subgraph has %d nodes, %d edges; want 2, 1", sub.NumNodes(), sub.NumEdges())
	}

	// The subgraph owns its atoms: mutating it must not leak back.
	sub.Atom(0).Atomname = "XX"
	if g.Atom(0).Atomname != "OW" {
		t.Error("subgraph aliases parent atoms, want an independent copy")
	}
}

func TestCopyIndependence(t *testing.T) {
	g := buildWater(t)
	c := g.Copy()
	c.AddAtom(3, &Atom{Element: "H", Atomname: "HW3"})
	c.AddEdge(0, 3)

	if g.HasNode(3) {
		t.Error("mutating a copy must not affect the original")
	}
	if c.NumEdges() != 3 {
		t.Errorf("copy NumEdges = %d, want 3", c.NumEdges())
	}
}

func TestAtomUpdateFrom(t *testing.T) {
	a := &Atom{Resname: "ALA", Resid: 2, Chain: "A", Element: "C", Atomname: "CA1", Atomid: 5}
	ref := &Atom{Resname: "ALA", Element: "C", Atomname: "CA", Extras: map[string]any{"charge": 0.1}}

	a.UpdateFrom(ref)

	if a.Atomname != "CA" {
		t.Errorf("Atomname = %q, want canonical CA", a.Atomname)
	}
	if a.Chain != "A" || a.Resid != 2 {
		t.Error("reference without chain/resid must not clobber placement")
	}
	if a.Extras["charge"] != 0.1 {
		t.Error("reference extras must be merged in")
	}
}
