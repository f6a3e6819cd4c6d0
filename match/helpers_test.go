package match

import (
	"github.com/osmium-bio/molrepair/molecule"
)

type testAtom struct {
	name    string
	element string
}

// buildGraph assembles a graph from atoms (ids are positions) and bonds
// (index pairs).
func buildGraph(atoms []testAtom, bonds [][2]int) *molecule.Graph {
	g := molecule.NewGraph()
	for i, a := range atoms {
		g.AddAtom(i, &molecule.Atom{
			Resname:  "TST",
			Resid:    1,
			Chain:    "A",
			Element:  a.element,
			Atomname: a.name,
		})
	}
	for _, b := range bonds {
		g.AddEdge(b[0], b[1])
	}
	return g
}

// glycineRef is the canonical glycine-like backbone used across the match
// tests: N(-H)-CA-C(=O).
func glycineRef() *molecule.Graph {
	return buildGraph(
		[]testAtom{
			{"N", "N"}, {"H", "H"}, {"CA", "C"}, {"C", "C"}, {"O", "O"},
		},
		[][2]int{{0, 1}, {0, 2}, {2, 3}, {3, 4}},
	)
}
