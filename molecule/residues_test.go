package molecule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dipeptide builds a two-residue backbone fragment joined by a peptide
// bond: GLY1 (N, CA, C, O) - ALA2 (N, CA, C, O).
func dipeptide() *Graph {
	g := NewGraph()
	names := []string{"N", "CA", "C", "O"}
	elements := []string{"N", "C", "C", "O"}
	for res := 0; res < 2; res++ {
		resname := "GLY"
		if res == 1 {
			resname = "ALA"
		}
		base := res * 4
		for i := range names {
			g.AddAtom(base+i, &Atom{
				Resname:  resname,
				Resid:    res + 1,
				Chain:    "A",
				Element:  elements[i],
				Atomname: names[i],
			})
		}
		g.AddEdge(base+0, base+1) // N-CA
		g.AddEdge(base+1, base+2) // CA-C
		g.AddEdge(base+2, base+3) // C=O
	}
	g.AddEdge(2, 4) // peptide bond GLY1:C - ALA2:N
	return g
}

func TestPartitionDipeptide(t *testing.T) {
	res := Partition(dipeptide())

	require.Len(t, res.Nodes, 2)
	assert.Equal(t, "GLY", res.Nodes[0].Resname)
	assert.Equal(t, 1, res.Nodes[0].Resid)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Nodes[0].Members)
	assert.Equal(t, "ALA", res.Nodes[1].Resname)
	assert.Equal(t, []int{4, 5, 6, 7}, res.Nodes[1].Members)

	// Exactly one inter-residue edge: the peptide bond.
	assert.Equal(t, [][2]int{{0, 1}}, res.Edges)
}

func TestPartitionSplitsDisconnectedSameKey(t *testing.T) {
	// Two waters that were given the same resid by a sloppy writer. They
	// share a key but are not bonded, so they are separate residues.
	g := NewGraph()
	for i := 0; i < 2; i++ {
		base := i * 3
		g.AddAtom(base, &Atom{Resname: "HOH", Resid: 1, Chain: "A", Element: "O", Atomname: "OW"})
		g.AddAtom(base+1, &Atom{Resname: "HOH", Resid: 1, Chain: "A", Element: "H", Atomname: "HW1"})
		g.AddAtom(base+2, &Atom{Resname: "HOH", Resid: 1, Chain: "A", Element: "H", Atomname: "HW2"})
		g.AddEdge(base, base+1)
		g.AddEdge(base, base+2)
	}

	res := Partition(g)
	require.Len(t, res.Nodes, 2)
	assert.Equal(t, []int{0, 1, 2}, res.Nodes[0].Members)
	assert.Equal(t, []int{3, 4, 5}, res.Nodes[1].Members)
	assert.Empty(t, res.Edges)
}

func TestResidueSubgraph(t *testing.T) {
	g := dipeptide()
	res := Partition(g)

	sub := res.Subgraph(g, 1)
	assert.Equal(t, 4, sub.NumNodes())
	assert.Equal(t, 3, sub.NumEdges())
	// The peptide bond crosses the boundary and must not appear.
	assert.False(t, sub.HasNode(2))
}
