package repair

import (
	"testing"

	"go.uber.org/zap"

	"github.com/osmium-bio/molrepair/forcefield"
	"github.com/osmium-bio/molrepair/molecule"
)

const testTopologies = `
[residues.HOH]
atoms = [
  { name = "OW", element = "O" },
  { name = "HW1" },
  { name = "HW2" },
]
bonds = [["OW", "HW1"], ["OW", "HW2"]]

[residues.GLY]
atoms = [
  { name = "N", element = "N" },
  { name = "H" },
  { name = "CA", element = "C" },
  { name = "HA1" },
  { name = "HA2" },
  { name = "C", element = "C" },
  { name = "O", element = "O" },
]
bonds = [
  ["N", "H"],
  ["N", "CA"],
  ["CA", "HA1"],
  ["CA", "HA2"],
  ["CA", "C"],
  ["C", "O"],
]

# Crystallographic water dimer: two fragments in one residue. Used to
# exercise unreconstructable atoms, whose reference neighbors are all
# missing too.
[residues.DIM]
atoms = [
  { name = "OW1", element = "O" },
  { name = "HW11" },
  { name = "HW12" },
  { name = "OW2", element = "O" },
  { name = "HW21" },
  { name = "HW22" },
]
bonds = [
  ["OW1", "HW11"],
  ["OW1", "HW12"],
  ["OW2", "HW21"],
  ["OW2", "HW22"],
]
`

func testForceField(t *testing.T) *forcefield.ForceField {
	t.Helper()
	ff := forcefield.New("test")
	if err := forcefield.ParseTopology([]byte(testTopologies), ff); err != nil {
		t.Fatalf("parsing test topologies: %v", err)
	}
	return ff
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type foundAtom struct {
	name    string
	element string
}

// newResidueMolecule builds a single-residue molecule from atoms (ids are
// positions) and bonds (index pairs).
func newResidueMolecule(resname string, atoms []foundAtom, bonds [][2]int) *molecule.Molecule {
	m := molecule.NewMolecule()
	for i, a := range atoms {
		m.AddAtom(i, &molecule.Atom{
			Resname:  resname,
			Resid:    1,
			Chain:    "A",
			Element:  a.element,
			Atomname: a.name,
			Atomid:   i + 1,
		})
	}
	for _, b := range bonds {
		m.AddEdge(b[0], b[1])
	}
	return m
}

// glycineMolecule returns a complete, canonically named GLY residue.
func glycineMolecule() *molecule.Molecule {
	return newResidueMolecule("GLY",
		[]foundAtom{
			{"N", "N"}, {"H", "H"}, {"CA", "C"}, {"HA1", "H"}, {"HA2", "H"},
			{"C", "C"}, {"O", "O"},
		},
		[][2]int{{0, 1}, {0, 2}, {2, 3}, {2, 4}, {2, 5}, {5, 6}},
	)
}

// atomByName returns the node id of the first atom with the given name.
func atomByName(m *molecule.Molecule, name string) (int, bool) {
	for _, id := range m.Nodes() {
		if m.Atom(id).Atomname == name {
			return id, true
		}
	}
	return 0, false
}
