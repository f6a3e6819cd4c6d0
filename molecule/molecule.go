// Package molecule holds the graph data model shared by the matching and
// repair pipeline: atoms, undirected atom graphs, molecules, systems, and
// the residue-level partitioning of a structure graph.
package molecule

import "github.com/google/uuid"

// Molecule is a structure graph with identity and free-form metadata.
// It is typically produced by an external file-format reader which must
// populate resname, resid, chain, element and atomname on every atom
// before the repair pipeline runs.
type Molecule struct {
	*Graph

	// ID identifies the molecule across copies; Copy preserves it so log
	// events from a repaired copy correlate with the original.
	ID   uuid.UUID      `json:"id"`
	Meta map[string]any `json:"meta,omitempty"`
}

// NewMolecule returns an empty molecule with a fresh identity.
func NewMolecule() *Molecule {
	return &Molecule{
		Graph: NewGraph(),
		ID:    uuid.New(),
		Meta:  make(map[string]any),
	}
}

// Copy returns a deep copy of the molecule. Repair operates on a copy and
// leaves the original untouched.
func (m *Molecule) Copy() *Molecule {
	c := &Molecule{
		Graph: m.Graph.Copy(),
		ID:    m.ID,
		Meta:  make(map[string]any, len(m.Meta)),
	}
	for k, v := range m.Meta {
		c.Meta[k] = v
	}
	return c
}

// System is an ordered collection of molecules, e.g. everything read from
// one coordinate file.
type System struct {
	Molecules []*Molecule `json:"molecules"`
}

// NewSystem returns an empty system.
func NewSystem() *System {
	return &System{}
}

// Add appends a molecule to the system.
func (s *System) Add(m *Molecule) {
	s.Molecules = append(s.Molecules, m)
}
