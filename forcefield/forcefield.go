// Package forcefield provides the curated reference topologies the repair
// pipeline matches residues against. A force field is a read-only mapping
// from residue name to reference graph, loaded from TOML topology files.
package forcefield

import (
	"sort"

	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/molecule"
)

// ForceField is a collection of reference residue graphs keyed by residue
// name. Lookups are exact-string; an absent name is an unknown-residue
// error, the only error class the repair pipeline can be configured to
// tolerate.
type ForceField struct {
	Name string

	references map[string]*molecule.Graph
}

// New returns an empty force field.
func New(name string) *ForceField {
	return &ForceField{
		Name:       name,
		references: make(map[string]*molecule.Graph),
	}
}

// AddReference registers the reference graph for a residue name, replacing
// any previous entry. Later topology files patching earlier ones is the
// normal way force-field variants are assembled.
func (ff *ForceField) AddReference(resname string, g *molecule.Graph) {
	ff.references[resname] = g
}

// Reference returns the reference graph for resname, or an
// ErrUnknownResidue error when the force field does not know the name.
func (ff *ForceField) Reference(resname string) (*molecule.Graph, error) {
	g, ok := ff.references[resname]
	if !ok {
		return nil, errors.NewUnknownResidue(resname)
	}
	return g, nil
}

// Residues lists the known residue names in ascending order.
func (ff *ForceField) Residues() []string {
	names := make([]string, 0, len(ff.references))
	for name := range ff.references {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
