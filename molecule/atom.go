package molecule

import "fmt"

// Atom is one node of a structure or reference graph. The fields the repair
// algorithms depend on are typed; force-field specific extras (charge, atom
// type, charge group) ride along in Extras.
type Atom struct {
	Resname  string `json:"resname"`
	Resid    int    `json:"resid"`
	Chain    string `json:"chain"`
	Element  string `json:"element"`
	Atomname string `json:"atomname"`
	Atomid   int    `json:"atomid"`

	// PTMAtom marks atoms present in the structure but absent from the
	// reference topology: post-translational modifications, termini caps,
	// protonation variants. Set by repair, consumed downstream.
	PTMAtom bool `json:"ptm_atom,omitempty"`

	Extras map[string]any `json:"extras,omitempty"`
}

// Copy returns an independent copy of the atom. Extras values are copied
// per key; nested values are shared.
func (a *Atom) Copy() *Atom {
	c := *a
	if a.Extras != nil {
		c.Extras = make(map[string]any, len(a.Extras))
		for k, v := range a.Extras {
			c.Extras[k] = v
		}
	}
	return &c
}

// UpdateFrom overwrites the atom's canonical attributes with those of the
// reference atom ref. Residue identity fields are only taken from ref when
// ref carries them, so reference atoms without chain or resid leave the
// structure atom's placement intact.
func (a *Atom) UpdateFrom(ref *Atom) {
	a.Atomname = ref.Atomname
	a.Element = ref.Element
	if ref.Resname != "" {
		a.Resname = ref.Resname
	}
	if ref.Chain != "" {
		a.Chain = ref.Chain
	}
	if ref.Resid != 0 {
		a.Resid = ref.Resid
	}
	for k, v := range ref.Extras {
		if a.Extras == nil {
			a.Extras = make(map[string]any)
		}
		a.Extras[k] = v
	}
}

// IsHydrogen reports whether the atom's element is hydrogen.
func (a *Atom) IsHydrogen() bool {
	return a.Element == "H"
}

// String renders the atom as "chain-RESNAMEresid:atomname", e.g. "A-SER2:OG".
func (a *Atom) String() string {
	return fmt.Sprintf("%s-%s%d:%s", a.Chain, a.Resname, a.Resid, a.Atomname)
}
