package forcefield

import (
	"os"
	"path/filepath"
	"sort"
	"unicode"

	"github.com/pelletier/go-toml/v2"

	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/molecule"
)

// Topology file schema:
//
//	name = "amber-min"
//
//	[residues.ALA]
//	atoms = [
//	  { name = "N", element = "N" },
//	  { name = "H" },            # element inferred from the name
//	  { name = "CA", element = "C", charge = 0.03 },
//	]
//	bonds = [["N", "H"], ["N", "CA"]]

type topologyFile struct {
	Name     string                     `toml:"name"`
	Residues map[string]residueTopology `toml:"residues"`
}

type residueTopology struct {
	Atoms []atomTopology `toml:"atoms"`
	Bonds [][]string     `toml:"bonds"`
}

type atomTopology struct {
	Name    string   `toml:"name"`
	Element string   `toml:"element"`
	Type    string   `toml:"type"`
	Charge  *float64 `toml:"charge"`
}

// FromDir loads every *.toml topology file under dir, lexicographically,
// into one force field. Residues defined in later files replace earlier
// definitions.
func FromDir(dir string) (*ForceField, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading force-field directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".toml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, errors.Newf("no topology files in %s", dir)
	}

	ff := New(filepath.Base(dir))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading topology file %s", path)
		}
		if err := ParseTopology(data, ff); err != nil {
			return nil, errors.Wrapf(err, "parsing topology file %s", path)
		}
	}
	return ff, nil
}

// ParseTopology parses one TOML topology document into ff.
func ParseTopology(data []byte, ff *ForceField) error {
	var file topologyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.Name != "" && ff.Name == "" {
		ff.Name = file.Name
	}

	names := make([]string, 0, len(file.Residues))
	for resname := range file.Residues {
		names = append(names, resname)
	}
	sort.Strings(names)

	for _, resname := range names {
		g, err := buildReference(resname, file.Residues[resname])
		if err != nil {
			return errors.Wrapf(err, "residue %s", resname)
		}
		ff.AddReference(resname, g)
	}
	return nil
}

func buildReference(resname string, topo residueTopology) (*molecule.Graph, error) {
	if len(topo.Atoms) == 0 {
		return nil, errors.New("no atoms defined")
	}

	g := molecule.NewGraph()
	byName := make(map[string]int, len(topo.Atoms))
	for i, at := range topo.Atoms {
		if at.Name == "" {
			return nil, errors.Newf("atom %d has no name", i)
		}
		if _, dup := byName[at.Name]; dup {
			return nil, errors.Newf("duplicate atom name %q", at.Name)
		}
		element := at.Element
		if element == "" {
			element = elementFromName(at.Name)
		}
		if element == "" {
			return nil, errors.Newf("cannot infer element for atom %q", at.Name)
		}

		atom := &molecule.Atom{
			Resname:  resname,
			Atomname: at.Name,
			Element:  element,
		}
		if at.Type != "" || at.Charge != nil {
			atom.Extras = make(map[string]any)
			if at.Type != "" {
				atom.Extras["type"] = at.Type
			}
			if at.Charge != nil {
				atom.Extras["charge"] = *at.Charge
			}
		}
		byName[at.Name] = i
		g.AddAtom(i, atom)
	}

	for _, bond := range topo.Bonds {
		if len(bond) != 2 {
			return nil, errors.Newf("malformed bond %v, want a name pair", bond)
		}
		u, ok := byName[bond[0]]
		if !ok {
			return nil, errors.Newf("bond references unknown atom %q", bond[0])
		}
		v, ok := byName[bond[1]]
		if !ok {
			return nil, errors.Newf("bond references unknown atom %q", bond[1])
		}
		g.AddEdge(u, v)
	}
	return g, nil
}

// elementFromName falls back to the first alphabetic rune of an atom name
// ("HB2" -> "H", "1HG1" -> "H"), the usual convention in topology files
// that omit explicit elements.
func elementFromName(name string) string {
	for _, r := range name {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}
