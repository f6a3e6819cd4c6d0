package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsomorphismsExact(t *testing.T) {
	ref := glycineRef()
	found := glycineRef()

	mappings := Isomorphisms(ref, found)
	require.NotEmpty(t, mappings)

	// With canonical names the identity mapping must be among the results
	// and must be rated maximal.
	best := BestMatches(ref, found, mappings)
	require.NotEmpty(t, best)
	m := best[0]
	assert.Len(t, m, found.NumNodes())
	for refID, foundID := range m {
		assert.Equal(t, ref.Atom(refID).Atomname, found.Atom(foundID).Atomname)
	}
}

func TestIsomorphismsInjective(t *testing.T) {
	ref := glycineRef()
	found := glycineRef()

	for _, m := range Isomorphisms(ref, found) {
		seen := make(map[int]bool)
		for _, v := range m {
			assert.False(t, seen[v], "mapping values must be unique")
			seen[v] = true
		}
	}
}

func TestIsomorphismsPatternIntoLargerHost(t *testing.T) {
	ref := glycineRef()
	// Found residue missing the amide hydrogen: still embeds into the
	// reference; the mapping covers the found atoms only.
	found := buildGraph(
		[]testAtom{{"N", "N"}, {"CA", "C"}, {"C", "C"}, {"O", "O"}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}},
	)

	mappings := Isomorphisms(ref, found)
	require.NotEmpty(t, mappings)

	m := BestMatches(ref, found, mappings)[0]
	assert.Len(t, m, 4)
	// Node 1 of the reference is the missing hydrogen.
	_, matched := m[1]
	assert.False(t, matched, "the missing H must stay unmatched")
}

func TestIsomorphismsNoEmbedding(t *testing.T) {
	ref := glycineRef()
	// A sulfur-bearing fragment cannot embed: no S in the reference.
	found := buildGraph(
		[]testAtom{{"SG", "S"}, {"CB", "C"}},
		[][2]int{{0, 1}},
	)
	assert.Empty(t, Isomorphisms(ref, found))
}

func TestIsomorphismsHydrogenRelaxation(t *testing.T) {
	// Methyl group with canonical hydrogen names.
	ref := buildGraph(
		[]testAtom{{"CB", "C"}, {"HB1", "H"}, {"HB2", "H"}, {"HB3", "H"}},
		[][2]int{{0, 1}, {0, 2}, {0, 3}},
	)
	// Same group with the hydrogens cyclically relabeled.
	found := buildGraph(
		[]testAtom{{"CB", "C"}, {"HB3", "H"}, {"HB1", "H"}, {"HB2", "H"}},
		[][2]int{{0, 1}, {0, 2}, {0, 3}},
	)

	mappings := Isomorphisms(ref, found)
	require.NotEmpty(t, mappings, "hydrogen identity must not block the match")

	// Rating favors name agreement but must not reject the mapping for
	// hydrogen-name mismatches alone.
	best := BestMatches(ref, found, mappings)
	require.NotEmpty(t, best)
	assert.Len(t, best[0], 4)
}

func TestIsomorphismsReverseDirectionForExtraAtom(t *testing.T) {
	ref := glycineRef()
	// Found residue with a covalent modification on CA: one extra carbon.
	found := buildGraph(
		[]testAtom{
			{"N", "N"}, {"H", "H"}, {"CA", "C"}, {"C", "C"}, {"O", "O"},
			{"CX", "C"},
		},
		[][2]int{{0, 1}, {0, 2}, {2, 3}, {3, 4}, {2, 5}},
	)

	// Forward direction fails: found does not embed into ref (extra C
	// changes CA's induced neighborhood).
	require.Empty(t, Isomorphisms(ref, found))

	// Reverse direction: the reference embeds into found.
	reverse := Isomorphisms(found, ref)
	require.NotEmpty(t, reverse)

	m := reverse[0].Invert() // back to ref -> found
	assert.Len(t, m, ref.NumNodes())
	vals := make(map[int]bool)
	for _, v := range m {
		vals[v] = true
	}
	assert.False(t, vals[5], "the modification atom must stay unmatched")
}

func TestInvert(t *testing.T) {
	m := Mapping{1: 10, 2: 20}
	inv := m.Invert()
	assert.Equal(t, Mapping{10: 1, 20: 2}, inv)
	assert.Equal(t, []int{10, 20}, m.Values())
	assert.Equal(t, []int{1, 2}, m.Keys())
}
