package match

import "github.com/osmium-bio/molrepair/molecule"

// RateMatch scores a candidate mapping between graphs a and b; higher is
// better. The topology is already guaranteed by the matcher, so the score
// rewards the one signal topology cannot see: agreement between the atom
// names on both sides of each matched pair. A structure whose atoms carry
// canonical names therefore snaps onto its reference exactly, while badly
// named inputs fall back to an arbitrary topological fit.
func RateMatch(a, b *molecule.Graph, mapping Mapping) int {
	score := 0
	for ai, bi := range mapping {
		atomA, atomB := a.Atom(ai), b.Atom(bi)
		if atomA == nil || atomB == nil {
			continue
		}
		if atomA.Atomname == atomB.Atomname {
			score++
		}
	}
	return score
}

// BestMatches filters mappings down to those maximizing RateMatch,
// preserving enumeration order. More than one survivor means the input is
// ambiguous (typically misnamed atoms); callers pick the first and warn.
func BestMatches(a, b *molecule.Graph, mappings []Mapping) []Mapping {
	best := -1
	var out []Mapping
	for _, m := range mappings {
		score := RateMatch(a, b, m)
		switch {
		case score > best:
			best = score
			out = out[:0]
			out = append(out, m)
		case score == best:
			out = append(out, m)
		}
	}
	return out
}
