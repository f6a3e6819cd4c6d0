package match

import (
	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/molecule"
)

// MaximumCommonSubgraph finds every maximum-cardinality correspondence
// between induced subgraphs of a and b that are isomorphic under element
// equality, returned as a-id -> b-id mappings.
//
// This is the fallback for residues that embed into their reference in
// neither direction: experimental structures routinely have both extra
// atoms (termini, protonation) and missing ones, which breaks strict
// subgraph containment both ways. The search is exponential in the worst
// case, so callers invoke it at most once per residue and only after both
// plain isomorphism attempts came up empty.
//
// Returns ErrNoCommonSubgraph when the graphs share no correspondence of
// even a single node.
func MaximumCommonSubgraph(a, b *molecule.Graph) ([]Mapping, error) {
	order := searchOrder(a)
	bNodes := b.Nodes()

	var (
		best    int
		results []Mapping
	)
	mapping := make(Mapping)
	used := make(map[int]bool)

	var extend func(depth int)
	extend = func(depth int) {
		// Bound: even mapping every remaining a-node cannot beat the
		// best size found so far.
		if len(mapping)+(len(order)-depth) < best {
			return
		}
		if depth == len(order) {
			size := len(mapping)
			if size == 0 {
				return
			}
			if size > best {
				best = size
				results = results[:0]
			}
			if size == best {
				results = append(results, mapping.Copy())
			}
			return
		}

		ai := order[depth]
		atomA := a.Atom(ai)
		for _, bi := range bNodes {
			if used[bi] {
				continue
			}
			if b.Atom(bi).Element != atomA.Element {
				continue
			}
			// The correspondence must be an isomorphism between the two
			// induced subgraphs: adjacency agrees pairwise, both ways.
			consistent := true
			for aj, bj := range mapping {
				if a.HasEdge(ai, aj) != b.HasEdge(bi, bj) {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}
			mapping[ai] = bi
			used[bi] = true
			extend(depth + 1)
			delete(mapping, ai)
			delete(used, bi)
		}

		// Or leave ai out of the common subgraph.
		extend(depth + 1)
	}
	extend(0)

	if best == 0 {
		return nil, errors.WithStack(errors.ErrNoCommonSubgraph)
	}
	return results, nil
}
