// Package match implements the graph matching used to align experimental
// residues with their reference topologies: induced subgraph isomorphism
// with a hydrogen relaxation, match rating, and a maximum-common-subgraph
// fallback for residues that fit their reference in neither direction.
package match

import (
	"sort"

	"github.com/osmium-bio/molrepair/molecule"
)

// Mapping maps node ids of one graph to node ids of another. It is
// injective: no two keys share a value.
type Mapping map[int]int

// Copy returns an independent copy of the mapping.
func (m Mapping) Copy() Mapping {
	c := make(Mapping, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Invert swaps keys and values.
func (m Mapping) Invert() Mapping {
	inv := make(Mapping, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

// Values returns the mapping's values in ascending order.
func (m Mapping) Values() []int {
	vals := make([]int, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals
}

// Keys returns the mapping's keys in ascending order.
func (m Mapping) Keys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Isomorphisms enumerates the induced-subgraph isomorphisms that embed
// pattern into host, returned as host-id -> pattern-id mappings covering
// every pattern node. Elements must agree on matched nodes.
//
// Hydrogen matching is deliberately imperfect: the heavy-atom skeletons are
// matched exactly, after which each pattern hydrogen is assigned greedily
// to any free host hydrogen bonded to the image of its parent. Terminal
// and rotamer hydrogens are too ambiguous in experimental data to warrant
// exact matching, and skipping them keeps the search tractable.
//
// An empty result means no embedding exists in this direction; callers try
// the opposite direction (and finally the MCS fallback) before giving up.
func Isomorphisms(host, pattern *molecule.Graph) []Mapping {
	patHeavyIDs := heavyNodes(pattern)

	var patToHost []Mapping
	if len(patHeavyIDs) == 0 {
		// Hydrogen-only pattern (e.g. a lone proton): nothing to anchor
		// the relaxation on, match everything exactly.
		patToHost = embeddings(host, pattern, searchOrder(pattern))
	} else {
		hostHeavy := host.Subgraph(heavyNodes(host))
		patHeavy := pattern.Subgraph(patHeavyIDs)
		for _, skeleton := range embeddings(hostHeavy, patHeavy, searchOrder(patHeavy)) {
			if full, ok := assignHydrogens(host, pattern, skeleton); ok {
				patToHost = append(patToHost, full)
			}
		}
	}

	out := make([]Mapping, len(patToHost))
	for i, m := range patToHost {
		out[i] = m.Invert()
	}
	return out
}

func heavyNodes(g *molecule.Graph) []int {
	var ids []int
	for _, id := range g.Nodes() {
		if !g.Atom(id).IsHydrogen() {
			ids = append(ids, id)
		}
	}
	return ids
}

// searchOrder returns the pattern nodes connectivity-first: a BFS from the
// lowest id of each component, so every node after the first in a
// component has an already-placed neighbor to prune against.
func searchOrder(g *molecule.Graph) []int {
	var order []int
	seen := make(map[int]bool)
	for _, start := range g.Nodes() {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			order = append(order, id)
			for _, nb := range g.Neighbors(id) {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return order
}

// embeddings enumerates induced embeddings of pattern into host under
// element equality, as pattern-id -> host-id mappings. order fixes the
// assignment sequence and, together with candidate ranking, makes the
// enumeration deterministic.
func embeddings(host, pattern *molecule.Graph, order []int) []Mapping {
	var results []Mapping
	mapping := make(Mapping, len(order))
	used := make(map[int]bool)

	var place func(depth int)
	place = func(depth int) {
		if depth == len(order) {
			results = append(results, mapping.Copy())
			return
		}
		p := order[depth]
		pa := pattern.Atom(p)
		for _, h := range rankCandidates(host, pa, pattern.Degree(p)) {
			if used[h] {
				continue
			}
			if host.Degree(h) < pattern.Degree(p) {
				continue
			}
			// Induced: mapped pairs must agree on adjacency both ways.
			consistent := true
			for q, hq := range mapping {
				if pattern.HasEdge(p, q) != host.HasEdge(h, hq) {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}
			mapping[p] = h
			used[h] = true
			place(depth + 1)
			delete(mapping, p)
			delete(used, h)
		}
	}
	place(0)
	return results
}

// rankCandidates orders host nodes of the right element for assignment to
// a pattern atom: canonical-name agreement first, then closest degree,
// then id. The ranking only steers which isomorphism is enumerated first;
// it never excludes a valid embedding.
func rankCandidates(host *molecule.Graph, pa *molecule.Atom, patDegree int) []int {
	var ids []int
	for _, id := range host.Nodes() {
		if host.Atom(id).Element == pa.Element {
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		nameI := host.Atom(ids[i]).Atomname == pa.Atomname
		nameJ := host.Atom(ids[j]).Atomname == pa.Atomname
		if nameI != nameJ {
			return nameI
		}
		degI := absInt(host.Degree(ids[i]) - patDegree)
		degJ := absInt(host.Degree(ids[j]) - patDegree)
		if degI != degJ {
			return degI < degJ
		}
		return ids[i] < ids[j]
	})
	return ids
}

// assignHydrogens extends a heavy-skeleton mapping (pattern -> host) with
// the pattern's hydrogens. Each hydrogen must land on a free host hydrogen
// adjacent to every already-mapped neighbor's image; among those any choice
// is acceptable, so the pick is greedy: same name first, lowest id next.
func assignHydrogens(host, pattern *molecule.Graph, skeleton Mapping) (Mapping, bool) {
	full := skeleton.Copy()
	usedHost := make(map[int]bool, len(full))
	for _, h := range full {
		usedHost[h] = true
	}

	for _, p := range pattern.Nodes() {
		pa := pattern.Atom(p)
		if !pa.IsHydrogen() {
			continue
		}

		var anchors []int
		for _, q := range pattern.Neighbors(p) {
			if hq, ok := full[q]; ok {
				anchors = append(anchors, hq)
			}
		}

		candidates := hydrogenCandidates(host, anchors, usedHost)
		if len(candidates) == 0 {
			return nil, false
		}
		pick := candidates[0]
		for _, c := range candidates {
			if host.Atom(c).Atomname == pa.Atomname {
				pick = c
				break
			}
		}
		full[p] = pick
		usedHost[pick] = true
	}
	return full, true
}

func hydrogenCandidates(host *molecule.Graph, anchors []int, used map[int]bool) []int {
	var pool []int
	if len(anchors) == 0 {
		// Hydrogen with no mapped neighbor: isolated in the pattern, so
		// any free host hydrogen will do.
		pool = host.Nodes()
	} else {
		pool = host.Neighbors(anchors[0])
	}

	var out []int
	for _, id := range pool {
		if used[id] || !host.Atom(id).IsHydrogen() {
			continue
		}
		adjacent := true
		for _, a := range anchors[1:] {
			if !host.HasEdge(a, id) {
				adjacent = false
				break
			}
		}
		if adjacent {
			out = append(out, id)
		}
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
