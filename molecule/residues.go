package molecule

import "sort"

// Residue is one node of the residue-level graph: a connected group of
// atoms sharing a (chain, resid, resname) identity.
type Residue struct {
	Chain   string
	Resid   int
	Resname string

	// Members holds the structure-graph node ids of the residue's atoms,
	// ascending.
	Members []int
}

// Residues is the residue-level view of a structure graph: one node per
// residue, plus inter-residue edges for every structure bond that crosses
// residue boundaries (peptide bonds, disulfides). Residue indices are the
// positions in Nodes.
type Residues struct {
	Nodes []Residue
	Edges [][2]int
}

type residueKey struct {
	chain   string
	resid   int
	resname string
}

func keyOf(a *Atom) residueKey {
	return residueKey{chain: a.Chain, resid: a.Resid, resname: a.Resname}
}

// Partition groups a structure graph into residues. Atoms sharing a
// (chain, resid, resname) identity belong to the same residue only while
// they are connected through atoms of that same identity; a same-keyed but
// disconnected group becomes a residue of its own. Residues are ordered by
// their smallest member id, which keeps partitioning deterministic.
func Partition(g *Graph) *Residues {
	res := &Residues{}
	index := make(map[int]int)

	for _, start := range g.Nodes() {
		if _, seen := index[start]; seen {
			continue
		}
		key := keyOf(g.Atom(start))
		ridx := len(res.Nodes)

		// Flood fill within the key group.
		members := []int{}
		queue := []int{start}
		index[start] = ridx
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, id)
			for _, nb := range g.Neighbors(id) {
				if _, seen := index[nb]; seen {
					continue
				}
				if keyOf(g.Atom(nb)) != key {
					continue
				}
				index[nb] = ridx
				queue = append(queue, nb)
			}
		}
		sort.Ints(members)
		res.Nodes = append(res.Nodes, Residue{
			Chain:   key.chain,
			Resid:   key.resid,
			Resname: key.resname,
			Members: members,
		})
	}

	// Inter-residue edges: any structure edge whose endpoints landed in
	// different residues.
	seen := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		iu, iv := index[e[0]], index[e[1]]
		if iu == iv {
			continue
		}
		if iu > iv {
			iu, iv = iv, iu
		}
		pair := [2]int{iu, iv}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}
		res.Edges = append(res.Edges, pair)
	}
	sort.Slice(res.Edges, func(i, j int) bool {
		if res.Edges[i][0] != res.Edges[j][0] {
			return res.Edges[i][0] < res.Edges[j][0]
		}
		return res.Edges[i][1] < res.Edges[j][1]
	})
	return res
}

// Subgraph returns the induced structure subgraph of residue ridx.
func (r *Residues) Subgraph(g *Graph, ridx int) *Graph {
	return g.Subgraph(r.Nodes[ridx].Members)
}
