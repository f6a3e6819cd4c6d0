package molecule

import "sort"

// Graph is an undirected graph of atoms over integer node ids. It owns its
// atoms; subgraphs are induced copies, never live views, so callers that
// need a subgraph to track the parent must re-derive it explicitly.
type Graph struct {
	atoms map[int]*Atom
	adj   map[int]map[int]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		atoms: make(map[int]*Atom),
		adj:   make(map[int]map[int]struct{}),
	}
}

// AddAtom inserts or replaces the atom stored under id.
func (g *Graph) AddAtom(id int, a *Atom) {
	g.atoms[id] = a
	if g.adj[id] == nil {
		g.adj[id] = make(map[int]struct{})
	}
}

// Atom returns the atom stored under id, or nil.
func (g *Graph) Atom(id int) *Atom {
	return g.atoms[id]
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.atoms[id]
	return ok
}

// AddEdge adds an undirected edge between two existing nodes. Edges to
// absent nodes are ignored.
func (g *Graph) AddEdge(u, v int) {
	if !g.HasNode(u) || !g.HasNode(v) || u == v {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
}

// HasEdge reports whether an edge exists between u and v.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.atoms))
	for id := range g.atoms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Neighbors returns the ids adjacent to id in ascending order.
func (g *Graph) Neighbors(id int) []int {
	ids := make([]int, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		ids = append(ids, nb)
	}
	sort.Ints(ids)
	return ids
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int) int {
	return len(g.adj[id])
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.atoms)
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	n := 0
	for _, nbs := range g.adj {
		n += len(nbs)
	}
	return n / 2
}

// Edges returns every edge once as an ordered pair (u < v), sorted.
func (g *Graph) Edges() [][2]int {
	var edges [][2]int
	for u, nbs := range g.adj {
		for v := range nbs {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// MaxNode returns the highest node id, or -1 for an empty graph. Repair
// allocates new ids as MaxNode()+1 so ids are never reused, even after
// deletions elsewhere.
func (g *Graph) MaxNode() int {
	max := -1
	for id := range g.atoms {
		if id > max {
			max = id
		}
	}
	return max
}

// Subgraph returns the induced subgraph over ids as an independent copy.
// Unknown ids are skipped.
func (g *Graph) Subgraph(ids []int) *Graph {
	sub := NewGraph()
	for _, id := range ids {
		if a := g.atoms[id]; a != nil {
			sub.AddAtom(id, a.Copy())
		}
	}
	for _, id := range sub.Nodes() {
		for nb := range g.adj[id] {
			if sub.HasNode(nb) {
				sub.AddEdge(id, nb)
			}
		}
	}
	return sub
}

// Copy returns a deep copy of the graph.
func (g *Graph) Copy() *Graph {
	return g.Subgraph(g.Nodes())
}
