// Package graphmatch provides the minimal Graph and Matching collaborators
// the kekulizer depends on without owning their general-purpose algorithms,
// along with a concrete adjacency-list Graph and a greedy-plus-augmenting
// Matching that satisfy them.
package graphmatch

// Graph is the minimal contract the pi-subgraph builder needs: add nodes
// and edges, query membership and size.
type Graph interface {
	AddNode(id int)
	AddEdge(a, b int)
	HasNode(id int) bool
	Order() int
	IsEmpty() bool
	Nodes() []int
	Neighbors(id int) []int
	Edges() [][2]int
}

// AdjacencyGraph is a simple undirected graph keyed by integer node id,
// grounded on original_source/src/daylight/molecule.rs's neighbors:
// Vec<Vec<usize>> shape.
type AdjacencyGraph struct {
	nodes     map[int]bool
	order     []int
	neighbors map[int][]int
	edges     [][2]int
}

// NewAdjacencyGraph returns an empty graph.
func NewAdjacencyGraph() *AdjacencyGraph {
	return &AdjacencyGraph{
		nodes:     make(map[int]bool),
		neighbors: make(map[int][]int),
	}
}

func (g *AdjacencyGraph) AddNode(id int) {
	if g.nodes[id] {
		return
	}
	g.nodes[id] = true
	g.order = append(g.order, id)
}

func (g *AdjacencyGraph) AddEdge(a, b int) {
	g.AddNode(a)
	g.AddNode(b)
	g.neighbors[a] = append(g.neighbors[a], b)
	g.neighbors[b] = append(g.neighbors[b], a)
	g.edges = append(g.edges, [2]int{a, b})
}

func (g *AdjacencyGraph) HasNode(id int) bool { return g.nodes[id] }

func (g *AdjacencyGraph) Order() int { return len(g.order) }

func (g *AdjacencyGraph) IsEmpty() bool { return len(g.order) == 0 }

// Nodes returns node ids in the order they were first added.
func (g *AdjacencyGraph) Nodes() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

func (g *AdjacencyGraph) Neighbors(id int) []int {
	return g.neighbors[id]
}

func (g *AdjacencyGraph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)
	return out
}
