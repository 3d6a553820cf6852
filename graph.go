package canvas

// Arc connects the nodes at indices From and To of a [Graph]. An undirected
// arc can be traversed both ways.
type Arc struct {
	From     int
	To       int
	Directed bool
}

// Graph is a graph whose nodes carry a payload of type T.
type Graph[T any] struct {
	nodes []T
	arcs  []Arc
}

// NewGraph returns a graph with copies of the given nodes and arcs. It panics
// if an arc refers to a node that doesn't exist.
func NewGraph[T any](nodes []T, arcs []Arc) *Graph[T] {
	for _, a := range arcs {
		if a.From < 0 || a.From >= len(nodes) || a.To < 0 || a.To >= len(nodes) {
			panic("arc refers to nonexistent node")
		}
	}
	return &Graph[T]{
		nodes: append([]T(nil), nodes...),
		arcs:  append([]Arc(nil), arcs...),
	}
}

func (g *Graph[T]) Nodes() []T { return append([]T(nil), g.nodes...) }
func (g *Graph[T]) Arcs() []Arc { return append([]Arc(nil), g.arcs...) }

// Successors returns the indices of the nodes reachable from node i in one
// step.
func (g *Graph[T]) Successors(i int) []int {
	var out []int
	for _, a := range g.arcs {
		switch {
		case a.From == i:
			out = append(out, a.To)
		case !a.Directed && a.To == i:
			out = append(out, a.From)
		}
	}
	return out
}

type marker uint8

const (
	untouched marker = iota
	reachableUntouched
	reachableTouched
)

// IsConnected reports whether every node can be reached from the first one.
// The graph without nodes is connected.
func (g *Graph[T]) IsConnected() bool {
	if len(g.nodes) == 0 {
		return true
	}
	adj := make([][]int, len(g.nodes))
	for i := range g.nodes {
		adj[i] = g.Successors(i)
	}

	markers := make([]marker, len(g.nodes))
	markers[0] = reachableUntouched
	pending := []int{0}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if markers[n] != reachableUntouched {
			continue
		}
		markers[n] = reachableTouched
		for _, m := range adj[n] {
			if markers[m] == untouched {
				markers[m] = reachableUntouched
				pending = append(pending, m)
			}
		}
	}
	for _, m := range markers {
		if m == untouched {
			return false
		}
	}
	return true
}
