package topology

import (
	"sort"

	"github.com/google/uuid"
)

// Graph is the undirected attributed contact graph of one simulation run.
// At most one edge exists per unordered node pair. A Graph is exclusively
// owned by the run it was built for; comparison code treats it as read-only.
type Graph struct {
	// ID identifies this build; Name is the model basename.
	ID   uuid.UUID
	Name string

	nodes map[NodeKey]Node
	edges map[EdgeKey]Edge
}

// NewGraph creates an empty graph for the named model.
func NewGraph(name string) *Graph {
	return &Graph{
		ID:    uuid.New(),
		Name:  name,
		nodes: make(map[NodeKey]Node),
		edges: make(map[EdgeKey]Edge),
	}
}

// AddNode inserts or replaces a node.
func (g *Graph) AddNode(n Node) {
	g.nodes[n.Key] = n
}

// AddEdge inserts the edge for its unordered pair, replacing any previous
// observation of the same pair (last occurrence wins).
func (g *Graph) AddEdge(e Edge) {
	key := NewEdgeKey(e.A, e.B)
	e.A, e.B = key.A, key.B
	g.edges[key] = e
}

// Node returns the node with the given key.
func (g *Graph) Node(key NodeKey) (Node, error) {
	n, ok := g.nodes[key]
	if !ok {
		return Node{}, ErrNodeNotFound
	}
	return n, nil
}

// Edge returns the edge between the two nodes, in either order. O(1).
func (g *Graph) Edge(a, b NodeKey) (Edge, error) {
	e, ok := g.edges[NewEdgeKey(a, b)]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}
	return e, nil
}

// HasEdge reports whether an edge exists between the two nodes.
func (g *Graph) HasEdge(a, b NodeKey) bool {
	_, ok := g.edges[NewEdgeKey(a, b)]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns all nodes ordered by key. The slice holds copies; mutating
// it does not affect the graph. This is the read-only view visualisation
// collaborators consume.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// Edges returns all edges with endpoints in canonical order, sorted by pair.
// The slice holds copies.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}

// EdgeKeys returns the set of unordered node pairs with an edge, ignoring
// all edge attributes. This is the unit of structural comparison.
func (g *Graph) EdgeKeys() map[EdgeKey]struct{} {
	out := make(map[EdgeKey]struct{}, len(g.edges))
	for k := range g.edges {
		out[k] = struct{}{}
	}
	return out
}

// RemoveNode deletes the node and every incident edge. Returns false if the
// node was absent.
func (g *Graph) RemoveNode(key NodeKey) bool {
	if _, ok := g.nodes[key]; !ok {
		return false
	}
	delete(g.nodes, key)
	for ek := range g.edges {
		if ek.A == key || ek.B == key {
			delete(g.edges, ek)
		}
	}
	return true
}

// RemoveNodesBelowVolume deletes every node whose volume is strictly below
// threshold, together with all incident edges, and returns the number of
// nodes removed. Destructive and irreversible; callers needing the original
// must build a fresh graph first.
func (g *Graph) RemoveNodesBelowVolume(threshold int64) int {
	doomed := make(map[NodeKey]struct{})
	for key, n := range g.nodes {
		if n.Volume < threshold {
			doomed[key] = struct{}{}
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	for key := range doomed {
		delete(g.nodes, key)
	}
	for ek := range g.edges {
		if _, dead := doomed[ek.A]; dead {
			delete(g.edges, ek)
			continue
		}
		if _, dead := doomed[ek.B]; dead {
			delete(g.edges, ek)
		}
	}
	return len(doomed)
}
