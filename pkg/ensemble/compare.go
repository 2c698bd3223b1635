// Package ensemble compares the contact graphs of many simulation runs and
// reduces an ensemble to its structurally distinct outcomes.
//
// All comparisons operate on the set of unordered node-key pairs with an
// edge; edge attributes (type, area, weight) are ignored. Two graphs are
// structurally identical exactly when their edge sets are equal.
package ensemble

import "github.com/freestylewhl/pynoddy/pkg/topology"

// EdgeSet is the set of unordered node pairs with an edge, the unit of
// structural comparison.
type EdgeSet map[topology.EdgeKey]struct{}

// EdgeSetOf extracts the edge set of a graph.
func EdgeSetOf(g *topology.Graph) EdgeSet {
	return g.EdgeKeys()
}

// intersectionSize counts shared pairs, iterating over the smaller set.
func intersectionSize(a, b EdgeSet) int {
	small, big := a, b
	if len(a) > len(b) {
		small, big = b, a
	}
	n := 0
	for k := range small {
		if _, ok := big[k]; ok {
			n++
		}
	}
	return n
}

// Jaccard returns the edge-set similarity of two graphs: the size of the
// intersection over the size of the union, in [0,1]. 1.0 means structurally
// identical edge sets, 0.0 fully disjoint. Two empty edge sets compare as
// identical (1.0): trivial topologies are the same topology.
func Jaccard(a, b *topology.Graph) float64 {
	return JaccardSets(EdgeSetOf(a), EdgeSetOf(b))
}

// JaccardSets is Jaccard over pre-extracted edge sets, for callers comparing
// one graph against many.
func JaccardSets(a, b EdgeSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	inter := intersectionSize(a, b)
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// Overlap returns the unnormalised intersection count: the number of edges
// (by node pair) the two graphs share. Symmetric in its arguments.
func Overlap(a, b *topology.Graph) int {
	return intersectionSize(EdgeSetOf(a), EdgeSetOf(b))
}

// IsUnique reports whether candidate matches none of the known graphs.
// It short-circuits on the first structural match.
func IsUnique(candidate *topology.Graph, known []*topology.Graph) bool {
	return FindMatching(candidate, known) == nil
}

// FindMatching returns the first known graph structurally identical to
// candidate (Jaccard 1.0), or nil when none matches.
func FindMatching(candidate *topology.Graph, known []*topology.Graph) *topology.Graph {
	set := EdgeSetOf(candidate)
	for _, g := range known {
		if JaccardSets(set, EdgeSetOf(g)) == 1.0 {
			return g
		}
	}
	return nil
}
