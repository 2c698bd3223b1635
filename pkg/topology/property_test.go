package topology

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGraphInvariants uses property-based testing to verify pruning and
// classification invariants that should hold for any input.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: pruning removes exactly the nodes below the threshold.
	properties.Property("prune removes exactly the below-threshold nodes", prop.ForAll(
		func(volumes []int64, threshold int64) bool {
			g := NewGraph("prop")
			below := 0
			for i, v := range volumes {
				if v < threshold {
					below++
				}
				g.AddNode(Node{Key: NodeKey{Lithology: i, Topology: "000a"}, Volume: v})
			}

			removed := g.RemoveNodesBelowVolume(threshold)
			if removed != below {
				return false
			}
			for _, n := range g.Nodes() {
				if n.Volume < threshold {
					return false
				}
			}
			// Idempotence: nothing left below the threshold.
			return g.RemoveNodesBelowVolume(threshold) == 0
		},
		gen.SliceOf(gen.Int64Range(0, 1000)),
		gen.Int64Range(0, 1000),
	))

	// Property 2: classification is symmetric in its two codes.
	properties.Property("classification digit is order-independent", prop.ForAll(
		func(a, b string) bool {
			da, ta := ClassifyContact(a, b)
			db, tb := ClassifyContact(b, a)
			// Codes of equal length compare the same positions either way.
			if len(a) == len(b) {
				return da == db && ta == tb
			}
			return true
		},
		gen.RegexMatch(`[0-9]{3}[a-z]`),
		gen.RegexMatch(`[0-9]{3}[a-z]`),
	))

	// Property 3: every edge's endpoints exist after a build-style insert.
	properties.Property("edges only connect present nodes", prop.ForAll(
		func(pairs []int) bool {
			g := NewGraph("prop")
			for _, p := range pairs {
				a := NodeKey{Lithology: p % 7, Topology: "000a"}
				b := NodeKey{Lithology: (p / 7) % 7, Topology: "001a"}
				g.AddNode(Node{Key: a})
				g.AddNode(Node{Key: b})
				g.AddEdge(Edge{A: a, B: b, Weight: 1})
			}
			for _, e := range g.Edges() {
				if _, err := g.Node(e.A); err != nil {
					return false
				}
				if _, err := g.Node(e.B); err != nil {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 48)),
	))

	properties.TestingRun(t)
}
