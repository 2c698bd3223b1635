package ensemble

import "github.com/freestylewhl/pynoddy/pkg/topology"

// graphWithEdges builds a graph whose edges connect lithology-coded regions
// given as pairs, e.g. [][2]int{{1,2},{2,3}}.
func graphWithEdges(name string, pairs [][2]int) *topology.Graph {
	g := topology.NewGraph(name)
	for _, p := range pairs {
		a := topology.NodeKey{Lithology: p[0], Topology: "000a"}
		b := topology.NodeKey{Lithology: p[1], Topology: "000a"}
		g.AddNode(topology.Node{Key: a, Volume: 100})
		g.AddNode(topology.Node{Key: b, Volume: 100})
		g.AddEdge(topology.Edge{A: a, B: b, Type: topology.Stratigraphic, Area: 1, Weight: 1})
	}
	return g
}
