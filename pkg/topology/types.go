// Package topology parses the topology export of a geological model run and
// assembles it into a typed, undirected, attributed graph. Nodes are voxel
// regions of one lithology; edges are observed contacts between regions,
// classified by geological relationship.
package topology

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeKey identifies a voxel region: the lithology code plus the
// model-specific topology code of the region. The export files spell it as
// "<lithology>_<topology>", e.g. "2_001a".
type NodeKey struct {
	Lithology int
	Topology  string
}

// String returns the composite form used by the export files.
func (k NodeKey) String() string {
	return fmt.Sprintf("%d_%s", k.Lithology, k.Topology)
}

// Less orders keys lexicographically by lithology then topology code. Used to
// canonicalise undirected edge keys and to give deterministic iteration.
func (k NodeKey) Less(other NodeKey) bool {
	if k.Lithology != other.Lithology {
		return k.Lithology < other.Lithology
	}
	return k.Topology < other.Topology
}

// ParseNodeKey parses the composite "<lithology>_<topology>" form.
func ParseNodeKey(s string) (NodeKey, error) {
	litho, topo, ok := strings.Cut(s, "_")
	if !ok {
		return NodeKey{}, fmt.Errorf("node id %q: %w", s, ErrFormat)
	}
	code, err := strconv.Atoi(litho)
	if err != nil {
		return NodeKey{}, fmt.Errorf("node id %q: lithology code: %w", s, ErrFormat)
	}
	return NodeKey{Lithology: code, Topology: topo}, nil
}

// EdgeKey is the unordered pair of node keys an edge connects. A and B are
// stored in canonical order so the pair hashes identically regardless of the
// direction it was observed in.
type EdgeKey struct {
	A, B NodeKey
}

// NewEdgeKey canonicalises the pair.
func NewEdgeKey(a, b NodeKey) EdgeKey {
	if b.Less(a) {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// ContactType is the geological relationship an edge represents, derived
// from the classification digit of the two topology codes.
type ContactType int

const (
	Stratigraphic ContactType = iota
	Fault
	Unconformity
	Intrusive
	Unknown
)

// String returns the lower-case name of the contact type.
func (t ContactType) String() string {
	switch t {
	case Stratigraphic:
		return "stratigraphic"
	case Fault:
		return "fault"
	case Unconformity:
		return "unconformity"
	case Intrusive:
		return "intrusive"
	default:
		return "unknown"
	}
}

// Colour returns the display colour conventionally used for the contact type.
// Informational only; the core never renders.
func (t ContactType) Colour() string {
	switch t {
	case Stratigraphic:
		return "black"
	case Fault:
		return "red"
	case Unconformity:
		return "blue"
	case Intrusive:
		return "yellow"
	default:
		return "green"
	}
}

// Colour is an RGB triple with channels normalised to [0,1].
type Colour [3]float64

// LithologyProperty describes one rock-unit type of the model. Loaded once
// per model from the properties file and immutable afterwards.
type LithologyProperty struct {
	Code   int
	Name   string
	Colour Colour
}

// NodeProperty carries the geometric and volumetric attributes of one voxel
// region, loaded from the vertex file.
type NodeProperty struct {
	Centroid  [3]float64
	Lithology int
	Topology  string
	Volume    int64 // voxel count, non-negative
}

// Key returns the region's composite key.
func (p NodeProperty) Key() NodeKey {
	return NodeKey{Lithology: p.Lithology, Topology: p.Topology}
}

// Node is a voxel region with its resolved lithology and geometry attributes.
type Node struct {
	Key      NodeKey
	Name     string // lithology name
	Colour   Colour // lithology colour
	Centroid [3]float64
	Volume   int64
}

// Edge is an observed contact between two voxel regions. A and B are in
// canonical order. Area counts the adjoining voxel pairs and serves as a
// surface-area proxy; Weight is constant 1, reserved for future weighting.
type Edge struct {
	A, B   NodeKey
	Code   int // classification digit, 0 default
	Type   ContactType
	Colour string // derived from Type, informational only
	Area   int64
	Weight float64
}

// Key returns the edge's unordered pair key.
func (e Edge) Key() EdgeKey {
	return EdgeKey{A: e.A, B: e.B}
}
