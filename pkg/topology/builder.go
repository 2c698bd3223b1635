package topology

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/freestylewhl/pynoddy/pkg/source"
)

// Load parses the three topology export files of the model at basename and
// assembles the contact graph. The node set is exactly the set of node ids
// appearing in the edge list; every referenced node must resolve against
// both property mappings or the build fails for the whole model.
func Load(ctx context.Context, src source.Source, basename string) (*Graph, error) {
	liths, nodeProps, err := ReadProperties(ctx, src, basename)
	if err != nil {
		return nil, err
	}
	return buildGraph(ctx, src, basename, liths, nodeProps)
}

func buildGraph(ctx context.Context, src source.Source, basename string, liths map[int]LithologyProperty, nodeProps map[NodeKey]NodeProperty) (*Graph, error) {
	name := basename + edgeListSuffix
	f, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	g := NewGraph(basename)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, parseErrf(name, lineNo, "adjacency record has %d fields, need at least 3: %w", len(fields), ErrFormat)
		}

		keyA, err := ParseNodeKey(fields[0])
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Cause: err}
		}
		keyB, err := ParseNodeKey(fields[1])
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Cause: err}
		}
		area, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
		if err != nil {
			return nil, parseErrf(name, lineNo, "adjacency count %q: %w", fields[len(fields)-1], ErrFormat)
		}

		nodeA, err := resolveNode(keyA, liths, nodeProps)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Cause: err}
		}
		nodeB, err := resolveNode(keyB, liths, nodeProps)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Cause: err}
		}
		g.AddNode(nodeA)
		g.AddNode(nodeB)

		digit, typ := ClassifyContact(keyA.Topology, keyB.Topology)
		g.AddEdge(Edge{
			A:      keyA,
			B:      keyB,
			Code:   digit,
			Type:   typ,
			Colour: typ.Colour(),
			Area:   area,
			Weight: 1,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return g, nil
}

// resolveNode joins a node id against the lithology and node property
// mappings. Absence of either entry is fatal for the model.
func resolveNode(key NodeKey, liths map[int]LithologyProperty, nodeProps map[NodeKey]NodeProperty) (Node, error) {
	lith, ok := liths[key.Lithology]
	if !ok {
		return Node{}, fmt.Errorf("node %s: lithology %d: %w", key, key.Lithology, ErrReference)
	}
	prop, ok := nodeProps[key]
	if !ok {
		return Node{}, fmt.Errorf("node %s: %w", key, ErrReference)
	}
	return Node{
		Key:      key,
		Name:     lith.Name,
		Colour:   lith.Colour,
		Centroid: prop.Centroid,
		Volume:   prop.Volume,
	}, nil
}
