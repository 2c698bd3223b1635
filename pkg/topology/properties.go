package topology

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/freestylewhl/pynoddy/pkg/source"
)

// Export file suffixes relative to the model basename.
const (
	propertiesSuffix = ".g20"  // event header + lithology definitions
	vertexSuffix     = "_v.vs" // PVRTX-tagged node geometry records
	edgeListSuffix   = ".g23"  // tab-separated adjacency observations
	matrixSuffix     = ".g25"  // adjacency-matrix grid
)

// vertexMarker tags the data records of the vertex file; other lines are
// header or topology metadata and are skipped.
const vertexMarker = "PVRTX"

// ReadProperties loads the per-model lithology metadata and per-node
// geometric metadata from the two auxiliary files of the model at basename.
// Both mappings are complete and immutable once returned; any I/O or format
// problem is fatal for the model.
func ReadProperties(ctx context.Context, src source.Source, basename string) (map[int]LithologyProperty, map[NodeKey]NodeProperty, error) {
	liths, err := readLithologyProperties(ctx, src, basename)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := readNodeProperties(ctx, src, basename)
	if err != nil {
		return nil, nil, err
	}
	return liths, nodes, nil
}

// readLithologyProperties parses the properties file: the first line carries
// the event count N as its third token, lithology definitions start at line
// N+3 (0-based) and run to end of file.
func readLithologyProperties(ctx context.Context, src source.Source, basename string) (map[int]LithologyProperty, error) {
	name := basename + propertiesSuffix
	f, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return nil, parseErrf(name, 1, "missing event count header: %w", ErrFormat)
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 3 {
		return nil, parseErrf(name, 1, "event count header has %d fields, need 3: %w", len(header), ErrFormat)
	}
	nevents, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, parseErrf(name, 1, "event count %q: %w", header[2], ErrFormat)
	}

	props := make(map[int]LithologyProperty)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		// Definitions begin at line index nevents+3; everything before is
		// event metadata.
		if lineNo <= nevents+3 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 6 {
			return nil, parseErrf(name, lineNo, "lithology definition has %d fields, need at least 6: %w", len(fields), ErrFormat)
		}

		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, parseErrf(name, lineNo, "lithology code %q: %w", fields[0], ErrFormat)
		}

		var colour Colour
		for i := 0; i < 3; i++ {
			ch, err := strconv.ParseFloat(fields[len(fields)-3+i], 64)
			if err != nil {
				return nil, parseErrf(name, lineNo, "colour channel %q: %w", fields[len(fields)-3+i], ErrFormat)
			}
			colour[i] = ch / 255.0
		}

		props[code] = LithologyProperty{
			Code: code,
			// The name may contain internal whitespace; it spans the tokens
			// between the leading pair and the trailing colour triple.
			Name:   strings.Join(fields[2:len(fields)-3], " "),
			Colour: colour,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return props, nil
}

// readNodeProperties parses the vertex file. Only lines whose first token is
// the PVRTX marker are records; fields 2-4 are the centroid, 5 the lithology
// code, 6 the topology code, 7 the voxel volume.
func readNodeProperties(ctx context.Context, src source.Source, basename string) (map[NodeKey]NodeProperty, error) {
	name := basename + vertexSuffix
	f, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	props := make(map[NodeKey]NodeProperty)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != vertexMarker {
			continue
		}
		if len(fields) < 8 {
			return nil, parseErrf(name, lineNo, "vertex record has %d fields, need 8: %w", len(fields), ErrFormat)
		}

		var p NodeProperty
		for i := 0; i < 3; i++ {
			c, err := strconv.ParseFloat(fields[2+i], 64)
			if err != nil {
				return nil, parseErrf(name, lineNo, "centroid coordinate %q: %w", fields[2+i], ErrFormat)
			}
			p.Centroid[i] = c
		}
		p.Lithology, err = strconv.Atoi(fields[5])
		if err != nil {
			return nil, parseErrf(name, lineNo, "lithology code %q: %w", fields[5], ErrFormat)
		}
		p.Topology = fields[6]
		p.Volume, err = strconv.ParseInt(fields[7], 10, 64)
		if err != nil {
			return nil, parseErrf(name, lineNo, "volume %q: %w", fields[7], ErrFormat)
		}
		if p.Volume < 0 {
			return nil, parseErrf(name, lineNo, "volume %d is negative: %w", p.Volume, ErrFormat)
		}

		props[p.Key()] = p
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return props, nil
}
