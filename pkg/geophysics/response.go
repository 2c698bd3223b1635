// Package geophysics reads the calculated geophysical response grids of a
// simulation run: the gravity (.grv) and magnetic field (.mag) exports.
package geophysics

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/freestylewhl/pynoddy/pkg/source"
)

const (
	gravitySuffix   = ".grv"
	magneticsSuffix = ".mag"

	// Both formats carry a fixed-size preamble before the data rows.
	headerLines = 8
)

// ErrFormat marks a malformed response file.
var ErrFormat = errors.New("malformed record")

// ResponseGrid is one calculated response: the preserved header lines and a
// dense row-major value grid.
type ResponseGrid struct {
	Header []string
	Data   [][]float64
}

// Rows returns the number of data rows.
func (g *ResponseGrid) Rows() int { return len(g.Data) }

// Cols returns the number of data columns (0 for an empty grid).
func (g *ResponseGrid) Cols() int {
	if len(g.Data) == 0 {
		return 0
	}
	return len(g.Data[0])
}

// Response bundles the two calculated responses of one model.
type Response struct {
	Basename  string
	Gravity   *ResponseGrid
	Magnetics *ResponseGrid
}

// Load reads the gravity and magnetics grids of the model at basename.
func Load(ctx context.Context, src source.Source, basename string) (*Response, error) {
	grv, err := readGrid(ctx, src, basename+gravitySuffix)
	if err != nil {
		return nil, err
	}
	mag, err := readGrid(ctx, src, basename+magneticsSuffix)
	if err != nil {
		return nil, err
	}
	return &Response{Basename: basename, Gravity: grv, Magnetics: mag}, nil
}

// ReadGravity reads only the gravity response.
func ReadGravity(ctx context.Context, src source.Source, basename string) (*ResponseGrid, error) {
	return readGrid(ctx, src, basename+gravitySuffix)
}

// ReadMagnetics reads only the magnetic field response.
func ReadMagnetics(ctx context.Context, src source.Source, basename string) (*ResponseGrid, error) {
	return readGrid(ctx, src, basename+magneticsSuffix)
}

func readGrid(ctx context.Context, src source.Source, name string) (*ResponseGrid, error) {
	f, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	grid := &ResponseGrid{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if lineNo <= headerLines {
			grid.Header = append(grid.Header, line)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(strings.TrimRight(line, "\t "), "\t")
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: value %q: %w", name, lineNo, field, ErrFormat)
			}
			row[i] = v
		}
		if grid.Cols() != 0 && len(row) != grid.Cols() {
			return nil, fmt.Errorf("%s:%d: row has %d values, want %d: %w", name, lineNo, len(row), grid.Cols(), ErrFormat)
		}
		grid.Data = append(grid.Data, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(grid.Header) < headerLines {
		return nil, fmt.Errorf("%s: truncated header, got %d lines, want %d: %w", name, len(grid.Header), headerLines, ErrFormat)
	}
	return grid, nil
}
