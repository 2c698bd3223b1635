// Package grid reads and analyses the regular voxel block model a simulation
// run exports: the discretisation header and the per-voxel geology ids.
package grid

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
	headerSuffix = ".g00" // model discretisation header
	blockSuffix  = ".g12" // voxel geology ids, one z-slice per blank-separated block
)

// ErrFormat marks a malformed header or voxel record.
var ErrFormat = errors.New("malformed record")

// ErrDimensionMismatch is returned by block arithmetic when the two models
// are discretised differently.
var ErrDimensionMismatch = errors.New("model dimensions do not agree")

// BlockModel is one run's discretised geology: grid dimensions, world-space
// extent, and the block of geology ids. Values are stored as float64 so
// block arithmetic (sums, differences across an ensemble) stays closed.
type BlockModel struct {
	Basename string

	NX, NY, NZ int
	NRockTypes int

	XMin, YMin, ZMin float64
	XMax, YMax, ZMax float64

	// Derived cell sizes.
	DelX, DelY, DelZ float64

	block []float64 // len NX*NY*NZ, x-major then y then z
}

// ExtentX returns the model's extent along x.
func (m *BlockModel) ExtentX() float64 { return m.XMax - m.XMin }

// ExtentY returns the model's extent along y.
func (m *BlockModel) ExtentY() float64 { return m.YMax - m.YMin }

// ExtentZ returns the model's extent along z.
func (m *BlockModel) ExtentZ() float64 { return m.ZMax - m.ZMin }

// At returns the value at cell (i, j, k).
func (m *BlockModel) At(i, j, k int) float64 {
	return m.block[(i*m.NY+j)*m.NZ+k]
}

// Set sets the value at cell (i, j, k).
func (m *BlockModel) Set(i, j, k int, v float64) {
	m.block[(i*m.NY+j)*m.NZ+k] = v
}

// CellCount returns the total number of cells.
func (m *BlockModel) CellCount() int {
	return m.NX * m.NY * m.NZ
}

// LoadBlockModel reads the header and voxel files of the model at basename.
func LoadBlockModel(ctx context.Context, src source.Source, basename string) (*BlockModel, error) {
	m := &BlockModel{Basename: basename}
	if err := m.loadHeader(ctx, src); err != nil {
		return nil, err
	}
	if err := m.loadBlock(ctx, src); err != nil {
		return nil, err
	}
	return m, nil
}

// loadHeader parses the key=value discretisation header.
func (m *BlockModel) loadHeader(ctx context.Context, src source.Source) error {
	name := m.Basename + headerSuffix
	f, err := src.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		_, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		fields := strings.Fields(value)

		switch {
		case strings.Contains(line, "NUMBER OF LAYERS"):
			m.NZ, err = atoiField(name, fields, 0)
		case strings.Contains(line, "LAYER 1 DIMENSIONS"):
			if m.NX, err = atoiField(name, fields, 0); err == nil {
				m.NY, err = atoiField(name, fields, 1)
			}
		case strings.Contains(line, "UPPER SW CORNER"):
			if err = floatFields(name, fields, &m.XMin, &m.YMin, &m.ZMax); err != nil {
				return err
			}
		case strings.Contains(line, "LOWER NE CORNER"):
			if err = floatFields(name, fields, &m.XMax, &m.YMax, &m.ZMin); err != nil {
				return err
			}
		case strings.Contains(line, "NUM ROCK"):
			m.NRockTypes, err = atoiField(name, fields, 0)
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if m.NX <= 0 || m.NY <= 0 || m.NZ <= 0 {
		return fmt.Errorf("%s: incomplete dimensions %dx%dx%d: %w", name, m.NX, m.NY, m.NZ, ErrFormat)
	}

	m.DelX = m.ExtentX() / float64(m.NX)
	m.DelY = m.ExtentY() / float64(m.NY)
	m.DelZ = m.ExtentZ() / float64(m.NZ)
	return nil
}

// loadBlock reads the voxel grid. The file holds one z-slice per
// blank-line-separated block, each slice one tab-separated row per x index;
// rows are stored reversed along y and slices stacked top-down, matching the
// exporter's layout.
func (m *BlockModel) loadBlock(ctx context.Context, src source.Source) error {
	name := m.Basename + blockSuffix
	f, err := src.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	m.block = make([]float64, m.CellCount())

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	i, k, lineNo := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			// blank line: next z-slice, x restarts
			k++
			i = 0
			continue
		}
		values := strings.Split(strings.TrimRight(line, "\t "), "\t")
		if len(values) != m.NY {
			return fmt.Errorf("%s:%d: row has %d values, want %d: %w", name, lineNo, len(values), m.NY, ErrFormat)
		}
		if i >= m.NX || k >= m.NZ {
			return fmt.Errorf("%s:%d: more rows than the %dx%dx%d grid holds: %w", name, lineNo, m.NX, m.NY, m.NZ, ErrFormat)
		}
		for col, s := range values {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("%s:%d: geology id %q: %w", name, lineNo, s, ErrFormat)
			}
			m.Set(i, m.NY-1-col, m.NZ-1-k, float64(v))
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func atoiField(file string, fields []string, idx int) (int, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("%s: missing field %d: %w", file, idx, ErrFormat)
	}
	v, err := strconv.Atoi(fields[idx])
	if err != nil {
		return 0, fmt.Errorf("%s: field %q: %w", file, fields[idx], ErrFormat)
	}
	return v, nil
}

func floatFields(file string, fields []string, dst ...*float64) error {
	if len(fields) < len(dst) {
		return fmt.Errorf("%s: got %d fields, want %d: %w", file, len(fields), len(dst), ErrFormat)
	}
	for i, d := range dst {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return fmt.Errorf("%s: field %q: %w", file, fields[i], ErrFormat)
		}
		*d = v
	}
	return nil
}
