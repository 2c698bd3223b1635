package grid

import (
	"fmt"
	"sort"
)

// CheckDimensions verifies the two models share grid dimensions, cell sizes,
// and origin; block arithmetic requires compatible discretisations.
func (m *BlockModel) CheckDimensions(other *BlockModel) error {
	if m.NX != other.NX || m.NY != other.NY || m.NZ != other.NZ {
		return fmt.Errorf("%dx%dx%d vs %dx%dx%d: %w",
			m.NX, m.NY, m.NZ, other.NX, other.NY, other.NZ, ErrDimensionMismatch)
	}
	if m.DelX != other.DelX || m.DelY != other.DelY || m.DelZ != other.DelZ {
		return fmt.Errorf("cell sizes differ: %w", ErrDimensionMismatch)
	}
	if m.XMin != other.XMin || m.YMin != other.YMin || m.ZMin != other.ZMin {
		return fmt.Errorf("origins differ: %w", ErrDimensionMismatch)
	}
	return nil
}

// clone copies everything including the block data.
func (m *BlockModel) clone() *BlockModel {
	out := *m
	out.block = make([]float64, len(m.block))
	copy(out.block, m.block)
	return &out
}

// Add returns a new model whose block values are the cell-wise sum.
func (m *BlockModel) Add(other *BlockModel) (*BlockModel, error) {
	if err := m.CheckDimensions(other); err != nil {
		return nil, err
	}
	out := m.clone()
	for i := range out.block {
		out.block[i] += other.block[i]
	}
	return out, nil
}

// Sub returns a new model whose block values are the cell-wise difference.
func (m *BlockModel) Sub(other *BlockModel) (*BlockModel, error) {
	if err := m.CheckDimensions(other); err != nil {
		return nil, err
	}
	out := m.clone()
	for i := range out.block {
		out.block[i] -= other.block[i]
	}
	return out, nil
}

// AddInPlace adds the other model's block values to this model's.
func (m *BlockModel) AddInPlace(other *BlockModel) error {
	if err := m.CheckDimensions(other); err != nil {
		return err
	}
	for i := range m.block {
		m.block[i] += other.block[i]
	}
	return nil
}

// SubInPlace subtracts the other model's block values from this model's.
func (m *BlockModel) SubInPlace(other *BlockModel) error {
	if err := m.CheckDimensions(other); err != nil {
		return err
	}
	for i := range m.block {
		m.block[i] -= other.block[i]
	}
	return nil
}

// AddScalar adds x to every cell in place.
func (m *BlockModel) AddScalar(x float64) {
	for i := range m.block {
		m.block[i] += x
	}
}

// UnitVolume holds the total volume of one geological unit in the block.
type UnitVolume struct {
	UnitID int
	Volume float64
}

// UnitVolumes sums cell volumes per geology id, ordered by id.
func (m *BlockModel) UnitVolumes() []UnitVolume {
	cellVolume := m.DelX * m.DelY * m.DelZ
	counts := make(map[int]int)
	for _, v := range m.block {
		counts[int(v)]++
	}

	out := make([]UnitVolume, 0, len(counts))
	for id, n := range counts {
		out = append(out, UnitVolume{UnitID: id, Volume: float64(n) * cellVolume})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitID < out[j].UnitID })
	return out
}

// Axis selects the coordinate direction of a section.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Section extracts a 2-D slice through the block at the given cell position
// along the axis; pos < 0 selects the centre. The result is row-major with
// the second coordinate direction as columns and the third as rows, the
// orientation section plotters expect. Rendering is the caller's concern.
func (m *BlockModel) Section(axis Axis, pos int) ([][]float64, int, error) {
	var limit int
	switch axis {
	case AxisX:
		limit = m.NX
	case AxisY:
		limit = m.NY
	case AxisZ:
		limit = m.NZ
	default:
		return nil, 0, fmt.Errorf("unknown axis %d", axis)
	}
	if pos < 0 {
		pos = limit / 2
	}
	if pos >= limit {
		return nil, 0, fmt.Errorf("section position %d outside 0..%d", pos, limit-1)
	}

	var rows, cols int
	var at func(r, c int) float64
	switch axis {
	case AxisX:
		rows, cols = m.NZ, m.NY
		at = func(r, c int) float64 { return m.At(pos, c, r) }
	case AxisY:
		rows, cols = m.NZ, m.NX
		at = func(r, c int) float64 { return m.At(c, pos, r) }
	case AxisZ:
		rows, cols = m.NY, m.NX
		at = func(r, c int) float64 { return m.At(c, r, pos) }
	}

	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = at(r, c)
		}
	}
	return out, pos, nil
}
