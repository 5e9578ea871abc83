// SPDX-License-Identifier: MIT

package frame

// MultiFrame is a long-format panel: each row is keyed by (instance, time).
//
// Rows of one instance are expected to be contiguous and ordered by time;
// Data is column-major with len(Data[j]) == len(Instances) == len(Times).
type MultiFrame struct {
	Columns   []string
	Instances []string
	Times     []int64
	Data      [][]float64
}

// Rows returns the number of (instance, time) rows.
func (m *MultiFrame) Rows() int { return len(m.Instances) }

// InstanceIDs returns the distinct instance keys in first-seen order.
func (m *MultiFrame) InstanceIDs() []string {
	seen := make(map[string]struct{}, len(m.Instances))
	var ids []string
	for _, id := range m.Instances {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// Instance extracts the rows of one instance as a Frame over an IntIndex of
// its time keys.
func (m *MultiFrame) Instance(id string) (*Frame, error) {
	var rows []int
	for r, inst := range m.Instances {
		if inst == id {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, frameErrorf("MultiFrame", "Instance", ErrUnknownColumn)
	}
	times := make([]int64, len(rows))
	data := make([][]float64, len(m.Columns))
	for j := range m.Columns {
		if j >= len(m.Data) {
			return nil, frameErrorf("MultiFrame", "Instance", ErrLengthMismatch)
		}
		data[j] = make([]float64, len(rows))
	}
	for k, r := range rows {
		if r >= len(m.Times) {
			return nil, frameErrorf("MultiFrame", "Instance", ErrLengthMismatch)
		}
		times[k] = m.Times[r]
		for j := range m.Columns {
			if r >= len(m.Data[j]) {
				return nil, frameErrorf("MultiFrame", "Instance", ErrLengthMismatch)
			}
			data[j][k] = m.Data[j][r]
		}
	}

	return &Frame{Columns: append([]string(nil), m.Columns...), Index: NewIntIndex(times), Data: data}, nil
}

// HasNaNs reports whether any cell is NaN.
func (m *MultiFrame) HasNaNs() bool {
	for _, col := range m.Data {
		if hasNaN(col) {
			return true
		}
	}

	return false
}

// Nested is a wide panel: one row per instance, one column per variable, and
// every cell is expected to hold a *Series. Cells are typed any so that
// malformed grids can be represented and rejected by validation.
type Nested struct {
	Columns []string
	Cells   [][]any
}

// NewNested builds a Nested panel from per-instance, per-variable series.
func NewNested(columns []string, rows [][]*Series) (*Nested, error) {
	cells := make([][]any, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, frameErrorf("Nested", "New", ErrLengthMismatch)
		}
		cells[i] = make([]any, len(row))
		for j, s := range row {
			cells[i][j] = s
		}
	}

	return &Nested{Columns: append([]string(nil), columns...), Cells: cells}, nil
}

// Rows returns the number of instances.
func (n *Nested) Rows() int { return len(n.Cells) }
