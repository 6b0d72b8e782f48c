package dlx

import (
	"fmt"
	"sort"
)

// Matrix is a sparse binary matrix represented as intersecting circular
// doubly linked lists. It owns every Cell and HeaderCell it creates; no
// cell is ever individually deallocated, only unlinked and relinked by
// Cover/Uncover.
type Matrix struct {
	root    *HeaderCell
	columns []*HeaderCell
	rows    []*Cell // first cell of each row, indexed by row number

	rowNumberToName map[int]string
	rowNameToNumber map[string]int
}

// NewMatrix creates a matrix with one column per label, spliced into the
// root's horizontal ring in order so that root.Right is column 0 and
// root.Left is the last column.
func NewMatrix(columnLabels []string) *Matrix {
	m := &Matrix{
		root:            &HeaderCell{Name: "root"},
		columns:         make([]*HeaderCell, 0, len(columnLabels)),
		rowNumberToName: make(map[int]string),
		rowNameToNumber: make(map[string]int),
	}
	selfLink(&m.root.Cell)
	m.root.Column = m.root

	for i, label := range columnLabels {
		col := &HeaderCell{Name: label}
		selfLink(&col.Cell)
		col.Column = col
		col.ColumnNumber = i

		col.Left = m.root.Left
		col.Right = &m.root.Cell
		m.root.Left.Right = &col.Cell
		m.root.Left = &col.Cell

		m.columns = append(m.columns, col)
	}
	return m
}

// NewMatrixOfSize creates a matrix with n columns named "0".."n-1", the
// convenience form for callers that don't care about column labels.
func NewMatrixOfSize(n int) *Matrix {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
	}
	return NewMatrix(labels)
}

// Root returns the root sentinel header. The matrix is fully covered iff
// Root().Right == &Root().Cell.
func (m *Matrix) Root() *HeaderCell {
	return m.root
}

// NumColumns returns the number of columns the matrix was constructed
// with (covered or not).
func (m *Matrix) NumColumns() int {
	return len(m.columns)
}

// NumRows returns the number of rows inserted so far.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

// Column returns the header for column index i.
func (m *Matrix) Column(i int) *HeaderCell {
	return m.columns[i]
}

// RowName returns the caller-supplied name for rowNumber.
func (m *Matrix) RowName(rowNumber int) (string, bool) {
	name, ok := m.rowNumberToName[rowNumber]
	return name, ok
}

// RowNumber returns the row number assigned to rowName.
func (m *Matrix) RowNumber(rowName string) (int, bool) {
	n, ok := m.rowNameToNumber[rowName]
	return n, ok
}

// AddRow appends a sparse row to the matrix. columnIndices need not be
// sorted on input, but must be unique and lie in [0, NumColumns); a row
// with a duplicate index is rejected: duplicate indices in a single row
// are a precondition violation, not something to silently collapse.
func (m *Matrix) AddRow(rowName string, columnIndices []int) error {
	if len(columnIndices) == 0 {
		return fmt.Errorf("dlx: row %q has no columns", rowName)
	}

	sorted := append([]int(nil), columnIndices...)
	sort.Ints(sorted)
	for i, idx := range sorted {
		if idx < 0 || idx >= len(m.columns) {
			return fmt.Errorf("dlx: row %q references out-of-range column %d", rowName, idx)
		}
		if i > 0 && sorted[i] == sorted[i-1] {
			return fmt.Errorf("dlx: row %q has duplicate column index %d", rowName, idx)
		}
	}

	rowNumber := len(m.rows)
	cells := make([]*Cell, len(sorted))
	for i, idx := range sorted {
		header := m.columns[idx]
		cell := &Cell{RowNumber: rowNumber, ColumnNumber: idx, Column: header}
		header.appendToColumn(cell)
		cells[i] = cell
	}
	n := len(cells)
	for i, cell := range cells {
		cell.Left = cells[(i-1+n)%n]
		cell.Right = cells[(i+1)%n]
	}

	m.rows = append(m.rows, cells[0])
	m.rowNumberToName[rowNumber] = rowName
	m.rowNameToNumber[rowName] = rowNumber
	return nil
}

// appendToColumn splices cell into h's vertical ring at the tail, i.e.
// between h's current last cell (h.Up) and h itself. This keeps a
// column's Down traversal in ascending row-number order, which is what
// spec.md's Ordering invariant requires.
func (h *HeaderCell) appendToColumn(cell *Cell) {
	tail := h.Up
	cell.Down = &h.Cell
	cell.Up = tail
	tail.Down = cell
	h.Up = cell
	h.Size++
}

// Cover removes column columnIndex from the header ring along with every
// row that intersects it, leaving their horizontal links intact so that
// Uncover can restore the exact prior topology.
func (m *Matrix) Cover(columnIndex int) {
	m.CoverHeader(m.columns[columnIndex])
}

// Uncover is the exact mirror of Cover, restoring columnIndex and every
// row unlinked by the matching Cover call.
func (m *Matrix) Uncover(columnIndex int) {
	m.UncoverHeader(m.columns[columnIndex])
}

// CoverHeader is the header-pointer form of Cover, used internally by the
// solver so it never has to round-trip through a column index while
// walking the matrix.
func (m *Matrix) CoverHeader(h *HeaderCell) {
	h.Right.Left = h.Left
	h.Left.Right = h.Right

	for i := h.Down; i != &h.Cell; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			j.Down.Up = j.Up
			j.Up.Down = j.Down
			j.Column.Size--
		}
	}
}

// UncoverHeader is the header-pointer form of Uncover.
func (m *Matrix) UncoverHeader(h *HeaderCell) {
	for i := h.Up; i != &h.Cell; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			j.Column.Size++
			j.Down.Up = j
			j.Up.Down = j
		}
	}

	h.Right.Left = &h.Cell
	h.Left.Right = &h.Cell
}

// MatrixInfo summarizes the shape of a matrix for diagnostics. It plays
// no role in the algorithm itself.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64
}

// Stats computes a MatrixInfo snapshot of the matrix's current state.
// Columns counts only the columns currently linked to the root (covered
// columns are not counted); Rows and TotalNodes count every inserted row,
// covered or not.
func (m *Matrix) Stats() MatrixInfo {
	info := MatrixInfo{Rows: len(m.rows)}

	for range m.root.Walk(DirRight) {
		info.Columns++
	}

	for _, row := range m.rows {
		if row == nil {
			continue
		}
		nodes := 1
		for range row.Walk(DirRight) {
			nodes++
		}
		info.TotalNodes += nodes
	}

	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}
