package tables

import "github.com/tsawler/folio/model"

// CellReport is one rendered cell's geometry report: its bounds relative
// to the table's anchor, plus its grid coordinate.
type CellReport struct {
	// Row is the cell's 0-based row index
	Row int

	// Col is the cell's 0-based column index
	Col int

	// Bounds is the cell's bounding box in anchor-relative coordinates,
	// resolved against the table's frame during the resolution pass
	Bounds model.Rect
}

// cellKey identifies one grid coordinate
type cellKey struct {
	row, col int
}

// Accumulator gathers cell reports during the collection pass. Reports
// merge order-independently into a mapping keyed by (row, column); a
// duplicate key overwrites the previous report (last write wins).
//
// An accumulator belongs to a single layout pass and a single goroutine.
// Resolve must only be called once reporting is complete.
type Accumulator struct {
	cells map[cellKey]model.Rect
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{
		cells: make(map[cellKey]model.Rect),
	}
}

// Add records one cell report
func (a *Accumulator) Add(report CellReport) {
	a.cells[cellKey{row: report.Row, col: report.Col}] = report.Bounds
}

// Len returns the number of distinct (row, column) coordinates observed
func (a *Accumulator) Len() int {
	return len(a.cells)
}

// Reports returns the accumulated reports in unspecified order
func (a *Accumulator) Reports() []CellReport {
	reports := make([]CellReport, 0, len(a.cells))
	for key, bounds := range a.cells {
		reports = append(reports, CellReport{Row: key.row, Col: key.col, Bounds: bounds})
	}
	return reports
}

// Resolve runs the resolution pass: every anchor-relative bound is
// translated into absolute shared space against the table's frame, and
// row, column, and divider geometry is derived. The returned grid is
// immutable; the accumulator may be discarded afterwards.
func (a *Accumulator) Resolve(frame model.Rect) *Grid {
	origin := model.Point{X: frame.X, Y: frame.Y}

	resolved := make(map[cellKey]model.Rect, len(a.cells))
	for key, bounds := range a.cells {
		resolved[key] = bounds.Translate(origin)
	}

	return newGrid(origin, resolved)
}
