package tables

import (
	"sort"

	"github.com/tsawler/folio/model"
)

// Grid is the resolved geometry of one table: absolute cell rectangles in
// shared space plus derived row, column, and divider bounds. A grid is
// immutable once produced by [Accumulator.Resolve].
type Grid struct {
	origin model.Point
	cells  map[cellKey]model.Rect

	rows []int
	cols []int

	rowBounds map[int]model.Rect
	colBounds map[int]model.Rect

	bounds model.Rect
}

// newGrid derives all row and column geometry from resolved cell rects
func newGrid(origin model.Point, cells map[cellKey]model.Rect) *Grid {
	g := &Grid{
		origin:    origin,
		cells:     cells,
		rowBounds: make(map[int]model.Rect),
		colBounds: make(map[int]model.Rect),
	}

	hasBounds := false
	for key, rect := range cells {
		if rb, ok := g.rowBounds[key.row]; ok {
			g.rowBounds[key.row] = rb.Union(rect)
		} else {
			g.rowBounds[key.row] = rect
			g.rows = append(g.rows, key.row)
		}
		if cb, ok := g.colBounds[key.col]; ok {
			g.colBounds[key.col] = cb.Union(rect)
		} else {
			g.colBounds[key.col] = rect
			g.cols = append(g.cols, key.col)
		}
		if hasBounds {
			g.bounds = g.bounds.Union(rect)
		} else {
			g.bounds = rect
			hasBounds = true
		}
	}
	if !hasBounds {
		g.bounds = model.Rect{X: origin.X, Y: origin.Y}
	}

	sort.Ints(g.rows)
	sort.Ints(g.cols)
	return g
}

// RowIndices returns the distinct row indices actually observed, sorted
func (g *Grid) RowIndices() []int {
	return g.rows
}

// ColumnIndices returns the distinct column indices actually observed, sorted
func (g *Grid) ColumnIndices() []int {
	return g.cols
}

// RowCount returns the number of distinct observed rows
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColumnCount returns the number of distinct observed columns
func (g *Grid) ColumnCount() int {
	return len(g.cols)
}

// Bounds returns the union of all resolved cell rectangles. For a grid
// with no cells it is a zero-area rectangle at the table origin.
func (g *Grid) Bounds() model.Rect {
	return g.bounds
}

// CellBounds returns the resolved shared-space rectangle of one cell
func (g *Grid) CellBounds(row, col int) (model.Rect, bool) {
	rect, ok := g.cells[cellKey{row: row, col: col}]
	return rect, ok
}

// RowBounds returns the union of all resolved cell rectangles sharing the
// given row index. For a row with no observed cells it returns a zero-area
// rectangle at the table origin, so grid rendering degrades to a no-op
// line rather than failing.
func (g *Grid) RowBounds(row int) model.Rect {
	if rect, ok := g.rowBounds[row]; ok {
		return rect
	}
	return model.Rect{X: g.origin.X, Y: g.origin.Y}
}

// ColumnBounds returns the union of all resolved cell rectangles sharing
// the given column index, with the same degraded result as [Grid.RowBounds]
// for unobserved columns.
func (g *Grid) ColumnBounds(col int) model.Rect {
	if rect, ok := g.colBounds[col]; ok {
		return rect
	}
	return model.Rect{X: g.origin.X, Y: g.origin.Y}
}

// Dividers returns degenerate rectangles (zero height for row dividers,
// zero width for column dividers) at each internal boundary between
// adjacent observed rows and columns. Each segment sits at the midpoint of
// the gap between the neighboring bounds and spans the full table bounds
// on the perpendicular axis. Row dividers precede column dividers; within
// each group segments are ordered by index.
func (g *Grid) Dividers() []model.Rect {
	var dividers []model.Rect

	for i := 0; i+1 < len(g.rows); i++ {
		above := g.rowBounds[g.rows[i]]
		below := g.rowBounds[g.rows[i+1]]
		y := (above.Bottom() + below.Top()) / 2
		dividers = append(dividers, model.Rect{
			X:     g.bounds.Left(),
			Y:     y,
			Width: g.bounds.Width,
		})
	}

	for i := 0; i+1 < len(g.cols); i++ {
		left := g.colBounds[g.cols[i]]
		right := g.colBounds[g.cols[i+1]]
		x := (left.Right() + right.Left()) / 2
		dividers = append(dividers, model.Rect{
			X:      x,
			Y:      g.bounds.Top(),
			Height: g.bounds.Height,
		})
	}

	return dividers
}
