package tables

import (
	"testing"

	"github.com/tsawler/folio/model"
)

// uniformGrid reports rows x cols cells of 9x9 units on a 10-unit pitch
// (1-unit gaps), with columns starting at x=1. Bounds are anchor-relative.
func uniformGrid(rows, cols int) *Accumulator {
	acc := NewAccumulator()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			acc.Add(CellReport{
				Row:    r,
				Col:    c,
				Bounds: model.NewRect(1+10*float64(c), 10*float64(r), 9, 9),
			})
		}
	}
	return acc
}

func TestGridIndices(t *testing.T) {
	grid := uniformGrid(2, 3).Resolve(model.NewRect(0, 0, 31, 19))

	rows := grid.RowIndices()
	if len(rows) != 2 || rows[0] != 0 || rows[1] != 1 {
		t.Errorf("Expected row indices [0 1], got %v", rows)
	}
	cols := grid.ColumnIndices()
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 1 || cols[2] != 2 {
		t.Errorf("Expected column indices [0 1 2], got %v", cols)
	}
}

func TestGridRowBoundsIsUnionOfRow(t *testing.T) {
	grid := uniformGrid(2, 3).Resolve(model.NewRect(0, 0, 31, 19))

	for _, row := range grid.RowIndices() {
		var want model.Rect
		first := true
		for _, col := range grid.ColumnIndices() {
			cell, ok := grid.CellBounds(row, col)
			if !ok {
				t.Fatalf("Expected cell (%d, %d)", row, col)
			}
			if first {
				want = cell
				first = false
			} else {
				want = want.Union(cell)
			}
		}
		if got := grid.RowBounds(row); got != want {
			t.Errorf("RowBounds(%d) = %v, want exact union %v", row, got, want)
		}
	}
}

func TestGridDividerScenario(t *testing.T) {
	// 2 rows x 3 columns of uniform cells with 1-unit spacing: exactly
	// one horizontal divider at y=9.5 and two vertical dividers at
	// x=10.5 and x=20.5.
	grid := uniformGrid(2, 3).Resolve(model.NewRect(0, 0, 31, 19))

	dividers := grid.Dividers()
	if len(dividers) != 3 {
		t.Fatalf("Expected 3 dividers, got %d: %v", len(dividers), dividers)
	}

	horizontal := dividers[0]
	if horizontal.Y != 9.5 {
		t.Errorf("Expected horizontal divider at y=9.5, got %f", horizontal.Y)
	}
	if horizontal.Height != 0 {
		t.Errorf("Expected degenerate (zero-height) horizontal divider, got height %f", horizontal.Height)
	}
	if horizontal.Left() != 1 || horizontal.Right() != 30 {
		t.Errorf("Expected horizontal divider to span table x [1, 30], got [%f, %f]",
			horizontal.Left(), horizontal.Right())
	}

	wantX := []float64{10.5, 20.5}
	for i, vertical := range dividers[1:] {
		if vertical.X != wantX[i] {
			t.Errorf("Expected vertical divider %d at x=%f, got %f", i, wantX[i], vertical.X)
		}
		if vertical.Width != 0 {
			t.Errorf("Expected degenerate (zero-width) vertical divider, got width %f", vertical.Width)
		}
		if vertical.Top() != 0 || vertical.Bottom() != 19 {
			t.Errorf("Expected vertical divider to span table y [0, 19], got [%f, %f]",
				vertical.Top(), vertical.Bottom())
		}
	}
}

func TestGridDividerCountLaw(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{1, 1},
		{1, 4},
		{3, 1},
		{2, 3},
		{4, 5},
	}

	for _, tt := range tests {
		grid := uniformGrid(tt.rows, tt.cols).Resolve(model.NewRect(0, 0, 100, 100))
		want := (tt.rows - 1) + (tt.cols - 1)
		if got := len(grid.Dividers()); got != want {
			t.Errorf("%dx%d grid: expected %d dividers, got %d", tt.rows, tt.cols, want, got)
		}
	}
}

func TestGridUnobservedIndexDegrades(t *testing.T) {
	frame := model.NewRect(40, 50, 31, 19)
	grid := uniformGrid(2, 3).Resolve(frame)

	want := model.Rect{X: 40, Y: 50}
	if got := grid.RowBounds(7); got != want {
		t.Errorf("Expected zero-area rect at table origin for unobserved row, got %v", got)
	}
	if got := grid.ColumnBounds(-1); got != want {
		t.Errorf("Expected zero-area rect at table origin for unobserved column, got %v", got)
	}
}

func TestEmptyGrid(t *testing.T) {
	grid := NewAccumulator().Resolve(model.NewRect(5, 6, 10, 10))

	if grid.RowCount() != 0 || grid.ColumnCount() != 0 {
		t.Errorf("Expected no rows/columns, got %d/%d", grid.RowCount(), grid.ColumnCount())
	}
	if len(grid.Dividers()) != 0 {
		t.Error("Expected no dividers for an empty grid")
	}
	if got := grid.Bounds(); got != (model.Rect{X: 5, Y: 6}) {
		t.Errorf("Expected zero-area bounds at origin, got %v", got)
	}
}

func TestGridSparseRow(t *testing.T) {
	// A row observed in only one column still yields exact union bounds.
	acc := NewAccumulator()
	acc.Add(CellReport{Row: 0, Col: 0, Bounds: model.NewRect(0, 0, 10, 10)})
	acc.Add(CellReport{Row: 0, Col: 1, Bounds: model.NewRect(11, 0, 10, 10)})
	acc.Add(CellReport{Row: 1, Col: 1, Bounds: model.NewRect(11, 11, 10, 10)})

	grid := acc.Resolve(model.NewRect(0, 0, 21, 21))

	if got := grid.RowBounds(1); got != model.NewRect(11, 11, 10, 10) {
		t.Errorf("Expected sparse row bounds (11, 11, 10, 10), got %v", got)
	}
	if got := grid.ColumnBounds(1); got != model.NewRect(11, 0, 10, 21) {
		t.Errorf("Expected column 1 bounds (11, 0, 10, 21), got %v", got)
	}
}
