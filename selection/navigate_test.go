package selection

import (
	"testing"

	"github.com/tsawler/folio/model"
)

func TestIsAtBlockBoundaryExhaustive(t *testing.T) {
	c := testCollection()
	e := New(c)

	// Every slice path with every affinity: a position is a block
	// boundary iff it is its layout's first slice with downstream
	// affinity or its last slice with upstream affinity.
	for li, layout := range c.Layouts {
		start, hasStart := c.LayoutStart(li)
		end, hasEnd := c.LayoutEnd(li)

		for lineIdx, line := range layout.Lines {
			for runIdx, run := range line.Runs {
				for sliceIdx := range run.Slices {
					path := model.IndexPath{Layout: li, Line: lineIdx, Run: runIdx, Slice: sliceIdx}
					for _, aff := range []model.Affinity{model.Downstream, model.Upstream} {
						pos := model.TextPosition{Path: path, Affinity: aff}
						want := (hasStart && pos == start) || (hasEnd && pos == end)
						if got := e.IsAtBlockBoundary(pos); got != want {
							t.Errorf("IsAtBlockBoundary(%v) = %v, want %v", pos, got, want)
						}
					}
				}
			}
		}
	}
}

func TestIsAtBlockBoundaryOutOfRange(t *testing.T) {
	e := New(testCollection())

	if e.IsAtBlockBoundary(model.TextPosition{Path: model.IndexPath{Layout: 9}}) {
		t.Error("Expected out-of-range position not to be a boundary")
	}
	if e.IsAtBlockBoundary(model.TextPosition{Path: model.IndexPath{Layout: 1}}) {
		t.Error("Expected position in empty layout not to be a boundary")
	}
}

func TestVerticalNavigationRejectsInvalidPath(t *testing.T) {
	e := New(testCollection())

	anchor := model.TextPosition{
		Path: model.IndexPath{Layout: 0, Line: 0, Run: 0, Slice: 0},
	}
	tests := []struct {
		name string
		path model.IndexPath
	}{
		{"line out of range", model.IndexPath{Layout: 0, Line: 99}},
		{"run out of range", model.IndexPath{Layout: 0, Line: 0, Run: 9}},
		{"slice out of range", model.IndexPath{Layout: 0, Line: 0, Run: 0, Slice: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := model.TextPosition{Path: tt.path}
			if _, ok := e.PositionAbove(pos, anchor); ok {
				t.Error("Expected PositionAbove to reject the position")
			}
			if _, ok := e.PositionBelow(pos, anchor); ok {
				t.Error("Expected PositionBelow to reject the position")
			}
		})
	}
}

func TestPositionAboveWithinLayout(t *testing.T) {
	e := New(testCollection())

	pos := model.TextPosition{
		Path:     model.IndexPath{Layout: 0, Line: 1, Run: 0, Slice: 0},
		Affinity: model.Downstream,
	}
	above, ok := e.PositionAbove(pos, pos)
	if !ok {
		t.Fatal("Expected a position above")
	}
	if above.Path.Layout != 0 || above.Path.Line != 0 {
		t.Errorf("Expected layout 0 line 0, got %v", above.Path)
	}
	// The anchor caret sits at local x 0; the nearest position on line 0
	// is the start of its first slice.
	if above.Path.Slice != 0 {
		t.Errorf("Expected slice 0, got %d", above.Path.Slice)
	}
}

func TestPositionBelowSkipsEmptyLayout(t *testing.T) {
	e := New(testCollection())

	pos := model.TextPosition{
		Path:     model.IndexPath{Layout: 0, Line: 1, Run: 0, Slice: 0},
		Affinity: model.Downstream,
	}
	below, ok := e.PositionBelow(pos, pos)
	if !ok {
		t.Fatal("Expected a position below")
	}
	if below.Path.Layout != 2 {
		t.Errorf("Expected empty layout 1 to be skipped, got layout %d", below.Path.Layout)
	}
}

func TestPositionAboveClampsAtTop(t *testing.T) {
	e := New(testCollection())

	pos := model.TextPosition{
		Path:     model.IndexPath{Layout: 0, Line: 0, Run: 0, Slice: 1},
		Affinity: model.Downstream,
	}
	above, ok := e.PositionAbove(pos, pos)
	if !ok {
		t.Fatal("Expected a clamped position at the top")
	}
	start, _ := e.Collection().StartPosition()
	if above != start {
		t.Errorf("Expected collection start %v, got %v", start, above)
	}
}

func TestPositionBelowClampsAtBottom(t *testing.T) {
	e := New(testCollection())

	pos := model.TextPosition{
		Path:     model.IndexPath{Layout: 2, Line: 0, Run: 0, Slice: 0},
		Affinity: model.Downstream,
	}
	below, ok := e.PositionBelow(pos, pos)
	if !ok {
		t.Fatal("Expected a clamped position at the bottom")
	}
	end, _ := e.Collection().EndPosition()
	if below != end {
		t.Errorf("Expected collection end %v, got %v", end, below)
	}
}

func TestVerticalRoundTrip(t *testing.T) {
	e := New(testCollection())

	// Moving up then down with the same anchor returns to a position on
	// the starting line.
	pos := model.TextPosition{
		Path:     model.IndexPath{Layout: 0, Line: 1, Run: 0, Slice: 1},
		Affinity: model.Downstream,
	}
	above, ok := e.PositionAbove(pos, pos)
	if !ok {
		t.Fatal("Expected a position above")
	}
	back, ok := e.PositionBelow(above, pos)
	if !ok {
		t.Fatal("Expected a position below")
	}
	if back.Path.Layout != pos.Path.Layout || back.Path.Line != pos.Path.Line {
		t.Errorf("Expected round trip to line %v, got %v", pos.Path, back.Path)
	}
	if back.Path.Slice != pos.Path.Slice {
		t.Errorf("Expected anchor-closest slice %d, got %d", pos.Path.Slice, back.Path.Slice)
	}
}
