package selection

import "github.com/tsawler/folio/model"

// IsAtBlockBoundary reports whether the position is the first addressable
// position of its layout (first slice, downstream) or the last (last slice,
// upstream). Positions outside the snapshot are not boundaries.
func (e *Engine) IsAtBlockBoundary(pos model.TextPosition) bool {
	start, ok := e.collection.LayoutStart(pos.Path.Layout)
	if !ok {
		return false
	}
	end, ok := e.collection.LayoutEnd(pos.Path.Layout)
	if !ok {
		return false
	}
	return pos == start || pos == end
}

// PositionAbove returns the position one visual line above pos. The
// horizontal anchor is the midpoint of anchor's caret rectangle, so a run
// of repeated vertical moves keeps a stable column. The previous line
// within the same layout is preferred; otherwise the last line of the
// nearest preceding non-empty layout. At the top of the collection the
// collection's start position is returned (clamped, not a failure). A pos
// that addresses no slice in the snapshot fails.
func (e *Engine) PositionAbove(pos, anchor model.TextPosition) (model.TextPosition, bool) {
	if _, ok := e.collection.Slice(pos.Path); !ok {
		return model.TextPosition{}, false
	}
	caret, ok := e.CaretRect(anchor)
	if !ok {
		return model.TextPosition{}, false
	}
	anchorX := caret.Center().X

	layout, ok := e.collection.Layout(pos.Path.Layout)
	if !ok {
		return model.TextPosition{}, false
	}
	for line := pos.Path.Line - 1; line >= 0; line-- {
		if lineHasSlices(layout.Lines[line]) {
			return e.closestOnLine(pos.Path.Layout, line, layout.Lines[line], anchorX-layout.Origin.X)
		}
	}
	for i := pos.Path.Layout - 1; i >= 0; i-- {
		prev := e.collection.Layouts[i]
		for line := len(prev.Lines) - 1; line >= 0; line-- {
			if lineHasSlices(prev.Lines[line]) {
				return e.closestOnLine(i, line, prev.Lines[line], anchorX-prev.Origin.X)
			}
		}
	}
	return e.collection.StartPosition()
}

// PositionBelow returns the position one visual line below pos, using the
// same anchoring rules as [Engine.PositionAbove]. At the bottom of the
// collection the collection's end position is returned.
func (e *Engine) PositionBelow(pos, anchor model.TextPosition) (model.TextPosition, bool) {
	if _, ok := e.collection.Slice(pos.Path); !ok {
		return model.TextPosition{}, false
	}
	caret, ok := e.CaretRect(anchor)
	if !ok {
		return model.TextPosition{}, false
	}
	anchorX := caret.Center().X

	layout, ok := e.collection.Layout(pos.Path.Layout)
	if !ok {
		return model.TextPosition{}, false
	}
	for line := pos.Path.Line + 1; line < len(layout.Lines); line++ {
		if lineHasSlices(layout.Lines[line]) {
			return e.closestOnLine(pos.Path.Layout, line, layout.Lines[line], anchorX-layout.Origin.X)
		}
	}
	for i := pos.Path.Layout + 1; i < len(e.collection.Layouts); i++ {
		next := e.collection.Layouts[i]
		for line := 0; line < len(next.Lines); line++ {
			if lineHasSlices(next.Lines[line]) {
				return e.closestOnLine(i, line, next.Lines[line], anchorX-next.Origin.X)
			}
		}
	}
	return e.collection.EndPosition()
}
