package selection

import "github.com/tsawler/folio/model"

// CaretRect returns the caret rectangle for a text position, in shared
// space. The rectangle sits at the slice's leading edge for downstream
// affinity and its trailing edge for upstream affinity (edges per the run's
// writing direction), spans the full vertical extent of the enclosing line,
// and has the configured caret width.
func (e *Engine) CaretRect(pos model.TextPosition) (model.Rect, bool) {
	layout, ok := e.collection.Layout(pos.Path.Layout)
	if !ok {
		return model.Rect{}, false
	}
	line, ok := e.collection.Line(pos.Path)
	if !ok {
		return model.Rect{}, false
	}
	run, ok := e.collection.Run(pos.Path)
	if !ok {
		return model.Rect{}, false
	}
	slice, ok := e.collection.Slice(pos.Path)
	if !ok {
		return model.Rect{}, false
	}

	x := run.LeadingEdge(slice.Bounds)
	if pos.Affinity == model.Upstream {
		x = run.TrailingEdge(slice.Bounds)
	}

	return model.Rect{
		X:      x + layout.Origin.X,
		Y:      line.Bounds.Y + layout.Origin.Y,
		Width:  e.config.CaretWidth,
		Height: line.Bounds.Height,
	}, true
}

// FirstRect returns the selection geometry for the first visual line
// segment of a range, in shared space. A collapsed range yields its caret
// rectangle. Otherwise the result is the union of per-slice selection
// rectangles from the range start up to, but not past, the first line or
// layout boundary. Callers needing full-range geometry repeat the walk per
// line using [Engine.Paths].
func (e *Engine) FirstRect(r model.TextRange) (model.Rect, bool) {
	r = r.Normalize()
	if r.IsCollapsed() {
		return e.CaretRect(r.Start)
	}

	it := e.Paths(r)
	found := false
	var rect model.Rect
	var firstLayout, firstLine int
	for path, ok := it.Next(); ok; path, ok = it.Next() {
		if found && (path.Layout != firstLayout || path.Line != firstLine) {
			break
		}
		sr, ok := e.selectionRect(path)
		if !ok {
			continue
		}
		if !found {
			rect = sr
			firstLayout = path.Layout
			firstLine = path.Line
			found = true
		} else {
			rect = rect.Union(sr)
		}
	}
	if !found {
		return model.Rect{}, false
	}
	return rect, true
}

// selectionRect returns the slice's bounds with the vertical extent of its
// line, offset into shared space.
func (e *Engine) selectionRect(path model.IndexPath) (model.Rect, bool) {
	layout, ok := e.collection.Layout(path.Layout)
	if !ok {
		return model.Rect{}, false
	}
	line, ok := e.collection.Line(path)
	if !ok {
		return model.Rect{}, false
	}
	slice, ok := e.collection.Slice(path)
	if !ok {
		return model.Rect{}, false
	}

	rect := slice.Bounds
	rect.Y = line.Bounds.Y
	rect.Height = line.Bounds.Height
	return rect.Translate(layout.Origin), true
}
