package selection

import "github.com/tsawler/folio/model"

// PathIterator is a lazy, forward-only sequence of slice index paths
// covering a text range in document order. It materializes nothing: each
// call to Next computes only the following path.
type PathIterator struct {
	collection *model.Collection
	next       model.IndexPath
	end        model.IndexPath
	valid      bool
}

// Paths returns an iterator over the index paths of every slice covered by
// the range, in document order. Affinity trims the endpoints: an upstream
// start excludes its slice (the caret sits after it) and a downstream end
// excludes its slice (the caret sits before it). The iterator is empty for
// collapsed ranges, ranges outside the snapshot, and empty collections.
func (e *Engine) Paths(r model.TextRange) *PathIterator {
	it := &PathIterator{collection: e.collection}
	r = r.Normalize()

	start := r.Start.Path
	if _, ok := e.collection.Slice(start); !ok {
		return it
	}
	if r.Start.Affinity == model.Upstream {
		next, ok := advancePath(e.collection, start)
		if !ok {
			return it
		}
		start = next
	}

	end := r.End.Path
	if _, ok := e.collection.Slice(end); !ok {
		return it
	}
	if r.End.Affinity == model.Downstream {
		prev, ok := retreatPath(e.collection, end)
		if !ok {
			return it
		}
		end = prev
	}

	if start.Compare(end) > 0 {
		return it
	}
	it.next = start
	it.end = end
	it.valid = true
	return it
}

// Next returns the next path in the sequence. The second result is false
// once the sequence is exhausted.
func (it *PathIterator) Next() (model.IndexPath, bool) {
	if !it.valid {
		return model.IndexPath{}, false
	}
	current := it.next
	if current.Compare(it.end) >= 0 {
		it.valid = false
		return current, true
	}
	next, ok := advancePath(it.collection, current)
	if !ok {
		it.valid = false
	} else {
		it.next = next
	}
	return current, true
}

// advancePath returns the path of the slice following p in document order
func advancePath(c *model.Collection, p model.IndexPath) (model.IndexPath, bool) {
	if run, ok := c.Run(p); ok && p.Slice+1 < len(run.Slices) {
		p.Slice++
		return p, true
	}
	if line, ok := c.Line(p); ok && p.Run+1 < len(line.Runs) {
		return model.IndexPath{Layout: p.Layout, Line: p.Line, Run: p.Run + 1}, true
	}
	if layout, ok := c.Layout(p.Layout); ok {
		for line := p.Line + 1; line < len(layout.Lines); line++ {
			if lineHasSlices(layout.Lines[line]) {
				return model.IndexPath{Layout: p.Layout, Line: line}, true
			}
		}
	}
	for i := p.Layout + 1; i < len(c.Layouts); i++ {
		for line := range c.Layouts[i].Lines {
			if lineHasSlices(c.Layouts[i].Lines[line]) {
				return model.IndexPath{Layout: i, Line: line}, true
			}
		}
	}
	return model.IndexPath{}, false
}

// retreatPath returns the path of the slice preceding p in document order
func retreatPath(c *model.Collection, p model.IndexPath) (model.IndexPath, bool) {
	if p.Slice > 0 {
		p.Slice--
		return p, true
	}
	if line, ok := c.Line(p); ok && p.Run > 0 {
		run := line.Runs[p.Run-1]
		return model.IndexPath{Layout: p.Layout, Line: p.Line, Run: p.Run - 1, Slice: len(run.Slices) - 1}, true
	}
	if layout, ok := c.Layout(p.Layout); ok {
		for line := p.Line - 1; line >= 0; line-- {
			if path, ok := lastSliceOnLine(p.Layout, line, layout.Lines[line]); ok {
				return path, true
			}
		}
	}
	for i := p.Layout - 1; i >= 0; i-- {
		layout, _ := c.Layout(i)
		for line := len(layout.Lines) - 1; line >= 0; line-- {
			if path, ok := lastSliceOnLine(i, line, layout.Lines[line]); ok {
				return path, true
			}
		}
	}
	return model.IndexPath{}, false
}

// lastSliceOnLine returns the path of the last slice on the line
func lastSliceOnLine(layoutIndex, lineIndex int, line model.Line) (model.IndexPath, bool) {
	for run := len(line.Runs) - 1; run >= 0; run-- {
		if n := len(line.Runs[run].Slices); n > 0 {
			return model.IndexPath{
				Layout: layoutIndex,
				Line:   lineIndex,
				Run:    run,
				Slice:  n - 1,
			}, true
		}
	}
	return model.IndexPath{}, false
}
