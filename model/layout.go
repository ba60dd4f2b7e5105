package model

// Link is a navigable reference attached to a slice of text, such as the
// destination of a markdown link.
type Link struct {
	// URL is the link destination
	URL string

	// Title is the optional link title (tooltip text)
	Title string
}

// Slice is the smallest addressable unit of laid-out text within a
// directional run.
type Slice struct {
	// Text is the text content of the slice
	Text string

	// Bounds is the typographic bounding box of the slice, in coordinates
	// local to the owning Layout's origin
	Bounds Rect

	// Link is the attached navigable reference, or nil
	Link *Link
}

// Run is a maximal span of text sharing one writing direction within a line.
type Run struct {
	// Direction is the writing direction of every slice in the run
	Direction Direction

	// Slices are the run's slices in logical order (never empty within a
	// non-empty line)
	Slices []Slice
}

// Bounds returns the union of the run's slice bounds, in Layout-local
// coordinates. The zero rectangle is returned for an empty run.
func (r Run) Bounds() Rect {
	if len(r.Slices) == 0 {
		return Rect{}
	}
	bounds := r.Slices[0].Bounds
	for _, s := range r.Slices[1:] {
		bounds = bounds.Union(s.Bounds)
	}
	return bounds
}

// LeadingEdge returns the x coordinate of the leading edge of the given
// bounds under the run's writing direction: the left edge for left-to-right
// runs, the right edge for right-to-left runs.
func (r Run) LeadingEdge(bounds Rect) float64 {
	if r.Direction == RightToLeft {
		return bounds.Right()
	}
	return bounds.Left()
}

// TrailingEdge returns the x coordinate of the trailing edge of the given
// bounds under the run's writing direction.
func (r Run) TrailingEdge(bounds Rect) float64 {
	if r.Direction == RightToLeft {
		return bounds.Left()
	}
	return bounds.Right()
}

// Line is one visual line of laid-out text.
type Line struct {
	// Bounds is the typographic bounding box of the line, in coordinates
	// local to the owning Layout's origin
	Bounds Rect

	// Runs are the line's directional runs in visual order (never empty
	// within a valid line)
	Runs []Run
}

// Layout is one independently laid-out block of text: a paragraph, a
// heading, a list item, a table cell, and so on.
//
// Line, Run and Slice coordinates are relative to Origin; add Origin to
// obtain shared-space coordinates.
type Layout struct {
	// Origin is the top-left position of the block in shared space
	Origin Point

	// Frame is the block's bounding box in shared space
	Frame Rect

	// Lines are the block's visual lines, top to bottom. A layout with zero
	// lines is valid and is skipped by geometric queries.
	Lines []Line
}

// IsEmpty returns true if the layout has no lines
func (l Layout) IsEmpty() bool {
	return len(l.Lines) == 0
}

// Collection is an ordered sequence of Layouts in document order, covering
// the whole interactive surface. It is an immutable snapshot: it is rebuilt
// wholesale after each layout pass and never patched in place. Positions and
// ranges index into one snapshot only and must not be retained across passes.
type Collection struct {
	Layouts []Layout
}

// NewCollection creates a collection from layouts in document order
func NewCollection(layouts ...Layout) *Collection {
	return &Collection{Layouts: layouts}
}

// IsEmpty returns true if the collection contains no layouts
func (c *Collection) IsEmpty() bool {
	return c == nil || len(c.Layouts) == 0
}

// Layout returns the layout at the given index
func (c *Collection) Layout(index int) (Layout, bool) {
	if c == nil || index < 0 || index >= len(c.Layouts) {
		return Layout{}, false
	}
	return c.Layouts[index], true
}

// Line returns the line addressed by path
func (c *Collection) Line(path IndexPath) (Line, bool) {
	layout, ok := c.Layout(path.Layout)
	if !ok || path.Line < 0 || path.Line >= len(layout.Lines) {
		return Line{}, false
	}
	return layout.Lines[path.Line], true
}

// Run returns the run addressed by path
func (c *Collection) Run(path IndexPath) (Run, bool) {
	line, ok := c.Line(path)
	if !ok || path.Run < 0 || path.Run >= len(line.Runs) {
		return Run{}, false
	}
	return line.Runs[path.Run], true
}

// Slice returns the slice addressed by path
func (c *Collection) Slice(path IndexPath) (Slice, bool) {
	run, ok := c.Run(path)
	if !ok || path.Slice < 0 || path.Slice >= len(run.Slices) {
		return Slice{}, false
	}
	return run.Slices[path.Slice], true
}

// LayoutStart returns the first addressable position of the layout at the
// given index: its first slice with downstream affinity.
func (c *Collection) LayoutStart(index int) (TextPosition, bool) {
	layout, ok := c.Layout(index)
	if !ok || layout.IsEmpty() {
		return TextPosition{}, false
	}
	return TextPosition{
		Path:     IndexPath{Layout: index},
		Affinity: Downstream,
	}, true
}

// LayoutEnd returns the last addressable position of the layout at the
// given index: its last slice with upstream affinity.
func (c *Collection) LayoutEnd(index int) (TextPosition, bool) {
	layout, ok := c.Layout(index)
	if !ok || layout.IsEmpty() {
		return TextPosition{}, false
	}
	line := len(layout.Lines) - 1
	run := len(layout.Lines[line].Runs) - 1
	if run < 0 {
		return TextPosition{}, false
	}
	slice := len(layout.Lines[line].Runs[run].Slices) - 1
	if slice < 0 {
		return TextPosition{}, false
	}
	return TextPosition{
		Path:     IndexPath{Layout: index, Line: line, Run: run, Slice: slice},
		Affinity: Upstream,
	}, true
}

// StartPosition returns the first addressable position in the collection,
// skipping layouts with no lines.
func (c *Collection) StartPosition() (TextPosition, bool) {
	if c == nil {
		return TextPosition{}, false
	}
	for i := range c.Layouts {
		if pos, ok := c.LayoutStart(i); ok {
			return pos, true
		}
	}
	return TextPosition{}, false
}

// EndPosition returns the last addressable position in the collection,
// skipping layouts with no lines.
func (c *Collection) EndPosition() (TextPosition, bool) {
	if c == nil {
		return TextPosition{}, false
	}
	for i := len(c.Layouts) - 1; i >= 0; i-- {
		if pos, ok := c.LayoutEnd(i); ok {
			return pos, true
		}
	}
	return TextPosition{}, false
}
