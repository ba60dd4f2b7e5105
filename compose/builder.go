package compose

import (
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/folio/model"
)

// ShapedGlyph is one shaped cluster reported by the text-layout
// collaborator, with metrics in 26.6 fixed-point units. Clusters arrive in
// visual order, left to right; RTL marks clusters whose run progresses
// toward the origin.
type ShapedGlyph struct {
	// Cluster is the text content of the cluster
	Cluster string

	// Advance is the horizontal advance of the cluster
	Advance fixed.Int26_6

	// Ascent and Descent are the cluster's vertical metrics above and
	// below the baseline
	Ascent  fixed.Int26_6
	Descent fixed.Int26_6

	// RTL marks clusters belonging to a right-to-left run. Strong
	// directional content in Cluster takes precedence over the flag,
	// which decides only for neutral content.
	RTL bool

	// Link is an optional navigable reference attached to the cluster
	Link *model.Link
}

// fixedToFloat converts a 26.6 fixed-point value to float64
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// BlockBuilder accumulates shaped clusters into the lines of one layout
// block. Clusters are added in visual order; EndLine closes the current
// line. The builder is single-use: Build produces the block's layout and
// the builder should then be discarded.
type BlockBuilder struct {
	lines   [][]ShapedGlyph
	current []ShapedGlyph
}

// NewBlockBuilder creates an empty block builder
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{}
}

// Add appends one cluster to the current line
func (b *BlockBuilder) Add(g ShapedGlyph) {
	b.current = append(b.current, g)
}

// EndLine closes the current line. Empty lines are dropped: a block with
// no clusters builds to a layout with zero lines.
func (b *BlockBuilder) EndLine() {
	if len(b.current) == 0 {
		return
	}
	b.lines = append(b.lines, b.current)
	b.current = nil
}

// Build lays the accumulated lines out at the given shared-space origin
// and returns the finished layout. An unclosed final line is closed first.
func (b *BlockBuilder) Build(origin model.Point) model.Layout {
	b.EndLine()

	layout := model.Layout{Origin: origin}
	cursorY := 0.0
	maxWidth := 0.0

	for _, clusters := range b.lines {
		line := buildLine(clusters, cursorY)
		layout.Lines = append(layout.Lines, line)
		cursorY += line.Bounds.Height
		if line.Bounds.Width > maxWidth {
			maxWidth = line.Bounds.Width
		}
	}

	layout.Frame = model.Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  maxWidth,
		Height: cursorY,
	}
	return layout
}

// glyphDirection resolves a cluster's direction. Strong directional content
// overrides the shaper's RTL flag; neutral content (spaces, punctuation,
// digits) keeps it.
func glyphDirection(g ShapedGlyph) model.Direction {
	switch model.DetectDirection(g.Cluster) {
	case model.LeftToRight:
		return model.LeftToRight
	case model.RightToLeft:
		return model.RightToLeft
	}
	if g.RTL {
		return model.RightToLeft
	}
	return model.LeftToRight
}

// buildLine converts one visual line of clusters into a model line at the
// given layout-local top, splitting runs where the direction flips. Slices
// within a run are stored in logical order: clusters arrive in visual order,
// so an RTL run's slices are reversed after assembly, keeping their
// computed positions.
func buildLine(clusters []ShapedGlyph, top float64) model.Line {
	maxAscent := fixed.Int26_6(0)
	maxDescent := fixed.Int26_6(0)
	for _, g := range clusters {
		if g.Ascent > maxAscent {
			maxAscent = g.Ascent
		}
		if g.Descent > maxDescent {
			maxDescent = g.Descent
		}
	}
	baseline := top + fixedToFloat(maxAscent)
	height := fixedToFloat(maxAscent + maxDescent)

	line := model.Line{}
	penX := 0.0
	var run *model.Run
	for _, g := range clusters {
		direction := glyphDirection(g)
		if run == nil || run.Direction != direction {
			line.Runs = append(line.Runs, model.Run{Direction: direction})
			run = &line.Runs[len(line.Runs)-1]
		}

		width := fixedToFloat(g.Advance)
		run.Slices = append(run.Slices, model.Slice{
			Text: g.Cluster,
			Bounds: model.Rect{
				X:      penX,
				Y:      baseline - fixedToFloat(g.Ascent),
				Width:  width,
				Height: fixedToFloat(g.Ascent + g.Descent),
			},
			Link: g.Link,
		})
		penX += width
	}

	for i := range line.Runs {
		if line.Runs[i].Direction == model.RightToLeft {
			reverseSlices(line.Runs[i].Slices)
		}
	}

	line.Bounds = model.Rect{X: 0, Y: top, Width: penX, Height: height}
	return line
}

func reverseSlices(slices []model.Slice) {
	for i, j := 0, len(slices)-1; i < j; i, j = i+1, j-1 {
		slices[i], slices[j] = slices[j], slices[i]
	}
}

// CollectionBuilder stacks finished blocks vertically into a collection
type CollectionBuilder struct {
	layouts []model.Layout
	cursorY float64
	spacing float64
}

// NewCollectionBuilder creates a collection builder with the given
// vertical spacing between blocks.
func NewCollectionBuilder(spacing float64) *CollectionBuilder {
	return &CollectionBuilder{spacing: spacing}
}

// AddBlock builds the block at the current vertical cursor with the given
// left offset and advances the cursor past it.
func (cb *CollectionBuilder) AddBlock(b *BlockBuilder, x float64) {
	layout := b.Build(model.Point{X: x, Y: cb.cursorY})
	cb.layouts = append(cb.layouts, layout)
	cb.cursorY += layout.Frame.Height + cb.spacing
}

// Build returns the finished collection
func (cb *CollectionBuilder) Build() *model.Collection {
	return model.NewCollection(cb.layouts...)
}
