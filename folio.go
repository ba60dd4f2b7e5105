// Package folio turns laid-out document structure into addressable,
// queryable geometry for interactive rendering: hit-testing, caret and
// selection rectangles, vertical caret navigation, and table grid bounds.
//
// Basic usage:
//
//	surface := folio.NewSurface(collection)
//	if pos, ok := surface.ClosestPosition(tap); ok {
//	    caret, _ := surface.CaretRect(pos)
//	    // draw caret
//	}
//
// A [Surface] wraps one immutable layout snapshot produced by an external
// text-layout collaborator. Snapshots are rebuilt wholesale after each
// layout pass; build a new surface per snapshot and discard positions
// obtained from the old one.
//
// For advanced use cases the lower-level selection, tables, highlight, and
// compose packages are also available.
package folio

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/selection"
)

// Surface binds one layout snapshot to the selection geometry engine. All
// queries are pure and safe for concurrent readers; every query returns a
// zero value and false (or nil) rather than failing when the point or
// position has no geometry.
type Surface struct {
	collection *model.Collection
	engine     *selection.Engine
}

// NewSurface creates a surface over the given snapshot with default
// configuration.
func NewSurface(c *model.Collection) *Surface {
	return &Surface{
		collection: c,
		engine:     selection.New(c),
	}
}

// NewSurfaceWithConfig creates a surface with explicit engine configuration
func NewSurfaceWithConfig(c *model.Collection, config selection.Config) *Surface {
	return &Surface{
		collection: c,
		engine:     selection.NewWithConfig(c, config),
	}
}

// Collection returns the snapshot the surface queries
func (s *Surface) Collection() *model.Collection {
	return s.collection
}

// ClosestPosition resolves a shared-space point to the nearest text
// position. See [selection.Engine.ClosestPosition].
func (s *Surface) ClosestPosition(p model.Point) (model.TextPosition, bool) {
	return s.engine.ClosestPosition(p)
}

// CharacterRangeAt returns a one-slice range for the character under the
// point. See [selection.Engine.CharacterRangeAt].
func (s *Surface) CharacterRangeAt(p model.Point) (model.TextRange, bool) {
	return s.engine.CharacterRangeAt(p)
}

// LinkAt returns the link under the point, or nil
func (s *Surface) LinkAt(p model.Point) *model.Link {
	return s.engine.LinkAt(p)
}

// CaretRect returns the caret rectangle for a position, in shared space
func (s *Surface) CaretRect(pos model.TextPosition) (model.Rect, bool) {
	return s.engine.CaretRect(pos)
}

// FirstRect returns the geometry of the first visual line segment of a
// range. See [selection.Engine.FirstRect].
func (s *Surface) FirstRect(r model.TextRange) (model.Rect, bool) {
	return s.engine.FirstRect(r)
}

// Paths returns a lazy iterator over the slice paths covered by a range
func (s *Surface) Paths(r model.TextRange) *selection.PathIterator {
	return s.engine.Paths(r)
}

// IsAtBlockBoundary reports whether the position starts or ends its layout
func (s *Surface) IsAtBlockBoundary(pos model.TextPosition) bool {
	return s.engine.IsAtBlockBoundary(pos)
}

// PositionAbove returns the position one visual line above pos, anchored
// to the midpoint of anchor's caret rectangle.
func (s *Surface) PositionAbove(pos, anchor model.TextPosition) (model.TextPosition, bool) {
	return s.engine.PositionAbove(pos, anchor)
}

// PositionBelow returns the position one visual line below pos
func (s *Surface) PositionBelow(pos, anchor model.TextPosition) (model.TextPosition, bool) {
	return s.engine.PositionBelow(pos, anchor)
}

// Must is a helper that wraps a call to a function returning (T, bool)
// and panics if the result is absent. It is intended for use in scripts
// or tests where explicit absence handling would be cumbersome.
//
// Example:
//
//	caret := folio.Must(surface.CaretRect(pos))
func Must[T any](val T, ok bool) T {
	if !ok {
		panic("folio: no geometry available")
	}
	return val
}
