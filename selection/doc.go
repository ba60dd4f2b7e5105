// Package selection implements the text selection geometry engine: mapping
// 2D points to logical text positions, computing caret and selection
// rectangles, and navigating positions vertically across independently
// laid-out text blocks.
//
// An [Engine] is a stateless set of queries over one [model.Collection]
// snapshot. Every query is a pure function and is safe for concurrent
// readers. All queries are total: an empty collection or an out-of-range
// position yields a zero value and false (or nil), never a panic.
//
// # Hit Testing
//
// [Engine.ClosestPosition] resolves a point to a text position by
// hierarchical nearest descent: the nearest Layout by squared distance to
// its frame, then the nearest Line within it by vertical distance, then the
// nearest Run and Slice by horizontal distance. Ties at every level are
// broken by first occurrence in document order. This is not a global
// nearest-slice search; see the method documentation for the tradeoff.
//
// # Caret Geometry
//
// [Engine.CaretRect] and [Engine.FirstRect] produce rectangles in shared
// space, with the vertical extent of the enclosing line so carets and
// selection segments span full line height. Leading and trailing edges are
// resolved per the run's writing direction.
package selection
