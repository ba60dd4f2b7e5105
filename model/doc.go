// Package model provides the immutable layout snapshot and addressing types
// that the geometry engines operate on.
//
// This package defines the data structures produced by an external
// text-layout collaborator after each layout pass. All selection and table
// geometry queries consume these types, making them the primary vocabulary
// of the library.
//
// # Layout Hierarchy
//
// Laid-out text is described by a four-level hierarchy:
//
//   - [Collection] - all layouts of the interactive surface, document order
//   - [Layout] - one independently positioned text block (paragraph, cell)
//   - [Line] - one visual line
//   - [Run] - a maximal span of one writing direction
//   - [Slice] - the smallest addressable text unit
//
// Line, Run, and Slice coordinates are local to their Layout's origin;
// callers offset by the origin to obtain shared-space coordinates.
//
// # Addressing
//
// Positions within the hierarchy are addressed by value:
//
//   - [IndexPath] - four indices locating one slice
//   - [TextPosition] - an index path plus boundary [Affinity]
//   - [TextRange] - an ordered pair of positions
//
// Snapshots are rebuilt wholesale after every layout pass. Positions and
// ranges carry indices only; they are invalid against any other snapshot
// and must not be retained across passes.
//
// # Geometry
//
// Geometric primitives support position and hit-testing calculations:
//
//   - [Point] - 2D coordinates (Y increases downward)
//   - [Rect] - rectangle with distance, containment, and union helpers
package model
