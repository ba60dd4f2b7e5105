// Package tables reconciles independently-rendered table cells into one
// coordinate space and derives row, column, and divider geometry for a
// table's visual style.
//
// Cells of an interactive table are laid out independently, in a first
// pass, without shared coordinate knowledge: each rendered cell knows only
// its own bounds relative to the table's anchor and its (row, column)
// index. Aggregation is an explicit two-phase protocol:
//
//  1. Collection: an [Accumulator] gathers [CellReport] values. Reports are
//     logically independent and commutative, so their arrival order does
//     not affect the result.
//  2. Resolution: once reporting is known complete (a frame boundary),
//     [Accumulator.Resolve] transforms every anchor-relative bound into
//     absolute shared-space rectangles against the table's concrete frame
//     and derives an immutable [Grid].
//
// The two phases are strictly ordered and never interleaved; keeping them
// as separate types makes the ordering contract explicit and testable in
// isolation.
//
// # Dividers
//
// [Grid.Dividers] returns zero-thickness rectangles (line segments
// expressed as degenerate rectangles) at each internal boundary between
// adjacent rows and adjacent columns, spanning the full table bounds on
// the perpendicular axis. Styles draw grid lines from these segments
// without knowing any row/column boundary logic themselves.
//
// # Failure Semantics
//
// Requesting bounds for an index with no observed cells returns a
// zero-area rectangle at the table's origin rather than failing, so grid
// rendering degrades to a no-op line rather than crashing. A duplicate
// report for one (row, column) coordinate is not rejected; the last write
// wins. Well-formed input does not produce duplicates, so this is a
// data-integrity assumption rather than a validated invariant.
package tables
