// Package compose builds model snapshots from the shaped-glyph output of an
// external text-layout collaborator.
//
// Shapers report per-cluster metrics in 26.6 fixed-point units. A
// [BlockBuilder] accumulates clusters line by line, splits directional runs
// where the progression flips, and produces one [model.Layout]; a
// [CollectionBuilder] stacks finished blocks vertically into a
// [model.Collection]. Inline HTML fragments can be mined for anchor links
// with [ExtractLinks] so the resulting slices carry navigable references.
package compose
