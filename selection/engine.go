package selection

import (
	"math"

	"github.com/tsawler/folio/model"
)

// Config holds configuration for the selection engine
type Config struct {
	// CaretWidth is the width of caret rectangles, in device-independent
	// units
	CaretWidth float64
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		CaretWidth: 1.0,
	}
}

// Engine answers geometry queries against one layout snapshot. It holds no
// mutable state; a new engine is created for each snapshot.
type Engine struct {
	collection *model.Collection
	config     Config
}

// New creates an engine over the given collection with default configuration
func New(c *model.Collection) *Engine {
	return NewWithConfig(c, DefaultConfig())
}

// NewWithConfig creates an engine with explicit configuration
func NewWithConfig(c *model.Collection, config Config) *Engine {
	return &Engine{collection: c, config: config}
}

// Collection returns the snapshot the engine queries
func (e *Engine) Collection() *model.Collection {
	return e.collection
}

// LinkAt returns the link attached to the text under the given shared-space
// point, or nil if there is none.
//
// The layout is chosen by containment in document order (first match, not
// nearest): documents rendered with overlapping frames resolve to document
// order, not visual proximity. Within the layout, the first run whose
// bounds contain the point is consulted.
func (e *Engine) LinkAt(p model.Point) *model.Link {
	if e.collection.IsEmpty() {
		return nil
	}
	for _, layout := range e.collection.Layouts {
		if layout.IsEmpty() || !layout.Frame.Contains(p) {
			continue
		}
		local := p.Sub(layout.Origin)
		for _, line := range layout.Lines {
			for _, run := range line.Runs {
				if len(run.Slices) == 0 || !run.Bounds().Contains(local) {
					continue
				}
				for _, slice := range run.Slices {
					if slice.Bounds.Contains(local) {
						return slice.Link
					}
				}
				return nil
			}
		}
		return nil
	}
	return nil
}

// ClosestPosition resolves a shared-space point to the nearest text
// position by hierarchical descent: the Layout minimizing squared distance
// from the point to its frame, within it the Line minimizing vertical
// distance, then the Run and Slice minimizing horizontal distance.
// Distance ties at every level are broken by first occurrence in document
// order. Layouts with no lines are skipped.
//
// The descent is local-nearest-per-level, not a global nearest-slice
// search: a point near a layout boundary can resolve to a slice that is
// not the globally closest one when the nearest layout's nearest line is
// farther in absolute terms than a line in a different layout. This trades
// correctness at the margins for avoiding an all-pairs scan.
func (e *Engine) ClosestPosition(p model.Point) (model.TextPosition, bool) {
	if e.collection.IsEmpty() {
		return model.TextPosition{}, false
	}

	bestLayout := -1
	bestDist := 0.0
	for i, layout := range e.collection.Layouts {
		if layout.IsEmpty() {
			continue
		}
		d := layout.Frame.DistanceSquared(p)
		if bestLayout < 0 || d < bestDist {
			bestLayout = i
			bestDist = d
		}
	}
	if bestLayout < 0 {
		return model.TextPosition{}, false
	}

	layout := e.collection.Layouts[bestLayout]
	local := p.Sub(layout.Origin)

	bestLine := -1
	bestLineDist := 0.0
	for i, line := range layout.Lines {
		if !lineHasSlices(line) {
			continue
		}
		d := line.Bounds.VerticalDistance(local.Y)
		if bestLine < 0 || d < bestLineDist {
			bestLine = i
			bestLineDist = d
		}
	}
	if bestLine < 0 {
		return model.TextPosition{}, false
	}

	return e.closestOnLine(bestLayout, bestLine, layout.Lines[bestLine], local.X)
}

// CharacterRangeAt locates the nearest slice to the given shared-space
// point and returns a one-slice range representing the character under the
// point: both endpoints share the slice's index path, with downstream
// affinity at the start and upstream at the end.
func (e *Engine) CharacterRangeAt(p model.Point) (model.TextRange, bool) {
	pos, ok := e.ClosestPosition(p)
	if !ok {
		return model.TextRange{}, false
	}
	return model.TextRange{
		Start: model.TextPosition{Path: pos.Path, Affinity: model.Downstream},
		End:   model.TextPosition{Path: pos.Path, Affinity: model.Upstream},
	}, true
}

// closestOnLine performs the per-line descent shared by ClosestPosition and
// the vertical navigation queries: the nearest run by horizontal distance,
// then the nearest slice, then affinity from the closer of the slice's
// leading and trailing edges. x is in layout-local coordinates.
func (e *Engine) closestOnLine(layoutIndex, lineIndex int, line model.Line, x float64) (model.TextPosition, bool) {
	bestRun := -1
	bestRunDist := 0.0
	for i, run := range line.Runs {
		if len(run.Slices) == 0 {
			continue
		}
		d := run.Bounds().HorizontalDistance(x)
		if bestRun < 0 || d < bestRunDist {
			bestRun = i
			bestRunDist = d
		}
	}
	if bestRun < 0 {
		return model.TextPosition{}, false
	}

	run := line.Runs[bestRun]
	bestSlice := -1
	bestSliceDist := 0.0
	for i, slice := range run.Slices {
		d := slice.Bounds.HorizontalDistance(x)
		if bestSlice < 0 || d < bestSliceDist {
			bestSlice = i
			bestSliceDist = d
		}
	}

	slice := run.Slices[bestSlice]
	affinity := model.Downstream
	leading := math.Abs(x - run.LeadingEdge(slice.Bounds))
	trailing := math.Abs(x - run.TrailingEdge(slice.Bounds))
	if leading > trailing {
		affinity = model.Upstream
	}

	return model.TextPosition{
		Path: model.IndexPath{
			Layout: layoutIndex,
			Line:   lineIndex,
			Run:    bestRun,
			Slice:  bestSlice,
		},
		Affinity: affinity,
	}, true
}

// lineHasSlices reports whether the line contains at least one slice
func lineHasSlices(line model.Line) bool {
	for _, run := range line.Runs {
		if len(run.Slices) > 0 {
			return true
		}
	}
	return false
}
