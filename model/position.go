package model

// IndexPath locates one slice within a layout collection by four
// non-negative indices. Coarser positions (zero trailing indices) are used
// only for boundary comparisons.
type IndexPath struct {
	Layout int
	Line   int
	Run    int
	Slice  int
}

// Compare orders two paths lexicographically, level by level. It returns a
// negative value if p sorts before other, zero if equal, positive otherwise.
func (p IndexPath) Compare(other IndexPath) int {
	if d := p.Layout - other.Layout; d != 0 {
		return d
	}
	if d := p.Line - other.Line; d != 0 {
		return d
	}
	if d := p.Run - other.Run; d != 0 {
		return d
	}
	return p.Slice - other.Slice
}

// Affinity disambiguates a caret position sitting exactly at a boundary
// between two adjacent slices, runs, or lines (for example the end of one
// run versus the start of the next at a direction change).
type Affinity int

const (
	// Downstream anchors the position to the leading edge of its slice
	Downstream Affinity = iota
	// Upstream anchors the position to the trailing edge of its slice
	Upstream
)

// String returns a string representation of the affinity
func (a Affinity) String() string {
	switch a {
	case Downstream:
		return "downstream"
	case Upstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// TextPosition is an addressable caret location: an index path plus the
// affinity that disambiguates boundary carets. Two positions with the same
// path but different affinities are distinct.
type TextPosition struct {
	Path     IndexPath
	Affinity Affinity
}

// Compare orders positions by path, then by affinity. At the same path a
// downstream position (before the slice content) sorts before an upstream
// one (after it).
func (p TextPosition) Compare(other TextPosition) int {
	if d := p.Path.Compare(other.Path); d != 0 {
		return d
	}
	return int(p.Affinity) - int(other.Affinity)
}

// TextRange is a pair of text positions. A normalized range has Start not
// after End in document order.
type TextRange struct {
	Start TextPosition
	End   TextPosition
}

// NewTextRange creates a normalized range from two positions
func NewTextRange(a, b TextPosition) TextRange {
	return TextRange{Start: a, End: b}.Normalize()
}

// IsCollapsed returns true if Start and End are the same position,
// including affinity.
func (r TextRange) IsCollapsed() bool {
	return r.Start == r.End
}

// Normalize returns the range with Start and End swapped into document
// order if necessary.
func (r TextRange) Normalize() TextRange {
	if r.Start.Compare(r.End) > 0 {
		return TextRange{Start: r.End, End: r.Start}
	}
	return r
}
