package tracker

import "github.com/choonghwanlee/folio/internal/portfolio"

// DefaultThreshold is the distance from the viewport top, in pixels, of the
// line used to decide which section is active.
const DefaultThreshold = 100

// Rect is the vertical extent of a section relative to the viewport top.
// Values grow downwards; a section scrolled above the viewport has a negative Top.
type Rect struct {
	Top    float64
	Bottom float64
}

// Contains reports whether the horizontal line at y falls within the rect,
// edges included.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Measurer reports the live extent of a section. ok is false when the section
// is not currently rendered; such sections are skipped.
type Measurer interface {
	Measure(section portfolio.Section) (rect Rect, ok bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(section portfolio.Section) (Rect, bool)

// Measure implements Measurer.
func (f MeasureFunc) Measure(section portfolio.Section) (Rect, bool) {
	return f(section)
}

// Stacked measures sections laid out back to back in document coordinates.
// Extents are given in document space and shifted by the current scroll
// offset on every call.
type Stacked struct {
	Extents map[portfolio.Section]Rect
	Offset  func() float64
}

// Measure implements Measurer.
func (s Stacked) Measure(section portfolio.Section) (Rect, bool) {
	extent, ok := s.Extents[section]
	if !ok {
		return Rect{}, false
	}
	offset := 0.0
	if s.Offset != nil {
		offset = s.Offset()
	}
	return Rect{Top: extent.Top - offset, Bottom: extent.Bottom - offset}, true
}
