// Package reveal maps scroll position to section visibility and progress.
package reveal

// IntersectionRatio returns the fraction of the element [top, bottom] that
// lies inside the viewport [viewTop, viewBottom]. A zero-height element
// counts as fully visible when it is inside the viewport.
func IntersectionRatio(viewTop, viewBottom, top, bottom float64) float64 {
	if bottom < top {
		top, bottom = bottom, top
	}
	height := bottom - top
	if height <= 0 {
		if top >= viewTop && top <= viewBottom {
			return 1
		}
		return 0
	}
	visible := min(bottom, viewBottom) - max(top, viewTop)
	if visible <= 0 {
		return 0
	}
	return clamp01(visible / height)
}

// Progress is how far the viewport has travelled across an element: 0 when
// the element's top enters at the bottom of the viewport, 1 when its bottom
// leaves through the top.
func Progress(scrollY, viewportH, top, height float64) float64 {
	span := height + viewportH
	if span <= 0 {
		return 0
	}
	return clamp01((scrollY + viewportH - top) / span)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Section is one observed block of the page.
type Section struct {
	Name      string
	Top       float64
	Height    float64
	Threshold float64

	ratio    float64
	revealed bool
}

// Observe records a new visibility ratio. The section is revealed while the
// ratio is at or above the threshold, and hidden again below it.
func (s *Section) Observe(ratio float64) (revealed, changed bool) {
	s.ratio = ratio
	next := ratio >= s.Threshold && ratio > 0
	changed = next != s.revealed
	s.revealed = next
	return next, changed
}

// Revealed is the current flag.
func (s *Section) Revealed() bool { return s.revealed }

// Ratio is the last observed visibility ratio.
func (s *Section) Ratio() float64 { return s.ratio }

// Bottom is the section's lower edge.
func (s *Section) Bottom() float64 { return s.Top + s.Height }
