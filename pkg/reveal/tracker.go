package reveal

// Tracker owns a vertical stack of sections and a viewport, and
// recomputes every section whenever the scroll offset or viewport changes.
type Tracker struct {
	sections  []*Section
	scrollY   float64
	viewportH float64
	content   float64
	onChange  func(*Section)
}

// NewTracker stacks sections of the given heights from y=0.
func NewTracker(viewportH, threshold float64, names []string, heights []float64) *Tracker {
	t := &Tracker{viewportH: viewportH}
	y := 0.0
	for i, name := range names {
		h := 0.0
		if i < len(heights) {
			h = heights[i]
		}
		t.sections = append(t.sections, &Section{Name: name, Top: y, Height: h, Threshold: threshold})
		y += h
	}
	t.content = y
	t.update()
	return t
}

// OnChange registers fn to run whenever a section's flag flips.
func (t *Tracker) OnChange(fn func(*Section)) {
	t.onChange = fn
}

// Sections returns the sections in page order.
func (t *Tracker) Sections() []*Section { return t.sections }

// ScrollY is the current offset.
func (t *Tracker) ScrollY() float64 { return t.scrollY }

// MaxScroll is the largest valid offset.
func (t *Tracker) MaxScroll() float64 {
	return max(0, t.content-t.viewportH)
}

// Scroll moves to y, clamped to the page.
func (t *Tracker) Scroll(y float64) {
	t.scrollY = min(max(y, 0), t.MaxScroll())
	t.update()
}

// ScrollBy moves by dy.
func (t *Tracker) ScrollBy(dy float64) {
	t.Scroll(t.scrollY + dy)
}

// Resize changes the viewport height.
func (t *Tracker) Resize(viewportH float64) {
	t.viewportH = viewportH
	t.Scroll(t.scrollY)
}

// PageProgress is the scroll offset as a fraction of the scrollable range.
func (t *Tracker) PageProgress() float64 {
	m := t.MaxScroll()
	if m <= 0 {
		return 0
	}
	return clamp01(t.scrollY / m)
}

// SectionProgress is Progress for section i.
func (t *Tracker) SectionProgress(i int) float64 {
	if i < 0 || i >= len(t.sections) {
		return 0
	}
	s := t.sections[i]
	return Progress(t.scrollY, t.viewportH, s.Top, s.Height)
}

func (t *Tracker) update() {
	top, bottom := t.scrollY, t.scrollY+t.viewportH
	for _, s := range t.sections {
		ratio := IntersectionRatio(top, bottom, s.Top, s.Bottom())
		if _, changed := s.Observe(ratio); changed && t.onChange != nil {
			t.onChange(s)
		}
	}
}
