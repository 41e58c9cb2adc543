package field

import "image/color"

// Surface is the drawing target of a layer. Coordinates are device pixels.
type Surface interface {
	Clear(bg color.NRGBA)
	Line(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64)
	Dot(x, y, r float64, c color.NRGBA, alpha, glow float64)
	Sprite(x, y, size, rotation float64, glyph rune, c color.NRGBA, alpha float64)
	Size() (w, h float64)
}

// Layer is one animated element of a background. Render draws the current
// state without clearing, Step advances it by one frame.
type Layer interface {
	Render(s Surface)
	Step()
	Resize(w, h float64)
	Stop()
}

// Composite clears once and renders a stack of layers, bottom first.
type Composite struct {
	Backdrop color.NRGBA
	Layers   []Layer
}

// Frame draws every layer at its current state and then advances them.
// A nil surface draws and advances nothing.
func (c *Composite) Frame(s Surface) {
	if s == nil {
		return
	}
	s.Clear(c.Backdrop)
	for _, l := range c.Layers {
		l.Render(s)
	}
	for _, l := range c.Layers {
		l.Step()
	}
}

// Resize forwards new surface dimensions to every layer.
func (c *Composite) Resize(w, h float64) {
	for _, l := range c.Layers {
		l.Resize(w, h)
	}
}

// Stop halts every layer.
func (c *Composite) Stop() {
	for _, l := range c.Layers {
		l.Stop()
	}
}
