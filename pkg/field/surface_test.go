package field

import "image/color"

type lineCall struct {
	x0, y0, x1, y1 float64
	alpha          float64
	c              color.NRGBA
}

type dotCall struct {
	x, y, r float64
	alpha   float64
}

// recordingSurface records draw calls in order for inspection.
type recordingSurface struct {
	w, h    float64
	clears  int
	lines   []lineCall
	dots    []dotCall
	sprites int
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (r *recordingSurface) reset() {
	r.clears = 0
	r.lines = nil
	r.dots = nil
	r.sprites = 0
}

func (r *recordingSurface) Clear(bg color.NRGBA) { r.clears++ }

func (r *recordingSurface) Line(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	r.lines = append(r.lines, lineCall{x0: x0, y0: y0, x1: x1, y1: y1, alpha: alpha, c: c})
}

func (r *recordingSurface) Dot(x, y, rad float64, c color.NRGBA, alpha, glow float64) {
	r.dots = append(r.dots, dotCall{x: x, y: y, r: rad, alpha: alpha})
}

func (r *recordingSurface) Sprite(x, y, size, rotation float64, glyph rune, c color.NRGBA, alpha float64) {
	r.sprites++
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }
