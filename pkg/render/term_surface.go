package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cell size in device pixels. Layers are simulated in pixels and
// every cell covers one CellWidth×CellHeight block.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	lineGlyph = '·'
	dotGlyph  = '●'
	blobGlyph = '*'
)

// TermSurface draws onto a tcell screen. A nil screen makes every call a
// no-op.
type TermSurface struct {
	screen tcell.Screen
	bg     colorful.Color
}

// NewTermSurface wraps screen.
func NewTermSurface(screen tcell.Screen) *TermSurface {
	return &TermSurface{screen: screen}
}

// Size returns the screen size in device pixels.
func (s *TermSurface) Size() (float64, float64) {
	if s.screen == nil {
		return 0, 0
	}
	cols, rows := s.screen.Size()
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// Clear paints every cell with bg and remembers it for blending.
func (s *TermSurface) Clear(bg color.NRGBA) {
	if s.screen == nil {
		return
	}
	s.bg = toColorful(bg)
	style := tcell.StyleDefault.Background(toTcell(s.bg))
	cols, rows := s.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Line rasterises the segment into cells.
func (s *TermSurface) Line(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	if s.screen == nil || alpha <= 0 {
		return
	}
	style := s.style(c, alpha)
	cx0, cy0 := cell(x0, y0)
	cx1, cy1 := cell(x1, y1)
	bresenham(cx0, cy0, cx1, cy1, func(x, y int) {
		s.put(x, y, lineGlyph, style)
	})
}

// Dot marks the cell holding the particle centre.
func (s *TermSurface) Dot(x, y, r float64, c color.NRGBA, alpha, glow float64) {
	if s.screen == nil || alpha <= 0 {
		return
	}
	cx, cy := cell(x, y)
	s.put(cx, cy, dotGlyph, s.style(c, alpha))
}

// Sprite writes the sprite's glyph, or a star when it has none.
func (s *TermSurface) Sprite(x, y, size, rotation float64, glyph rune, c color.NRGBA, alpha float64) {
	if s.screen == nil || alpha <= 0 {
		return
	}
	if glyph == 0 {
		glyph = blobGlyph
	}
	cx, cy := cell(x, y)
	s.put(cx, cy, glyph, s.style(c, alpha))
}

// Text writes s centred on the cell holding (x, y).
func (s *TermSurface) Text(x, y float64, str string, c color.NRGBA, alpha float64) {
	if s.screen == nil || alpha <= 0 || str == "" {
		return
	}
	style := s.style(c, alpha)
	runes := []rune(str)
	cx, cy := cell(x, y)
	cx -= len(runes) / 2
	for i, r := range runes {
		s.put(cx+i, cy, r, style)
	}
}

// Show flushes the frame to the terminal.
func (s *TermSurface) Show() {
	if s.screen != nil {
		s.screen.Show()
	}
}

func (s *TermSurface) put(x, y int, r rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// style blends c over the background by alpha, since terminals have no
// transparency.
func (s *TermSurface) style(c color.NRGBA, alpha float64) tcell.Style {
	a := alpha * float64(c.A) / 255
	fg := s.bg.BlendRgb(toColorful(c), a)
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(s.bg))
}

func cell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// bresenham visits every cell on the segment, endpoints included.
func bresenham(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
