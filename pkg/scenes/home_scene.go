package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/reveal"
	"github.com/decker502/folio/pkg/typewriter"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	homeIntroSection = "intro"
	// 区块淡入每帧的进度
	homeFadeStep = 0.06
	// 区块淡入时的上移距离（逻辑像素）
	homeSlide = 40
)

// HomeScene is the scrolling landing page: a looping typed header over the
// particle field, sections that fade in as they scroll into view and a
// progress line.
type HomeScene struct {
	env *Env

	background *field.Composite
	surface    *render.EbitenSurface
	light      bool

	header  *typewriter.Lines
	tracker *reveal.Tracker
	fades   []float64

	width, height float64
	unmounted     bool
}

// NewHomeScene creates the home page in the dark theme.
func NewHomeScene(env *Env) *HomeScene {
	names := append([]string{homeIntroSection}, config.HomeSections...)
	heights := make([]float64, len(names))
	for i := range heights {
		heights[i] = config.HomeSectionHeight * env.DPR
	}

	s := &HomeScene{
		env:     env,
		surface: render.NewEbitenSurface(nil, nil),
		header:  typewriter.NewLines(config.HomeTypewriterLines, config.HomeCharDelay, config.HomeLinePause, config.HomeResetPause),
		tracker: reveal.NewTracker(0, config.RevealThreshold, names, heights),
		fades:   make([]float64, len(names)),
	}
	s.tracker.OnChange(func(sec *reveal.Section) {
		log.Printf("[HomeScene] Section %q revealed=%v", sec.Name, sec.Revealed())
	})
	return s
}

// Light reports whether the light theme is active.
func (s *HomeScene) Light() bool { return s.light }

// Tracker exposes the section reveal state.
func (s *HomeScene) Tracker() *reveal.Tracker { return s.tracker }

// Background returns the current particle field, nil before the first Resize.
func (s *HomeScene) Background() *field.Composite { return s.background }

// Header returns the lines typed so far.
func (s *HomeScene) Header() []string { return s.header.Display() }

// SetLight switches the theme and rebuilds the field with the new palette.
func (s *HomeScene) SetLight(light bool) {
	if s.light == light {
		return
	}
	s.light = light
	log.Printf("[HomeScene] Theme light=%v", light)
	s.rebuildBackground()
}

func (s *HomeScene) rebuildBackground() {
	if s.background != nil {
		s.background.Stop()
		s.background = nil
	}
	if s.width <= 0 || s.height <= 0 {
		return
	}
	s.background = s.env.buildField(SceneHome, s.width, s.height, s.light)
}

// Update 处理输入、推进打字机和区块淡入
func (s *HomeScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	if in := s.env.Input; in != nil {
		if in.ToggleTheme() {
			s.SetLight(!s.light)
		}
		if i := in.Project(); i >= 0 && i < len(config.HomeProjects) {
			s.env.Scenes.Navigate(ProjectPrefix + config.HomeProjects[i])
		}
		if d := in.ScrollDelta(config.HomeScrollStep*s.env.DPR, s.height*0.9); d != 0 {
			s.tracker.ScrollBy(d)
		}
	}

	s.header.Advance(time.Duration(deltaTime * float64(time.Second)))

	for i, sec := range s.tracker.Sections() {
		target := 0.0
		if sec.Revealed() {
			target = 1
		}
		s.fades[i] = utils.Approach(s.fades[i], target, homeFadeStep)
	}
}

// Fade returns the fade-in amount of section i, 0 to 1.
func (s *HomeScene) Fade(i int) float64 {
	if i < 0 || i >= len(s.fades) {
		return 0
	}
	return s.fades[i]
}

// Draw renders the field, the sections and the progress line.
func (s *HomeScene) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	if s.background != nil {
		s.background.Frame(s.surface)
	} else {
		screen.Fill(color.Black)
	}

	ink := inkColor(s.light)
	dpr := s.env.DPR
	scrollY := s.tracker.ScrollY()
	headerFace := s.env.loadFace(44)
	sectionFace := s.env.loadFace(28)

	for i, sec := range s.tracker.Sections() {
		top := sec.Top - scrollY
		if top > s.height || top+sec.Height < 0 {
			continue
		}
		alpha := utils.EaseOutCubic(s.fades[i])
		if alpha <= 0 {
			continue
		}
		c := render.WithAlpha(ink, alpha)
		y := top + sec.Height/3 + (1-alpha)*homeSlide*dpr

		if sec.Name == homeIntroSection {
			for j, line := range s.header.Display() {
				if j == s.header.Cursor() {
					line += "|"
				}
				drawLeft(screen, line, headerFace, 64*dpr, y+float64(j)*56*dpr, c)
			}
			continue
		}
		var measure utils.MeasureFunc
		if sectionFace != nil {
			measure = utils.FaceMeasure(sectionFace)
		}
		for j, line := range utils.WrapText(sec.Name, measure, s.width*0.8) {
			drawCentered(screen, line, sectionFace, s.width/2, y+float64(j)*40*dpr, c)
		}
	}

	// 顶部滚动进度条
	barH := float32(3 * dpr)
	vector.DrawFilledRect(screen, 0, 0, float32(s.tracker.PageProgress()*s.width), barH, ink, true)
}

// Resize updates the viewport and the field bounds.
func (s *HomeScene) Resize(width, height float64) {
	s.width, s.height = width, height
	s.tracker.Resize(height)
	if s.unmounted {
		return
	}
	if s.background == nil {
		s.rebuildBackground()
		return
	}
	s.background.Resize(width, height)
}

// Unmount stops the background field.
func (s *HomeScene) Unmount() {
	if s.unmounted {
		return
	}
	s.unmounted = true
	if s.background != nil {
		s.background.Stop()
	}
	log.Printf("[HomeScene] Unmounted")
}
