package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/sequencer"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoaderScene is the splash: "Let's Go", a 0-100% counter, the two-letter
// mark with the converging markers, then the typed name and a jump home.
type LoaderScene struct {
	env    *Env
	loader *sequencer.Loader

	background *field.Composite
	surface    *render.EbitenSurface

	width, height float64
	navigated     bool
	unmounted     bool
}

// NewLoaderScene creates an idle loader.
func NewLoaderScene(env *Env) *LoaderScene {
	opts := sequencer.DefaultOptions(0, 0, env.DPR)
	if env.Target != "" {
		opts.Target = env.Target
	}
	if env.Audio != nil {
		opts.Cue = env.Audio.LoaderCue()
	}

	s := &LoaderScene{
		env:     env,
		loader:  sequencer.New(opts),
		surface: render.NewEbitenSurface(nil, nil),
	}
	s.loader.Subscribe(s.onEvent)
	return s
}

func (s *LoaderScene) onEvent(ev sequencer.Event) {
	switch ev.Kind {
	case sequencer.EventTheme:
		// 背景场的配色跟随主题，需要重建
		s.rebuildBackground()
	case sequencer.EventNavigate:
		if !s.navigated {
			s.navigated = true
			log.Printf("[LoaderScene] Loader finished, navigating to %s", SceneHome)
			s.env.Scenes.Navigate(SceneHome)
		}
	}
}

func (s *LoaderScene) rebuildBackground() {
	if s.background != nil {
		s.background.Stop()
		s.background = nil
	}
	if s.width <= 0 || s.height <= 0 {
		return
	}
	s.background = s.env.buildField(SceneLoader, s.width, s.height, s.loader.Light())
}

// Loader exposes the phase machine.
func (s *LoaderScene) Loader() *sequencer.Loader { return s.loader }

// Background returns the current particle field, nil before the first Resize.
func (s *LoaderScene) Background() *field.Composite { return s.background }

// Update 处理启动输入并推进加载序列
func (s *LoaderScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	if s.loader.Phase() == sequencer.PhaseIdle && s.env.Input != nil && s.env.Input.Confirm() {
		log.Printf("[LoaderScene] Start requested")
		s.loader.Start()
	}
	s.loader.Update(deltaTime)
}

// Draw renders the field, the markers and the text of the current screen.
func (s *LoaderScene) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	if s.background != nil {
		s.background.Frame(s.surface)
	} else {
		screen.Fill(color.Black)
	}

	light := s.loader.Light()
	s.drawMarkers(light)

	cx, cy := s.width/2, s.height/2
	ink := inkColor(light)
	switch s.loader.Phase().Screen() {
	case sequencer.ScreenStart:
		drawCentered(screen, "Let's Go", s.env.loadFace(config.LoaderFontSize/2), cx, cy, ink)
	case sequencer.ScreenCounter:
		drawCentered(screen, fmt.Sprintf("%d%%", s.loader.Count()), s.env.loadFace(config.LoaderFontSize), cx, cy, ink)
	case sequencer.ScreenMark:
		if s.loader.MarkVisible() {
			drawCentered(screen, config.LoaderMark, s.env.loadFace(config.LoaderFontSize), cx, cy, ink)
		}
	case sequencer.ScreenTyping:
		typed := s.loader.Typed()
		if len(typed) < len(s.loader.Target()) {
			typed += "|"
		}
		drawCentered(screen, strings.ToUpper(typed), s.env.loadFace(config.LoaderFontSize*0.75), cx, cy, ink)
	}
}

func (s *LoaderScene) drawMarkers(light bool) {
	if !s.loader.MarkersVisible() {
		return
	}
	m := s.loader.Markers()
	c := inkColor(light)
	r := m.Radius()
	for _, mk := range []sequencer.Marker{m.Left, m.Right} {
		s.surface.Dot(mk.X, mk.Y, r, c, config.MarkerAlpha, config.MarkerGlow*s.env.DPR)
	}
}

// Resize builds the background on the first call and afterwards only
// updates the surface bounds.
func (s *LoaderScene) Resize(width, height float64) {
	s.width, s.height = width, height
	s.loader.Resize(width, height)
	if s.unmounted {
		return
	}
	if s.background == nil {
		s.rebuildBackground()
		return
	}
	s.background.Resize(width, height)
}

// Unmount stops the loader timers, the cue and the background field.
func (s *LoaderScene) Unmount() {
	if s.unmounted {
		return
	}
	s.unmounted = true
	s.loader.Stop()
	if s.background != nil {
		s.background.Stop()
	}
	log.Printf("[LoaderScene] Unmounted at phase %s", s.loader.Phase())
}
