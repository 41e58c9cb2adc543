package scenes

import (
	"image/color"
	"log"
	"strings"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ProjectScene shows one project preset full screen with its title.
type ProjectScene struct {
	env    *Env
	preset config.Preset

	background *field.Composite
	surface    *render.EbitenSurface

	width, height float64
	elapsed       float64
	unmounted     bool
}

// 标题淡入时长（秒）
const projectTitleFade = 0.8

// NewProjectScene creates the page for a preset. It returns an error for
// unknown names.
func NewProjectScene(env *Env, name string) (*ProjectScene, error) {
	p, err := env.Resources.Preset(name)
	if err != nil {
		return nil, err
	}
	return &ProjectScene{
		env:     env,
		preset:  p,
		surface: render.NewEbitenSurface(nil, nil),
	}, nil
}

// Name is the preset name.
func (s *ProjectScene) Name() string { return s.preset.Name }

// Background returns the current field, nil before the first Resize.
func (s *ProjectScene) Background() *field.Composite { return s.background }

// Update 处理返回键
func (s *ProjectScene) Update(deltaTime float64) {
	if s.unmounted {
		return
	}
	s.elapsed += deltaTime
	if in := s.env.Input; in != nil && in.Back() {
		log.Printf("[ProjectScene] Back to %s from %s", SceneHome, s.preset.Name)
		s.env.Scenes.Navigate(SceneHome)
	}
}

// TitleFade is the eased title opacity, rising from 0 to 1 after the page opens.
func (s *ProjectScene) TitleFade() float64 {
	return utils.EaseInOutCubic(utils.Clamp01(s.elapsed / projectTitleFade))
}

// Draw renders the field, the title and a back hint.
func (s *ProjectScene) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	if s.background != nil {
		s.background.Frame(s.surface)
	} else {
		screen.Fill(color.Black)
	}

	// 项目页都是深色背景
	ink := inkColor(false)
	title := s.preset.Title
	if title == "" {
		title = s.preset.Name
	}
	t := s.TitleFade()
	y := utils.Lerp(s.height/2+24*s.env.DPR, s.height/2, t)
	drawCentered(screen, strings.ToUpper(title), s.env.loadFace(56), s.width/2, y, render.WithAlpha(ink, t))
	drawLeft(screen, "Esc  back", s.env.loadFace(16), 24*s.env.DPR, 24*s.env.DPR, render.WithAlpha(ink, 0.6))
}

// Resize builds the field on the first call and afterwards only updates
// its bounds.
func (s *ProjectScene) Resize(width, height float64) {
	s.width, s.height = width, height
	if s.unmounted {
		return
	}
	if s.background == nil {
		s.background = s.env.buildField(s.preset.Name, width, height, false)
		return
	}
	s.background.Resize(width, height)
}

// Unmount stops the field.
func (s *ProjectScene) Unmount() {
	if s.unmounted {
		return
	}
	s.unmounted = true
	if s.background != nil {
		s.background.Stop()
	}
	log.Printf("[ProjectScene] Unmounted %s", s.preset.Name)
}
