// Package scenes holds the ebiten scenes: the loader splash, the home page
// and the per-project pages.
package scenes

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Scene names understood by the factory.
const (
	SceneLoader   = "loader"
	SceneHome     = "home"
	ProjectPrefix = "project:"
)

// Env is what every scene shares.
type Env struct {
	Resources *game.ResourceManager
	Scenes    *game.SceneManager
	Audio     *game.AudioManager // may be nil
	Input     Input

	DPR    float64
	Target string // loader typewriter text
	Seed   int64  // 0 = time-based
}

func (e *Env) fieldOptions(w, h float64, light bool) field.Options {
	opts := field.Options{Width: w, Height: h, DPR: e.DPR, Light: light}
	if e.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(e.Seed))
	}
	return opts
}

// buildField builds a preset for the surface, or returns nil with a log line.
func (e *Env) buildField(preset string, w, h float64, light bool) *field.Composite {
	comp, err := e.Resources.BuildField(preset, e.fieldOptions(w, h, light))
	if err != nil {
		log.Printf("[Scenes] Warning: %v", err)
		return nil
	}
	return comp
}

// Input is the per-frame player input a scene reads.
type Input interface {
	// Confirm is Space, Enter, a click or a tap.
	Confirm() bool
	// Back is Escape.
	Back() bool
	// ToggleTheme is the T key.
	ToggleTheme() bool
	// Project returns the index of a pressed digit key 1-9, or -1.
	Project() int
	// ScrollDelta is this frame's scroll distance in device pixels.
	ScrollDelta(step, page float64) float64
}

// EbitenInput reads keyboard, mouse and touch through ebiten.
type EbitenInput struct {
	drag *utils.DragManager
}

// NewEbitenInput creates the live input source.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{drag: utils.NewDragManager()}
}

// Poll updates touch drag tracking. Call once per frame before reading.
func (in *EbitenInput) Poll() {
	in.drag.Update()
}

func (in *EbitenInput) Confirm() bool {
	if utils.IsConfirmJustPressed() {
		return true
	}
	tapped, _, _ := utils.IsJustTouchedOrClicked()
	return tapped
}

func (in *EbitenInput) Back() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

func (in *EbitenInput) ToggleTheme() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyT)
}

func (in *EbitenInput) Project() int {
	for i := 0; i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1+ebiten.Key(i)) ||
			inpututil.IsKeyJustPressed(ebiten.KeyNumpad1+ebiten.Key(i)) {
			return i
		}
	}
	return -1
}

func (in *EbitenInput) ScrollDelta(step, page float64) float64 {
	return utils.ReadScrollDelta(in.drag, step, page)
}

// inkColor is the text colour for a theme.
func inkColor(light bool) color.NRGBA {
	if light {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// drawCentered draws s centred on (x, y).
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// drawLeft draws s with its top-left corner at (x, y).
func drawLeft(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// loadFace returns a cached face, logging failures.
func (e *Env) loadFace(size float64) *text.GoTextFace {
	face, err := e.Resources.LoadFont(size * e.DPR)
	if err != nil {
		log.Printf("[Scenes] Warning: Failed to load font: %v", err)
		return nil
	}
	return face
}
