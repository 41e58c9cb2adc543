// Package main provides a field preset viewer for tuning the particle
// presets.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--presets <file>      Presets YAML (default data/presets.yaml)
//	--preset <name>       Start with a specific preset
//	--filter <keyword>    Initial filter by name
//	--auto-play           Cycle through presets every 5 seconds
//	--light               Start in the light theme
//	--seed <n>            Random seed (0 = time based)
//
// Controls:
//
//	Left/Right Arrow  - Switch to previous/next preset
//	Home/End          - Jump to first/last preset
//	Space             - Rebuild the current preset with new particles
//	L                 - Toggle light theme
//	P                 - Toggle pause
//	F or /            - Enter search mode
//	Q/Escape          - Quit
//
// Search Mode (press F or /):
//
//	Type letters      - Filter presets by name
//	Backspace         - Delete last character
//	Enter/Escape      - Exit search mode
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1024
	screenHeight = 768

	autoPlayInterval = 5 * time.Second
)

var (
	presetsFlag  = flag.String("presets", "data/presets.yaml", "Presets YAML file")
	presetFlag   = flag.String("preset", "", "Start with specific preset name")
	filterFlag   = flag.String("filter", "", "Initial filter by name keyword")
	autoPlayFlag = flag.Bool("auto-play", false, "Auto cycle through presets")
	lightFlag    = flag.Bool("light", false, "Start in the light theme")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = time based)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var errQuit = errors.New("quit")

// PresetViewer implements ebiten.Game for browsing presets.
type PresetViewer struct {
	presets *config.Presets
	surface *render.EbitenSurface
	comp    *field.Composite

	filtered     []string
	currentIndex int

	searchMode  bool
	searchQuery string

	autoPlay   bool
	lastSwitch time.Time
	paused     bool
	light      bool
	seed       int64

	statusMessage string
}

// NewPresetViewer loads the presets file.
func NewPresetViewer(path string) (*PresetViewer, error) {
	presets, err := config.LoadPresets(path)
	if err != nil {
		return nil, err
	}
	if presets.Len() == 0 {
		return nil, fmt.Errorf("no presets in %s", path)
	}
	face, err := render.NewFace(16)
	if err != nil {
		log.Printf("Warning: %v (sprites fall back to dots)", err)
	}
	v := &PresetViewer{
		presets:    presets,
		surface:    render.NewEbitenSurface(nil, face),
		autoPlay:   *autoPlayFlag,
		lastSwitch: time.Now(),
		light:      *lightFlag,
		seed:       *seedFlag,
	}
	v.applyFilter(*filterFlag)
	if *presetFlag != "" {
		v.selectName(*presetFlag)
	}
	v.rebuild()
	return v, nil
}

// filterNames keeps names containing query, case-insensitively.
func filterNames(names []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return names
	}
	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), query) {
			out = append(out, n)
		}
	}
	return out
}

func (v *PresetViewer) applyFilter(query string) {
	v.filtered = filterNames(v.presets.Names(), query)
	if len(v.filtered) == 0 {
		v.statusMessage = fmt.Sprintf("no preset matches %q", query)
		v.filtered = v.presets.Names()
	}
	v.currentIndex = 0
}

func (v *PresetViewer) selectName(name string) {
	for i, n := range v.filtered {
		if n == name {
			v.currentIndex = i
			return
		}
	}
	v.statusMessage = fmt.Sprintf("unknown preset %q", name)
}

func (v *PresetViewer) current() string {
	return v.filtered[v.currentIndex]
}

func (v *PresetViewer) rebuild() {
	p, _ := v.presets.Get(v.current())
	opts := field.Options{Width: screenWidth, Height: screenHeight, DPR: 1, Light: v.light}
	if v.seed != 0 {
		opts.Rand = rand.New(rand.NewSource(v.seed))
	}
	comp, err := p.Build(opts)
	if err != nil {
		v.statusMessage = err.Error()
		return
	}
	if v.comp != nil {
		v.comp.Stop()
	}
	v.comp = comp
	v.lastSwitch = time.Now()
	log.Printf("[Viewer] Showing %s (light=%v)", p.Name, v.light)
}

func (v *PresetViewer) step(delta int) {
	n := len(v.filtered)
	v.currentIndex = ((v.currentIndex+delta)%n + n) % n
	v.rebuild()
}

func (v *PresetViewer) updateSearch() {
	for _, r := range ebiten.AppendInputChars(nil) {
		v.searchQuery += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(v.searchQuery) > 0 {
		v.searchQuery = v.searchQuery[:len(v.searchQuery)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.searchMode = false
		v.applyFilter(v.searchQuery)
		v.rebuild()
	}
}

// Update handles input.
func (v *PresetViewer) Update() error {
	if v.searchMode {
		v.updateSearch()
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return errQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		v.currentIndex = 0
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		v.currentIndex = len(v.filtered) - 1
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		v.light = !v.light
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyF), inpututil.IsKeyJustPressed(ebiten.KeySlash):
		v.searchMode = true
		v.searchQuery = ""
	}

	if v.autoPlay && !v.paused && time.Since(v.lastSwitch) >= autoPlayInterval {
		v.step(1)
	}
	return nil
}

// Draw renders the preset and the status line.
func (v *PresetViewer) Draw(screen *ebiten.Image) {
	v.surface.SetTarget(screen)
	if v.comp != nil {
		if v.paused {
			// 暂停时只绘制不推进
			v.surface.Clear(v.comp.Backdrop)
			for _, l := range v.comp.Layers {
				l.Render(v.surface)
			}
		} else {
			v.comp.Frame(v.surface)
		}
	}

	status := fmt.Sprintf("[%d/%d] %s  light=%v paused=%v  fps=%.0f",
		v.currentIndex+1, len(v.filtered), v.current(), v.light, v.paused, ebiten.ActualFPS())
	if v.searchMode {
		status = "search: " + v.searchQuery + "_"
	} else if v.statusMessage != "" {
		status += "\n" + v.statusMessage
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the fixed viewer size.
func (v *PresetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	viewer, err := NewPresetViewer(*presetsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("folio - preset viewer")
	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
