package app

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/loop"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/sequencer"
	"github.com/gdamore/tcell/v2"
)

// TermConfig 终端渲染配置
type TermConfig struct {
	Preset   string
	FPS      int
	Duration time.Duration // 0 = until q/Esc
	Light    bool
	// Sequence 在终端里运行完整的加载序列，结束后退出
	Sequence bool
	Target   string
	Seed     int64
}

// termHost owns the field and the optional loader. step and resize run on
// different goroutines and share mu.
type termHost struct {
	mu      sync.Mutex
	surface *render.TermSurface
	preset  config.Preset
	cfg     TermConfig

	comp   *field.Composite
	loader *sequencer.Loader
	light  bool

	finished chan struct{}
	once     sync.Once
}

func newTermHost(screen tcell.Screen, presets *config.Presets, cfg TermConfig) (*termHost, error) {
	if cfg.Sequence && cfg.Preset == "" {
		cfg.Preset = "loader"
	}
	p, ok := presets.Get(cfg.Preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", cfg.Preset, presets.Names())
	}

	h := &termHost{
		surface:  render.NewTermSurface(screen),
		preset:   p,
		cfg:      cfg,
		light:    cfg.Light && !cfg.Sequence,
		finished: make(chan struct{}),
	}
	if err := h.rebuild(); err != nil {
		return nil, err
	}

	if cfg.Sequence {
		w, hh := h.surface.Size()
		opts := sequencer.DefaultOptions(w, hh, 1)
		if cfg.Target != "" {
			opts.Target = cfg.Target
		}
		h.loader = sequencer.New(opts)
		h.loader.Subscribe(h.onEvent)
		h.loader.Start()
	}
	return h, nil
}

func (h *termHost) rebuild() error {
	w, hh := h.surface.Size()
	opts := field.Options{Width: w, Height: hh, DPR: 1, Light: h.light}
	if h.cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(h.cfg.Seed))
	}
	comp, err := h.preset.Build(opts)
	if err != nil {
		return fmt.Errorf("failed to build preset %s: %w", h.preset.Name, err)
	}
	if h.comp != nil {
		h.comp.Stop()
	}
	h.comp = comp
	return nil
}

// onEvent runs inside step with mu held.
func (h *termHost) onEvent(ev sequencer.Event) {
	switch ev.Kind {
	case sequencer.EventTheme:
		h.light = true
		if err := h.rebuild(); err != nil {
			log.Printf("[Term] Warning: %v", err)
		}
	case sequencer.EventNavigate:
		h.once.Do(func() { close(h.finished) })
	}
}

func (h *termHost) step(dt float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loader != nil {
		h.loader.Update(dt)
	}
	h.comp.Frame(h.surface)
	if h.loader != nil {
		h.drawLoader()
	}
	h.surface.Show()
}

func (h *termHost) drawLoader() {
	w, hh := h.surface.Size()
	ink := termInk(h.loader.Light())

	if h.loader.MarkersVisible() {
		m := h.loader.Markers()
		for _, mk := range []sequencer.Marker{m.Left, m.Right} {
			h.surface.Dot(mk.X, mk.Y, m.Radius(), ink, config.MarkerAlpha, 0)
		}
	}

	switch h.loader.Phase().Screen() {
	case sequencer.ScreenCounter:
		h.surface.Text(w/2, hh/2, fmt.Sprintf("%d%%", h.loader.Count()), ink, 1)
	case sequencer.ScreenMark:
		if h.loader.MarkVisible() {
			h.surface.Text(w/2, hh/2, config.LoaderMark, ink, 1)
		}
	case sequencer.ScreenTyping:
		h.surface.Text(w/2, hh/2, strings.ToUpper(h.loader.Typed()), ink, 1)
	}
}

func termInk(light bool) color.NRGBA {
	if light {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

func (h *termHost) resize() {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, hh := h.surface.Size()
	h.comp.Resize(w, hh)
	if h.loader != nil {
		h.loader.Resize(w, hh)
	}
}

func (h *termHost) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.loader != nil {
		h.loader.Stop()
	}
	h.comp.Stop()
}

// RunTerm renders a preset on screen until ctx ends, the duration passes,
// the user presses q, Esc or Ctrl-C, or the loader sequence finishes.
// screen must already be initialised; the caller finalises it.
func RunTerm(ctx context.Context, screen tcell.Screen, presets *config.Presets, cfg TermConfig) error {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	h, err := newTermHost(screen, presets, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.Duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	log.Printf("[Term] Rendering %s at %d fps", h.preset.Name, cfg.FPS)
	handle := loop.Run(ctx, time.Second/time.Duration(cfg.FPS), h.step)

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
				h.resize()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					return
				}
			}
		}
	}()

	select {
	case <-ctx.Done():
	case <-h.finished:
	}
	handle.Stop()
	h.stop()
	log.Printf("[Term] Stopped")
	return nil
}
