package game

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/field"
	"github.com/decker502/folio/pkg/render"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of scene resources.
// It owns the field presets and caches font faces so every scene shares the
// same parsed font data.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The font cache is a plain map and
// is only touched from the ebiten update goroutine.
//
// Usage:
//
//	rm, err := NewResourceManager("")
//	if err != nil {
//	    log.Fatalf("Failed to load presets: %v", err)
//	}
//	preset, _ := rm.Preset("loader")
type ResourceManager struct {
	presets       *config.Presets
	fontPath      string
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager loads the field presets.
// An empty presetsFile selects the presets embedded in the binary.
func NewResourceManager(presetsFile string) (*ResourceManager, error) {
	var (
		presets *config.Presets
		err     error
	)
	if presetsFile == "" {
		presets, err = config.LoadEmbeddedPresets()
	} else {
		presets, err = config.LoadPresets(presetsFile)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[ResourceManager] Loaded %d presets: %v", presets.Len(), presets.Names())
	return NewResourceManagerWithPresets(presets), nil
}

// NewResourceManagerWithPresets wraps an already parsed preset set.
func NewResourceManagerWithPresets(presets *config.Presets) *ResourceManager {
	return &ResourceManager{
		presets:       presets,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// Presets returns the full preset set.
func (rm *ResourceManager) Presets() *config.Presets {
	return rm.presets
}

// Preset looks up a preset by name.
func (rm *ResourceManager) Preset(name string) (config.Preset, error) {
	p, ok := rm.presets.Get(name)
	if !ok {
		return config.Preset{}, fmt.Errorf("unknown preset %q (available: %v)", name, rm.presets.Names())
	}
	return p, nil
}

// BuildField builds the layered field for a named preset.
func (rm *ResourceManager) BuildField(name string, opts field.Options) (*field.Composite, error) {
	p, err := rm.Preset(name)
	if err != nil {
		return nil, err
	}
	comp, err := p.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build preset %s: %w", name, err)
	}
	return comp, nil
}

// SetFontFile replaces the bundled Go Regular font with a TTF/OTF file.
// Cached faces are dropped.
func (rm *ResourceManager) SetFontFile(path string) error {
	fontData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	rm.fontPath = path
	rm.fontSource = source
	clear(rm.fontFaceCache)
	return nil
}

// FontPath returns the custom font file, or "" for the bundled font.
func (rm *ResourceManager) FontPath() string {
	return rm.fontPath
}

// LoadFont returns a cached face of the given pixel size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	var face *text.GoTextFace
	if rm.fontSource != nil {
		face = &text.GoTextFace{
			Source:    rm.fontSource,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	} else {
		var err error
		if face, err = render.NewFace(size); err != nil {
			return nil, err
		}
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// GetFont retrieves a previously loaded face, or nil.
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	return rm.fontFaceCache[size]
}
