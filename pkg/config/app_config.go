package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix 环境变量前缀，例如 FOLIO_VERBOSE=true
const EnvPrefix = "FOLIO_"

// DefaultAppConfigPath 默认配置文件路径（不存在时忽略）
const DefaultAppConfigPath = "folio.yaml"

// AppConfig holds the runtime settings of the application.
type AppConfig struct {
	WindowWidth  int    `koanf:"window_width"`
	WindowHeight int    `koanf:"window_height"`
	Verbose      bool   `koanf:"verbose"`
	StartScene   string `koanf:"start_scene"`
	PresetsFile  string `koanf:"presets_file"`
	TerminalFPS  int    `koanf:"terminal_fps"`
	Audio        bool   `koanf:"audio"`
	CueFile      string `koanf:"cue_file"`
	FontFile     string `koanf:"font_file"`
	TargetName   string `koanf:"target_name"`
	Seed         int64  `koanf:"seed"`
}

// DefaultAppConfig returns the settings used when nothing is configured.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		WindowWidth:  GameWindowWidth,
		WindowHeight: GameWindowHeight,
		StartScene:   "loader",
		TerminalFPS:  30,
		Audio:        true,
		TargetName:   LoaderTarget,
	}
}

// LoadAppConfig reads the YAML file at path, if present, then overlays
// FOLIO_* environment variables.
func LoadAppConfig(path string) (*AppConfig, error) {
	k := koanf.New(".")
	cfg := DefaultAppConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// FOLIO_WINDOW_WIDTH -> window_width
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *AppConfig) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TerminalFPS <= 0 {
		return fmt.Errorf("terminal_fps must be positive, got %d", c.TerminalFPS)
	}
	if _, _, err := ParseStartScene(c.StartScene); err != nil {
		return err
	}
	return nil
}

// ParseStartScene splits "loader", "home" or "project:<name>" into a scene
// name and an optional preset.
func ParseStartScene(s string) (scene, preset string, err error) {
	switch {
	case s == "loader" || s == "home":
		return s, "", nil
	case strings.HasPrefix(s, "project:"):
		preset = strings.TrimPrefix(s, "project:")
		if preset == "" {
			return "", "", fmt.Errorf("start_scene %q is missing a project name", s)
		}
		return "project", preset, nil
	default:
		return "", "", fmt.Errorf("unknown start_scene %q: must be loader, home or project:<name>", s)
	}
}
