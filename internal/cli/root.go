// Package cli holds the folio command line.
package cli

import (
	"fmt"
	"os"

	"github.com/decker502/folio/pkg/app"
	"github.com/decker502/folio/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	startScene  string
	seed        int64
	noAudio     bool
	presetsFile string
	fontFile    string
	cueFile     string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Particle-field portfolio splash",
	Long: `folio opens a window with the portfolio splash: a particle network,
a 0-100% loader, the converging markers and a typed name, then the home
page with scroll-revealed sections and one animated page per project.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultAppConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVar(&startScene, "start", "", "start scene: loader, home or project:<name>")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "particle random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable the loader sound")
	rootCmd.Flags().StringVar(&presetsFile, "presets", "", "presets YAML file (default: built-in)")
	rootCmd.Flags().StringVar(&fontFile, "font", "", "TTF/OTF font file (default: Go Regular)")
	rootCmd.Flags().StringVar(&cueFile, "cue", "", "loader sound file, .mp3/.ogg/.wav (default: synthesized)")
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	cfg, err := config.LoadAppConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Verbose = true
	}
	flags := cmd.Flags()
	if flags.Lookup("presets") != nil && flags.Changed("presets") {
		cfg.PresetsFile = presetsFile
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func loadPresets(cfg *config.AppConfig) (*config.Presets, error) {
	if cfg.PresetsFile != "" {
		return config.LoadPresets(cfg.PresetsFile)
	}
	return config.LoadEmbeddedPresets()
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("start") {
		if _, _, err := config.ParseStartScene(startScene); err != nil {
			return err
		}
		cfg.StartScene = startScene
	}
	if noAudio {
		cfg.Audio = false
	}
	if cueFile != "" {
		cfg.CueFile = cueFile
	}
	if fontFile != "" {
		cfg.FontFile = fontFile
	}

	appCfg := app.ConfigFrom(cfg)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	a, err := app.NewApp(appCfg)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer a.Close()

	return ebiten.RunGame(a)
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
