package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/folio/pkg/app"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var (
	termPreset   string
	termFPS      int
	termDuration time.Duration
	termLight    bool
	termSequence bool
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Render a preset in the terminal",
	Long: `Render a field preset with terminal cells instead of a window.
With --sequence the full loader runs (counter, mark, markers, typed name)
and the command exits when it would navigate. Press q or Esc to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		presets, err := loadPresets(cfg)
		if err != nil {
			return err
		}
		fps := cfg.TerminalFPS
		if cmd.Flags().Changed("fps") {
			fps = termFPS
		}
		preset := termPreset
		if termSequence && !cmd.Flags().Changed("preset") {
			preset = "loader"
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return app.RunTerm(ctx, screen, presets, app.TermConfig{
			Preset:   preset,
			FPS:      fps,
			Duration: termDuration,
			Light:    termLight,
			Sequence: termSequence,
			Target:   cfg.TargetName,
			Seed:     cfg.Seed,
		})
	},
}

func init() {
	termCmd.Flags().StringVarP(&termPreset, "preset", "p", "home", "preset to render")
	termCmd.Flags().IntVar(&termFPS, "fps", 30, "frames per second")
	termCmd.Flags().DurationVar(&termDuration, "duration", 0, "stop after this long (0 = until q)")
	termCmd.Flags().BoolVar(&termLight, "light", false, "use the light theme")
	termCmd.Flags().BoolVar(&termSequence, "sequence", false, "run the loader sequence")
	termCmd.Flags().Int64Var(&seed, "seed", 0, "particle random seed (0 = time based)")
	termCmd.Flags().StringVar(&presetsFile, "presets", "", "presets YAML file (default: built-in)")
	rootCmd.AddCommand(termCmd)
}
