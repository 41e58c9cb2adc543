package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/decker502/folio/pkg/config"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the field presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		presets, err := loadPresets(cfg)
		if err != nil {
			return err
		}
		writePresets(cmd.OutOrStdout(), presets)
		return nil
	},
}

func init() {
	presetsCmd.Flags().StringVar(&presetsFile, "presets", "", "presets YAML file (default: built-in)")
	rootCmd.AddCommand(presetsCmd)
}

// writePresets prints one line per preset: name, title and layers.
func writePresets(w io.Writer, presets *config.Presets) {
	for _, p := range presets.All() {
		fmt.Fprintf(w, "%-14s %-16s %s\n", p.Name, p.Title, strings.Join(presetLayers(p), "+"))
	}
}

func presetLayers(p config.Preset) []string {
	var layers []string
	if p.Twinkle != nil {
		layers = append(layers, "twinkle")
	}
	if p.Drift != nil {
		layers = append(layers, "drift")
	}
	if p.Network != nil {
		layers = append(layers, "network")
	}
	return layers
}
