package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/folio/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePresets(t *testing.T) {
	ps, err := config.ParsePresets([]byte(`
presets:
  - name: dreamy
    title: Dream
    twinkle: {count: 3}
    drift: {count: 2, glyphs: "♥", colors: ["#ff69b4"]}
  - name: net
    network: {count: 4}
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	writePresets(&buf, ps)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "dreamy"))
	assert.True(t, strings.HasSuffix(lines[0], "twinkle+drift"))
	assert.Contains(t, lines[0], "Dream")
	assert.True(t, strings.HasSuffix(lines[1], "network"))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Equal(t, "folio dev\n", buf.String())
}

func TestPresetsCommand_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: solo\n    title: Solo\n    network: {count: 2}\n"), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"presets", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--presets", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		presetsFile = ""
	})

	require.NoError(t, Execute())
	assert.Contains(t, buf.String(), "solo")
	assert.Contains(t, buf.String(), "network")
}
