package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dosecalc/internal/config"
)

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := config.DefaultConfig()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	// Untouched sections keep their defaults.
	assert.Equal(t, "info", target.Logging.Level)
	assert.InDelta(t, 18.0, target.Nicotine.CapacityMl, 1e-9)
}

func TestShallowMergeYAML_ReplacesWholeSection(t *testing.T) {
	target := config.DefaultConfig()
	overlay := writeOverlay(t, `
drinks:
  beverage: wine
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "wine", target.Drinks.Beverage)
	// The section is replaced, not merged field by field.
	assert.Empty(t, target.Drinks.Unit)
	assert.Zero(t, target.Drinks.Quantity)
}

func TestShallowMergeYAML_MultipleSections(t *testing.T) {
	target := config.DefaultConfig()
	overlay := writeOverlay(t, `
nicotine:
  percent: 3
  capacity_ml: 10
  days: 5
server:
  address: ":9090"
  read_timeout: 1s
  write_timeout: 2s
  shutdown_timeout: 3s
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.InDelta(t, 3.0, target.Nicotine.Percent, 1e-9)
	assert.InDelta(t, 10.0, target.Nicotine.CapacityMl, 1e-9)
	assert.InDelta(t, 5.0, target.Nicotine.Days, 1e-9)
	assert.Equal(t, ":9090", target.Server.Address)
	assert.Equal(t, 3*time.Second, target.Server.ShutdownTimeout)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.DefaultConfig()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.DefaultConfig().Drinks, target.Drinks)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.DefaultConfig()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.DefaultConfig().Output, target.Output)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  *config.Config
		content string
		path    string
	}{
		{name: "nil target", target: nil, content: "output: {}\n"},
		{name: "missing file", target: config.DefaultConfig(), path: "/nonexistent/overlay.yaml"},
		{name: "invalid yaml", target: config.DefaultConfig(), content: "output: [\n"},
		{name: "section type mismatch", target: config.DefaultConfig(), content: "drinks: [1, 2]\n"},
		{name: "incompatible version", target: config.DefaultConfig(), content: "version: 2.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = writeOverlay(t, tt.content)
			}
			assert.Error(t, config.ShallowMergeYAML(tt.target, path))
		})
	}
}
