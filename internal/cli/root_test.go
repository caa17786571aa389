package cli_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dosecalc/internal/cli"
	"github.com/rshade/dosecalc/internal/consumption"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := cli.NewRootCmd("v1.0.0")
	assert.Equal(t, "dosecalc", cmd.Use)
	assert.Equal(t, "v1.0.0", cmd.Version)

	for _, name := range []string{"drinks", "nicotine", "reference", "form", "serve", "config", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	for _, name := range []string{"init", "validate", "show"} {
		t.Run("config "+name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{"config", name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestNewRootCmd_PersistentFlags(t *testing.T) {
	cmd := cli.NewRootCmd("test")
	for _, name := range []string{"debug", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestExitCode(t *testing.T) {
	invalid := fmt.Errorf("%w: quantity must be >= 1", consumption.ErrInvalidInput)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "generic", err: errors.New("boom"), want: cli.ExitCodeError},
		{
			name: "input error",
			err:  &cli.InputExitError{ExitCode: cli.ExitCodeInvalidInput, Err: invalid},
			want: cli.ExitCodeInvalidInput,
		},
		{
			name: "wrapped input error",
			err:  fmt.Errorf("outer: %w", &cli.InputExitError{ExitCode: cli.ExitCodeInvalidInput, Err: invalid}),
			want: cli.ExitCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestInputExitError_Unwrap(t *testing.T) {
	err := &cli.InputExitError{ExitCode: 2, Err: consumption.ErrUnknownUnit}
	assert.ErrorIs(t, err, consumption.ErrInvalidInput)
	assert.Equal(t, consumption.ErrUnknownUnit.Error(), err.Error())
}

func TestRootCmd_ConfigOverlay(t *testing.T) {
	setupCLITest(t)

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("drinks:\n  beverage: wine\n  unit: mL\n  volume: 150\n  quantity: 1\n"), 0o600))

	stdout, _, err := executeRoot(t, "--config", overlay, "drinks")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wine")
	assert.Contains(t, stdout, "1.06 total standard drinks")
}

func TestRootCmd_BadOverlay(t *testing.T) {
	setupCLITest(t)

	_, _, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "drinks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config overlay")
	assert.Equal(t, cli.ExitCodeError, cli.ExitCode(err))
}

func TestRootCmd_FlagParseErrorsAreInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "fractional quantity", args: []string{"drinks", "--quantity", "1.5"}},
		{name: "non-numeric days", args: []string{"nicotine", "--days", "abc"}},
		{name: "unknown flag", args: []string{"drinks", "--strength", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, _, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, consumption.ErrInvalidInput)
			assert.Equal(t, cli.ExitCodeInvalidInput, cli.ExitCode(err))
		})
	}
}
