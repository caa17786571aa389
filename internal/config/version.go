package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the config file schema this build writes.
const SchemaVersion = "1.0.0"

// ErrIncompatibleSchema is returned for config files from another major version.
var ErrIncompatibleSchema = errors.New("incompatible config schema version")

// CheckSchemaVersion accepts an empty version (treated as current) or any
// semver with the same major version as SchemaVersion.
func CheckSchemaVersion(v string) error {
	if v == "" {
		return nil
	}

	got, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version: %w", ErrIncompatibleSchema, v, err)
	}

	want := semver.MustParse(SchemaVersion)
	if got.Major() != want.Major() {
		return fmt.Errorf("%w: got %s, want %d.x", ErrIncompatibleSchema, got, want.Major())
	}
	return nil
}
