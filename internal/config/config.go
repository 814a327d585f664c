// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"genepic/internal/palette"
)

// ErrConfig marks every configuration problem (bad file, bad value). Callers
// treat it as a usage error, reported before any work starts.
var ErrConfig = errors.New("configuration error")

// Settings is the resolved configuration for one run. Defaults are
// overlaid by a config file and then by explicitly set flags.
type Settings struct {
	Input string // path or "-" for stdin

	Scale       int
	Threads     int // 0 = one worker per CPU
	Serpentine  bool
	DropUnknown bool

	Colors map[palette.Base]string // hex overrides; missing = built-in color

	Name     string
	Dir      string
	Format   string
	Optimize bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Input:    "-",
		Scale:    1,
		Threads:  0,
		Colors:   map[palette.Base]string{},
		Name:     "GenePic",
		Dir:      ".",
		Format:   "png",
		Optimize: true,
	}
}

// Validate checks the scalar settings. Colors and formats are checked by
// their owners (palette.Build, emit.Lookup).
func (s Settings) Validate() error {
	if s.Scale < 1 {
		return fmt.Errorf("%w: scale must be >= 1, got %d", ErrConfig, s.Scale)
	}
	if s.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0 (0 = all CPUs), got %d", ErrConfig, s.Threads)
	}
	if s.Input == "" {
		return fmt.Errorf("%w: input must be a path or '-'", ErrConfig)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: output name must not be empty", ErrConfig)
	}
	return nil
}
