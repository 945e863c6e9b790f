// Package config loads application settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up by the loader.
const FileName = "app.toml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Loader loads configuration from TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads app.toml, fills in defaults and validates the result.
func (l *Loader) Load() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, FileName, err)
	}

	var cfg AppConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), FileName)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the display settings are usable.
func (c *AppConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth < 0 || d.ScreenHeight < 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale < 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalid, d.Scale)
	}
	if d.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, d.TPS)
	}
	return nil
}
