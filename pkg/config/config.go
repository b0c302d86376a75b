// Package config loads pathtidy's configuration: embedded TOML defaults,
// overridden by the user's config file, overridden by PATHTIDY_ environment
// variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pterrors "github.com/arthur-debert/pathtidy/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix namespaces environment overrides, e.g.
// PATHTIDY_TRUNCATION_THRESHOLD=12.
const envPrefix = "PATHTIDY_"

// Config is the effective configuration after merging all sources.
type Config struct {
	Truncation TruncationConfig `koanf:"truncation" toml:"truncation"`
	Backup     BackupConfig     `koanf:"backup" toml:"backup"`
	Store      StoreConfig      `koanf:"store" toml:"store"`
	Output     OutputConfig     `koanf:"output" toml:"output"`
}

// TruncationConfig tunes the suspected-truncation heuristic.
type TruncationConfig struct {
	Threshold  int      `koanf:"threshold" toml:"threshold"`
	KnownRoots []string `koanf:"known_roots" toml:"known_roots"`
}

// BackupConfig locates the snapshot directory.
type BackupConfig struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// StoreConfig selects the persisted PATH store.
type StoreConfig struct {
	Kind string `koanf:"kind" toml:"kind"`
	Dir  string `koanf:"dir" toml:"dir"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Color string `koanf:"color" toml:"color"`
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "pathtidy", "pathtidy.toml")
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration. Path may name an explicit config
// file; when empty the default location is used if present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pterrors.Wrap(err, pterrors.ErrConfigParse, "failed to load built-in defaults")
	}

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, pterrors.Wrapf(err, pterrors.ErrConfigParse, "failed to parse config file %s", path)
		}
	} else if explicit {
		return nil, pterrors.Wrapf(err, pterrors.ErrConfigLoad, "config file %s not readable", path)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, pterrors.Wrap(err, pterrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, pterrors.Wrap(err, pterrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
