package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathtidy/pkg/config"
	"github.com/arthur-debert/pathtidy/pkg/errors"
)

// setConfigHome points XDG_CONFIG_HOME at a fresh directory for the test.
// The xdg package resolves its directories at init, so it has to be told to
// re-read the environment, both now and once the test restores it.
func setConfigHome(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err, "an explicit missing config file is an error")

	// No explicit file: defaults only, under a fresh XDG home where the
	// default location does not exist.
	setConfigHome(t)
	cfg, err = config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Truncation.Threshold)
	assert.Empty(t, cfg.Truncation.KnownRoots)
	assert.Equal(t, "auto", cfg.Store.Kind)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "", cfg.Backup.Dir)
}

func TestLoadDefaultLocation(t *testing.T) {
	setConfigHome(t)
	dir := filepath.Join(xdg.ConfigHome, "pathtidy")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "[truncation]\nthreshold = 16\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pathtidy.toml"), []byte(content), 0644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Truncation.Threshold)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathtidy.toml")
	content := `
[truncation]
threshold = 14
known_roots = ["/srv", "/nix"]

[output]
color = "never"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Truncation.Threshold)
	assert.Equal(t, []string{"/srv", "/nix"}, cfg.Truncation.KnownRoots)
	assert.Equal(t, "never", cfg.Output.Color)
	// Untouched sections keep their defaults.
	assert.Equal(t, "auto", cfg.Store.Kind)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathtidy.toml")
	require.NoError(t, os.WriteFile(path, []byte("[truncation]\nthreshold = 14\n"), 0644))
	t.Setenv("PATHTIDY_TRUNCATION_THRESHOLD", "20")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Truncation.Threshold)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfigParse))
}

func TestGenerateDefaultContent(t *testing.T) {
	content := config.GenerateDefaultContent()

	assert.Contains(t, content, "[truncation]")
	assert.Contains(t, content, "# threshold = 10")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["),
			"uncommented non-section line: %q", line)
	}
}

func TestGenerateEffectiveContent(t *testing.T) {
	setConfigHome(t)
	cfg, err := config.Load("")
	require.NoError(t, err)

	out, err := config.GenerateEffectiveContent(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "threshold = 10")
	assert.Contains(t, out, "kind = 'auto'")
}
