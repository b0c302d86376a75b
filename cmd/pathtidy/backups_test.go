package main

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathtidy/pkg/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupsEmpty(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "", "backups")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoBackups)
}

func TestBackupsListAndRestore(t *testing.T) {
	env := setupEnv(t)
	shared := t.TempDir()
	keep := mkdir(t, shared, "toolchain-bin")
	missing := filepath.Join(shared, "missing-directory")
	env.seed(t, reconcile.ScopeSystem, keep, missing)

	// An apply produces a snapshot of the pre-change state.
	_, err := runCommand(t, "", "fix", "--yes")
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, env.load(t, reconcile.ScopeSystem))

	out, err := runCommand(t, "", "backups")
	require.NoError(t, err)
	assert.NotContains(t, out, MsgNoBackups)

	stamps, err := filepath.Glob(filepath.Join(env.backupDir, "*-system.paths"))
	require.NoError(t, err)
	require.Len(t, stamps, 1)
	stamp := filepath.Base(stamps[0])
	stamp = stamp[:len(stamp)-len("-system.paths")]
	assert.Contains(t, out, stamp)

	// Restoring brings back the pre-fix value, dead entry included.
	out, err = runCommand(t, "y\n", "backups", "restore", stamp)
	require.NoError(t, err)
	assert.Contains(t, out, "restored")
	assert.Equal(t, []string{keep, missing}, env.load(t, reconcile.ScopeSystem))
}

func TestRestoreUnknownStamp(t *testing.T) {
	setupEnv(t)

	_, err := runCommand(t, "", "backups", "restore", "19700101-000000", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKUP_NOT_FOUND")
}

func TestRestoreDeclined(t *testing.T) {
	env := setupEnv(t)
	shared := t.TempDir()
	keep := mkdir(t, shared, "toolchain-bin")
	env.seed(t, reconcile.ScopeSystem, keep, filepath.Join(shared, "missing-directory"))

	_, err := runCommand(t, "", "fix", "--yes")
	require.NoError(t, err)

	stamps, err := filepath.Glob(filepath.Join(env.backupDir, "*-system.paths"))
	require.NoError(t, err)
	require.Len(t, stamps, 1)
	stamp := filepath.Base(stamps[0])
	stamp = stamp[:len(stamp)-len("-system.paths")]

	out, err := runCommand(t, "n\n", "backups", "restore", stamp)
	require.NoError(t, err)
	assert.Contains(t, out, MsgRestoreDeclined)
	assert.Equal(t, []string{keep}, env.load(t, reconcile.ScopeSystem))
}

func TestGenconfig(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "", "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[truncation]")
	assert.Contains(t, out, "# threshold = 10")
}

func TestGenconfigEffective(t *testing.T) {
	setupEnv(t)
	t.Setenv("PATHTIDY_TRUNCATION_THRESHOLD", "17")

	out, err := runCommand(t, "", "genconfig", "--effective")
	require.NoError(t, err)
	assert.Contains(t, out, "threshold = 17")
}

func TestDocs(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "pathtidy")
	assert.Contains(t, out, "truncation")
}
