// Package backup writes and reads the pre-change snapshots taken before
// every apply. Each run produces one plain-text file per scope, named with
// the run timestamp and holding the verbatim raw value, so a bad apply can
// always be undone by hand or through the restore command.
package backup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/arthur-debert/pathtidy/pkg/reconcile"
)

// StampFormat names snapshot files; lexical order equals chronological
// order.
const StampFormat = "20060102-150405"

const fileExt = ".paths"

// Snapshot is one run's pair of pre-change raw values.
type Snapshot struct {
	Stamp  string
	System string
	User   string
}

// Dir manages snapshots inside one directory.
type Dir struct {
	path string
	now  func() time.Time
}

// NewDir creates a snapshot manager rooted at path. An empty path selects
// the default location under the XDG state directory.
func NewDir(path string) *Dir {
	if path == "" {
		path = filepath.Join(xdg.StateHome, "pathtidy", "backups")
	}
	return &Dir{path: path, now: time.Now}
}

// WithClock substitutes the timestamp source, for tests.
func (d *Dir) WithClock(now func() time.Time) *Dir {
	d.now = now
	return d
}

// Path returns the backup directory.
func (d *Dir) Path() string {
	return d.path
}

func (d *Dir) scopeFile(stamp string, scope reconcile.Scope) string {
	return filepath.Join(d.path, stamp+"-"+string(scope)+fileExt)
}

// Write snapshots both raw values under a fresh timestamp and returns the
// stamp. Both files are written before any scope is persisted; if either
// snapshot fails the whole run must abort.
func (d *Dir) Write(system, user string) (string, error) {
	log := logging.GetLogger("backup")
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupWrite, "failed to create backup directory %s", d.path)
	}
	stamp := d.now().Format(StampFormat)
	for scope, value := range map[reconcile.Scope]string{
		reconcile.ScopeSystem: system,
		reconcile.ScopeUser:   user,
	} {
		path := d.scopeFile(stamp, scope)
		if err := os.WriteFile(path, []byte(value), 0644); err != nil {
			return "", errors.Wrapf(err, errors.ErrBackupWrite, "failed to write %s snapshot", scope).
				WithDetail("path", path)
		}
	}
	log.Info().Str("stamp", stamp).Str("dir", d.path).Msg("Snapshots written")
	return stamp, nil
}

// List returns the available stamps, newest first. A missing backup
// directory is an empty list, not an error.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupList, "failed to read backup directory %s", d.path)
	}
	stamps := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, fileExt) {
			continue
		}
		base := strings.TrimSuffix(name, fileExt)
		for _, scope := range []reconcile.Scope{reconcile.ScopeSystem, reconcile.ScopeUser} {
			suffix := "-" + string(scope)
			if strings.HasSuffix(base, suffix) {
				stamps[strings.TrimSuffix(base, suffix)] = true
			}
		}
	}
	out := make([]string, 0, len(stamps))
	for s := range stamps {
		out = append(out, s)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

// Read loads the snapshot pair for a stamp.
func (d *Dir) Read(stamp string) (Snapshot, error) {
	snap := Snapshot{Stamp: stamp}
	for _, scope := range []reconcile.Scope{reconcile.ScopeSystem, reconcile.ScopeUser} {
		data, err := os.ReadFile(d.scopeFile(stamp, scope))
		if os.IsNotExist(err) {
			return Snapshot{}, errors.Newf(errors.ErrBackupNotFound, "no %s snapshot for stamp %q", scope, stamp)
		}
		if err != nil {
			return Snapshot{}, errors.Wrapf(err, errors.ErrBackupList, "failed to read %s snapshot %q", scope, stamp)
		}
		if scope == reconcile.ScopeSystem {
			snap.System = string(data)
		} else {
			snap.User = string(data)
		}
	}
	return snap, nil
}
