package envstore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/arthur-debert/pathtidy/pkg/reconcile"
)

// FileStore keeps each scope in a flat text file, one entry per line:
// system.paths and user.paths inside its directory. A missing file reads as
// an empty scope. This is the portable store; the shell init snippet builds
// PATH from these files at login.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. An empty dir selects the
// default location under the XDG config directory.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join(xdg.ConfigHome, "pathtidy")
	}
	return &FileStore{dir: dir}
}

func (s *FileStore) scopeFile(scope reconcile.Scope) string {
	return filepath.Join(s.dir, string(scope)+".paths")
}

// Load reads the scope file and joins its lines into a raw PATH value.
func (s *FileStore) Load(scope reconcile.Scope) (string, error) {
	data, err := os.ReadFile(s.scopeFile(scope))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEnvRead, "failed to read %s scope", scope).
			WithDetail("path", s.scopeFile(scope))
	}
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	return Join(entries), nil
}

// Save writes the raw PATH value to the scope file, one entry per line.
func (s *FileStore) Save(scope reconcile.Scope, value string) error {
	log := logging.GetLogger("envstore")
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to create store directory %s", s.dir)
	}
	var sb strings.Builder
	for _, entry := range Split(value) {
		sb.WriteString(entry)
		sb.WriteString("\n")
	}
	path := s.scopeFile(scope)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to write %s scope", scope).
			WithDetail("path", path)
	}
	log.Debug().Str("scope", string(scope)).Str("path", path).Msg("Scope written")
	return nil
}

// Source returns the store directory.
func (s *FileStore) Source() string {
	return s.dir
}
