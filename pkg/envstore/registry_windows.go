//go:build windows

package envstore

import (
	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/reconcile"
	"golang.org/x/sys/windows/registry"
)

const (
	systemEnvKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
	userEnvKey   = `Environment`
)

// RegistryStore persists PATH values in the Windows registry: the machine
// environment key for the system scope, HKCU\Environment for the user
// scope. Writing the system scope requires elevation.
type RegistryStore struct{}

// NewRegistryStore creates the registry-backed store.
func NewRegistryStore() *RegistryStore {
	return &RegistryStore{}
}

func rootFor(scope reconcile.Scope) (registry.Key, string) {
	if scope == reconcile.ScopeSystem {
		return registry.LOCAL_MACHINE, systemEnvKey
	}
	return registry.CURRENT_USER, userEnvKey
}

// Load reads the raw Path value for the scope.
func (s *RegistryStore) Load(scope reconcile.Scope) (string, error) {
	root, path := rootFor(scope)
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEnvRead, "failed to open %s environment key", scope)
	}
	defer key.Close()

	value, _, err := key.GetStringValue("Path")
	if err == registry.ErrNotExist {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEnvRead, "failed to read %s Path value", scope)
	}
	return value, nil
}

// Save writes the raw Path value for the scope. REG_EXPAND_SZ is used so
// embedded %VAR% references keep expanding.
func (s *RegistryStore) Save(scope reconcile.Scope, value string) error {
	root, path := rootFor(scope)
	key, err := registry.OpenKey(root, path, registry.SET_VALUE)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to open %s environment key for writing", scope)
	}
	defer key.Close()

	if err := key.SetExpandStringValue("Path", value); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to write %s Path value", scope)
	}
	return nil
}

// Source identifies the registry as the backing store.
func (s *RegistryStore) Source() string {
	return "windows registry"
}
