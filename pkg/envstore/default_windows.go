//go:build windows

package envstore

// Default returns the platform's canonical store: the registry.
func Default() Store {
	return NewRegistryStore()
}
