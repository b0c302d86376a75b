//go:build !windows

package envstore

// Default returns the platform's canonical store: the flat-file store in
// the XDG config directory.
func Default() Store {
	return NewFileStore("")
}
