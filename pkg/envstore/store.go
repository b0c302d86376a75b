// Package envstore isolates every read and write of persisted PATH state
// behind a small Store interface, keeping the reconcile engine free of
// machine state. On Windows the backing store is the registry; elsewhere it
// is a pair of flat files consumed by the shell init snippet.
package envstore

import (
	"os"
	"strings"

	"github.com/arthur-debert/pathtidy/pkg/reconcile"
)

// ListSeparator joins and splits raw PATH values on this platform.
const ListSeparator = string(os.PathListSeparator)

// Store reads and writes the raw separator-joined PATH value of a scope.
type Store interface {
	Load(scope reconcile.Scope) (string, error)
	Save(scope reconcile.Scope, value string) error
	// Source is a human-readable label of where the values live, for
	// display in reports and prompts.
	Source() string
}

// Split breaks a raw PATH value into its entries. Blank tokens, the
// artifact of doubled or trailing separators, are dropped; everything else
// is preserved verbatim.
func Split(value string) []string {
	if value == "" {
		return nil
	}
	var entries []string
	for _, tok := range strings.Split(value, ListSeparator) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		entries = append(entries, tok)
	}
	return entries
}

// Join assembles entries back into a raw PATH value.
func Join(entries []string) string {
	return strings.Join(entries, ListSeparator)
}
