// Package platform supplies the environment-dependent predicates the
// reconcile engine consumes: filesystem existence and user-profile
// ownership. Keeping them here leaves the engine itself free of any
// machine state.
package platform

import (
	"os"
	"strings"

	"github.com/arthur-debert/pathtidy/pkg/reconcile"
)

// Exists reports whether the path currently resolves on the filesystem.
// Environment references inside the entry (~ prefix, $VAR or %VAR%) are
// expanded before checking, since persisted PATH values routinely contain
// them.
func Exists(path string) bool {
	_, err := os.Stat(ExpandEntry(path))
	return err == nil
}

// UserScoped reports whether the path lives under the current user's home
// directory and therefore belongs in the user scope.
func UserScoped(path string) bool {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return false
	}
	entry := reconcile.NormalizeKey(ExpandEntry(path), foldPaths)
	prefix := reconcile.NormalizeKey(home, foldPaths)
	if entry == prefix {
		return true
	}
	return strings.HasPrefix(entry, prefix+"/") || strings.HasPrefix(entry, prefix+`\`)
}

// ExpandEntry resolves a leading ~ and any environment references in a raw
// PATH entry. Both the $VAR and the %VAR% form are handled; registry values
// are stored as REG_EXPAND_SZ precisely so the latter survive in place.
func ExpandEntry(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") || strings.HasPrefix(trimmed, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			trimmed = home + trimmed[1:]
		}
	}
	return os.ExpandEnv(expandPercentRefs(trimmed))
}

// expandPercentRefs rewrites %VAR% references against the environment. A
// reference to an unset variable, an empty %%, or a dangling percent sign
// stays literal, matching how Windows expands REG_EXPAND_SZ values.
func expandPercentRefs(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(s, '%')
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		rest := s[open+1:]
		end := strings.IndexByte(rest, '%')
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		name := rest[:end]
		value, ok := os.LookupEnv(name)
		if name == "" || !ok {
			// Keep the opening percent literal and rescan after it, so a
			// later well-formed reference still expands.
			b.WriteString(s[:open+1])
			s = rest
			continue
		}
		b.WriteString(s[:open])
		b.WriteString(value)
		s = rest[end+1:]
	}
}
