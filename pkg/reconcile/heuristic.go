package reconcile

import "strings"

// defaultShortThreshold is the trimmed length below which an entry is
// suspected of having been cut short, unless it is a known short root.
const defaultShortThreshold = 10

// defaultShortRoots are short paths that legitimately appear in PATH lists
// and must never trip the length rule. Compared by normalized key.
var defaultShortRoots = []string{
	"/",
	"/bin",
	"/sbin",
	"/opt",
	"/usr",
	"/usr/bin",
	"~/bin",
}

// SuspectTruncated reports whether an entry looks like it was corrupted by
// an editor or installer cutting the PATH value short. Two independent
// signals: the entry is shorter than the threshold and is not a known short
// root, or its final path segment is a single alphabetic character. Both are
// guesses; the engine always routes a positive through the confirmation
// callback before removing anything.
func SuspectTruncated(entry string, threshold int, knownRoots map[string]bool, fold bool) bool {
	trimmed := strings.TrimSpace(entry)
	if len(trimmed) < threshold && !isKnownRoot(trimmed, knownRoots, fold) {
		return true
	}
	seg := finalSegment(trimmed)
	if len(seg) == 1 && isAlpha(seg[0]) {
		return true
	}
	return false
}

func isKnownRoot(trimmed string, knownRoots map[string]bool, fold bool) bool {
	if isDriveRoot(trimmed) {
		return true
	}
	return knownRoots[NormalizeKey(trimmed, fold)]
}

// isDriveRoot matches bare Windows drive roots such as "C:" or "C:\".
func isDriveRoot(s string) bool {
	if len(s) != 2 && len(s) != 3 {
		return false
	}
	if !isAlpha(s[0]) || s[1] != ':' {
		return false
	}
	return len(s) == 2 || s[2] == '\\' || s[2] == '/'
}

func finalSegment(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '/' || s[len(s)-1] == '\\') {
		s = s[:len(s)-1]
	}
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		return s[i+1:]
	}
	return s
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
