package reconcile

import "strings"

// NormalizeKey derives the comparison key for a raw PATH entry: surrounding
// whitespace trimmed, trailing separators stripped (a bare root keeps its
// separator), and case folded when fold is true. Entries are compared and
// sorted by this key; the raw text is what gets written back.
func NormalizeKey(raw string, fold bool) string {
	key := strings.TrimSpace(raw)
	for len(key) > 1 && (key[len(key)-1] == '/' || key[len(key)-1] == '\\') {
		key = key[:len(key)-1]
	}
	if fold {
		key = strings.ToLower(key)
	}
	return key
}

// foldByDefault reports whether this platform's filesystems are
// conventionally case-insensitive, making case folding part of entry
// equality. Overridable per run via Options.CaseFold.
func foldByDefault() bool {
	return caseInsensitiveFS
}
