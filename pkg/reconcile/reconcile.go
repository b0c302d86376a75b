package reconcile

import (
	"sort"
	"strings"
)

// ExistsFunc reports whether a path currently resolves on the filesystem.
type ExistsFunc func(path string) bool

// UserScopedFunc reports whether a path is specific to the current user's
// profile directory and therefore belongs in the user scope.
type UserScopedFunc func(path string) bool

// Decision is the answer to a truncation confirmation.
type Decision int

const (
	// Keep retains the suspect entry; it proceeds through the remaining
	// checks like any other entry.
	Keep Decision = iota
	// Remove drops the suspect entry outright.
	Remove
)

// ConfirmFunc resolves a suspected-truncated entry. The interactive CLI
// prompts the user; tests supply scripted answers.
type ConfirmFunc func(entry string, scope Scope) Decision

// FoldMode controls whether normalized keys are case folded.
type FoldMode int

const (
	// FoldAuto picks the platform convention: fold on case-insensitive
	// filesystems (Windows, macOS), compare verbatim elsewhere.
	FoldAuto FoldMode = iota
	FoldOn
	FoldOff
)

// Options carries the injected collaborators and the heuristic tunables.
// Zero-value collaborators default to safe no-ops: everything exists,
// nothing is user scoped, every suspect is kept.
type Options struct {
	Exists            ExistsFunc
	UserScoped        UserScopedFunc
	ConfirmTruncation ConfirmFunc

	// ShortThreshold overrides the trimmed-length cutoff of the truncation
	// heuristic. Zero means the default.
	ShortThreshold int
	// ShortRoots lists additional known short roots exempt from the length
	// rule, on top of the built-in set.
	ShortRoots []string
	// CaseFold overrides the platform's key-folding convention.
	CaseFold FoldMode
}

func (o Options) withDefaults() Options {
	if o.Exists == nil {
		o.Exists = func(string) bool { return true }
	}
	if o.UserScoped == nil {
		o.UserScoped = func(string) bool { return false }
	}
	if o.ConfirmTruncation == nil {
		o.ConfirmTruncation = func(string, Scope) Decision { return Keep }
	}
	if o.ShortThreshold == 0 {
		o.ShortThreshold = defaultShortThreshold
	}
	return o
}

func (o Options) fold() bool {
	switch o.CaseFold {
	case FoldOn:
		return true
	case FoldOff:
		return false
	default:
		return foldByDefault()
	}
}

func (o Options) knownRoots() map[string]bool {
	fold := o.fold()
	roots := make(map[string]bool, len(defaultShortRoots)+len(o.ShortRoots))
	for _, r := range defaultShortRoots {
		roots[NormalizeKey(r, fold)] = true
	}
	for _, r := range o.ShortRoots {
		roots[NormalizeKey(r, fold)] = true
	}
	return roots
}

// Reconcile runs the repair algorithm over the two scope lists. It is total
// over its inputs: no error paths, no I/O, all ambiguity resolved through
// the injected callbacks. Blank entries (artifacts of doubled separators in
// the raw value) are expected to be filtered out by the caller.
//
// The passes are strictly ordered: the system scope first, then the user
// scope, then the deferred system-to-user moves, then a per-scope sort by
// normalized key. An entry removed as truncated participates in no further
// checks; in particular it never claims its key in the seen-set and never
// moves scope.
func Reconcile(systemEntries, userEntries []string, opts Options) Result {
	opts = opts.withDefaults()
	fold := opts.fold()
	roots := opts.knownRoots()

	var res Result
	seenSystem := make(map[string]bool)
	seenUser := make(map[string]bool)
	var pendingMoves []string

	// System pass.
	for _, entry := range systemEntries {
		key := NormalizeKey(entry, fold)
		if SuspectTruncated(entry, opts.ShortThreshold, roots, fold) &&
			opts.ConfirmTruncation(entry, ScopeSystem) == Remove {
			res.record(ActionRemoved, entry, ScopeSystem, ReasonTruncated)
			continue
		}
		if seenSystem[key] {
			res.record(ActionRemoved, entry, ScopeSystem, ReasonDuplicate)
			continue
		}
		seenSystem[key] = true
		if opts.UserScoped(entry) {
			// Deferred: existence and user-side duplication are checked
			// when the move is merged.
			res.record(ActionMovedToUser, entry, ScopeSystem, ReasonWrongScope)
			pendingMoves = append(pendingMoves, entry)
			continue
		}
		if !opts.Exists(entry) {
			res.record(ActionRemoved, entry, ScopeSystem, ReasonNotFound)
			continue
		}
		res.System = append(res.System, entry)
		res.record(ActionKept, entry, ScopeSystem, "")
	}

	// User pass.
	for _, entry := range userEntries {
		key := NormalizeKey(entry, fold)
		if SuspectTruncated(entry, opts.ShortThreshold, roots, fold) &&
			opts.ConfirmTruncation(entry, ScopeUser) == Remove {
			res.record(ActionRemoved, entry, ScopeUser, ReasonTruncated)
			continue
		}
		if seenUser[key] {
			res.record(ActionRemoved, entry, ScopeUser, ReasonDuplicate)
			continue
		}
		seenUser[key] = true
		if !opts.Exists(entry) {
			res.record(ActionRemoved, entry, ScopeUser, ReasonNotFound)
			continue
		}
		res.User = append(res.User, entry)
		res.record(ActionKept, entry, ScopeUser, "")
	}

	// Merge deferred moves, in original system order.
	for _, entry := range pendingMoves {
		key := NormalizeKey(entry, fold)
		if seenUser[key] {
			res.record(ActionRemoved, entry, ScopeUser, ReasonDuplicate)
			continue
		}
		if !opts.Exists(entry) {
			res.record(ActionRemoved, entry, ScopeUser, ReasonNotFound)
			continue
		}
		seenUser[key] = true
		res.User = append(res.User, entry)
		res.record(ActionAdded, entry, ScopeUser, "")
	}

	sortByKey(res.System, fold)
	sortByKey(res.User, fold)
	return res
}

// sortByKey orders entries ascending by normalized key. Keys are unique
// within a scope after deduplication, but the sort stays stable so equal
// keys would preserve input order anyway.
func sortByKey(entries []string, fold bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.Compare(NormalizeKey(entries[i], fold), NormalizeKey(entries[j], fold)) < 0
	})
}
