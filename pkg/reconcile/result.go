package reconcile

// Scope identifies which of the two persisted PATH lists an entry belongs to.
type Scope string

const (
	ScopeSystem Scope = "system"
	ScopeUser   Scope = "user"
)

// ActionKind is the disposition the engine chose for one entry.
type ActionKind string

const (
	// ActionKept means the entry stays in its original scope.
	ActionKept ActionKind = "kept"
	// ActionRemoved means the entry was dropped; Reason says why.
	ActionRemoved ActionKind = "removed"
	// ActionMovedToUser means a system-scope entry was relocated to the
	// user scope (recorded during the system pass, before the move is
	// re-checked against the user scope).
	ActionMovedToUser ActionKind = "moved-to-user"
	// ActionAdded means a relocated entry survived the re-checks and was
	// appended to the user scope.
	ActionAdded ActionKind = "added"
)

// Reason qualifies a removal or a move.
type Reason string

const (
	ReasonTruncated  Reason = "truncated"
	ReasonDuplicate  Reason = "duplicate"
	ReasonWrongScope Reason = "wrong-scope"
	ReasonNotFound   Reason = "not-found"
)

// Action records one decision made during a run.
type Action struct {
	Kind  ActionKind `json:"kind" yaml:"kind"`
	Entry string     `json:"entry" yaml:"entry"`
	Scope Scope      `json:"scope" yaml:"scope"`
	// Reason is set for removals and moves, empty for kept/added entries.
	Reason Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Result holds the two rewritten scope lists, sorted ascending by
// normalized key, and the full action log in decision order.
type Result struct {
	System  []string `json:"system" yaml:"system"`
	User    []string `json:"user" yaml:"user"`
	Actions []Action `json:"actions" yaml:"actions"`
}

// Changed reports whether the run decided anything beyond keeping entries
// where they were. Note that a pure reordering (unsorted input, no removals)
// is not visible here; callers comparing persisted state should compare the
// joined strings instead.
func (r Result) Changed() bool {
	for _, a := range r.Actions {
		if a.Kind == ActionRemoved || a.Kind == ActionMovedToUser {
			return true
		}
	}
	return false
}

// RemovedCount returns how many entries were removed for the given reason.
func (r Result) RemovedCount(reason Reason) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == ActionRemoved && a.Reason == reason {
			n++
		}
	}
	return n
}

// MovedCount returns how many system entries were flagged for relocation.
func (r Result) MovedCount() int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == ActionMovedToUser {
			n++
		}
	}
	return n
}

func (r *Result) record(kind ActionKind, entry string, scope Scope, reason Reason) {
	r.Actions = append(r.Actions, Action{Kind: kind, Entry: entry, Scope: scope, Reason: reason})
}
