package reconcile

// Finding lists everything wrong with one entry, without deciding anything.
// Unlike Reconcile, diagnosis never consults the confirmation callback and
// never drops entries, so it is safe for read-only reporting.
type Finding struct {
	Entry  string   `json:"entry" yaml:"entry"`
	Scope  Scope    `json:"scope" yaml:"scope"`
	Issues []Reason `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Healthy reports whether the entry had no issues.
func (f Finding) Healthy() bool {
	return len(f.Issues) == 0
}

// Diagnose classifies every entry of both scopes against the independent
// predicates (truncation suspicion, in-scope duplication, scope ownership,
// existence) and returns one finding per entry, in input order, system
// scope first.
func Diagnose(systemEntries, userEntries []string, opts Options) []Finding {
	opts = opts.withDefaults()
	fold := opts.fold()
	roots := opts.knownRoots()

	findings := make([]Finding, 0, len(systemEntries)+len(userEntries))
	diagnoseScope := func(entries []string, scope Scope) {
		seen := make(map[string]bool)
		for _, entry := range entries {
			f := Finding{Entry: entry, Scope: scope}
			if SuspectTruncated(entry, opts.ShortThreshold, roots, fold) {
				f.Issues = append(f.Issues, ReasonTruncated)
			}
			key := NormalizeKey(entry, fold)
			if seen[key] {
				f.Issues = append(f.Issues, ReasonDuplicate)
			}
			seen[key] = true
			if scope == ScopeSystem && opts.UserScoped(entry) {
				f.Issues = append(f.Issues, ReasonWrongScope)
			}
			if !opts.Exists(entry) {
				f.Issues = append(f.Issues, ReasonNotFound)
			}
			findings = append(findings, f)
		}
	}
	diagnoseScope(systemEntries, ScopeSystem)
	diagnoseScope(userEntries, ScopeUser)
	return findings
}
