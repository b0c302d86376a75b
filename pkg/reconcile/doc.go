// Package reconcile implements the PATH-list repair engine.
//
// It takes the two persisted PATH scopes (system-wide and current-user) as
// ordered entry lists and produces cleaned, deduplicated, correctly scoped
// and sorted replacements plus an action log describing every decision.
// The engine itself performs no I/O: filesystem existence, user-scope
// classification and truncation confirmation are injected collaborators,
// so the whole algorithm is deterministic and testable with scripted
// responses.
package reconcile
