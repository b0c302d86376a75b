package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pathtidy/pkg/reconcile"
)

var reasonLabels = map[reconcile.Reason]string{
	reconcile.ReasonTruncated:  "suspected truncated",
	reconcile.ReasonDuplicate:  "duplicate",
	reconcile.ReasonWrongScope: "belongs in user scope",
	reconcile.ReasonNotFound:   "not found on disk",
}

// ReasonLabel returns the human wording for a reason.
func ReasonLabel(r reconcile.Reason) string {
	if label, ok := reasonLabels[r]; ok {
		return label
	}
	return string(r)
}

// RenderReport formats the action log of a run: what gets removed, what
// moves, and the resulting list sizes. Kept entries are summarized rather
// than listed; the changes are what the user is about to approve.
func RenderReport(res reconcile.Result) string {
	var sb strings.Builder

	if !res.Changed() {
		sb.WriteString(keptStyle.Sprint("Both scopes are already clean.") + "\n")
		return sb.String()
	}

	sb.WriteString(TitleStyle.Sprint("Proposed changes") + "\n\n")
	for _, a := range res.Actions {
		switch a.Kind {
		case reconcile.ActionRemoved:
			sb.WriteString(fmt.Sprintf("  %s %s %s\n",
				removedStyle.Sprint("remove"),
				entryStyle.Render(a.Entry),
				reasonStyle.Render("("+string(a.Scope)+", "+ReasonLabel(a.Reason)+")")))
		case reconcile.ActionMovedToUser:
			sb.WriteString(fmt.Sprintf("  %s %s %s\n",
				movedStyle.Sprint("move  "),
				entryStyle.Render(a.Entry),
				reasonStyle.Render("(system to user)")))
		case reconcile.ActionAdded:
			sb.WriteString(fmt.Sprintf("  %s %s %s\n",
				addedStyle.Sprint("add   "),
				entryStyle.Render(a.Entry),
				reasonStyle.Render("(user)")))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(MutedStyle.Sprintf("Result: %d system entries, %d user entries\n",
		len(res.System), len(res.User)))
	return sb.String()
}

// RenderFindings formats the read-only diagnosis, one line per entry with
// its issues, grouped by scope.
func RenderFindings(findings []reconcile.Finding) string {
	var sb strings.Builder

	byScope := map[reconcile.Scope][]reconcile.Finding{}
	for _, f := range findings {
		byScope[f.Scope] = append(byScope[f.Scope], f)
	}

	for _, scope := range []reconcile.Scope{reconcile.ScopeSystem, reconcile.ScopeUser} {
		scoped := byScope[scope]
		sb.WriteString(headerStyle.Render(strings.ToUpper(string(scope))+" SCOPE") + "\n")
		if len(scoped) == 0 {
			sb.WriteString(MutedStyle.Sprint("  (empty)") + "\n\n")
			continue
		}
		for _, f := range scoped {
			if f.Healthy() {
				sb.WriteString(fmt.Sprintf("  %s %s\n", keptStyle.Sprint("ok"), f.Entry))
				continue
			}
			labels := make([]string, 0, len(f.Issues))
			for _, issue := range f.Issues {
				labels = append(labels, ReasonLabel(issue))
			}
			sb.WriteString(fmt.Sprintf("  %s %s %s\n",
				removedStyle.Sprint("!!"),
				entryStyle.Render(f.Entry),
				reasonStyle.Render("("+strings.Join(labels, ", ")+")")))
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
