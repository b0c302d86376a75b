package main

// Message constants
const (
	MsgRootShort = "Diagnose and repair the persisted PATH lists"
	MsgRootLong  = `pathtidy inspects the two persisted PATH scopes (system-wide and
current-user) and repairs them: dead directories are dropped, duplicates
collapse to the first occurrence, entries under your home directory move
from the system scope to the user scope, and suspiciously short entries
are flagged for confirmation. Both scopes come back sorted.

Nothing is written without an explicit confirmation, and the pre-change
values are snapshotted to the backup directory before every apply.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/pathtidy/pathtidy.toml)"
	MsgFlagStore   = "Persisted store to operate on: auto or file"

	MsgFixShort   = "Reconcile both scopes and apply the result"
	MsgFixDryRun  = "Preview changes without applying them"
	MsgFixYes     = "Apply without prompting (suspected-truncated entries are kept)"
	MsgNoChanges  = "No changes needed."
	MsgDryRunNote = "Dry run: nothing was written."
	MsgDeclined   = "Not applying; both scopes left untouched."
	MsgApplied    = "Both scopes written."

	MsgTruncationPrompt = "Remove suspected truncated entry %q from the %s scope?"
	MsgApplyPrompt      = "Apply these changes?"
	MsgBackupWritten    = "Snapshots written to %s (stamp %s)\n"
	MsgApplyFailed      = "Persisting failed; recover by hand from the snapshots in %s\n"

	MsgShowShort  = "List both scopes with per-entry findings"
	MsgFlagFormat = "Output format: text, json or yaml"

	MsgBackupsShort      = "List apply snapshots"
	MsgRestoreShort      = "Write a snapshot back to the store"
	MsgNoBackups         = "No snapshots yet."
	MsgRestorePrompt     = "Overwrite both scopes with snapshot %s?"
	MsgRestoreDeclined   = "Not restoring; both scopes left untouched."
	MsgRestored          = "Snapshot %s restored.\n"
	MsgGenconfigShort    = "Print the default configuration file"
	MsgGenconfigFlagEff  = "Print the effective merged configuration instead"
	MsgDocsShort         = "Show the manual"
	MsgErrUnknownStore   = "unknown store kind %q (expected auto or file)"
	MsgErrUnknownFormat  = "unknown format %q (expected text, json or yaml)"
	MsgStoreSourceHeader = "Store: %s\n\n"
)
