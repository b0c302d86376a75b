package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathtidy/pkg/backup"
	"github.com/arthur-debert/pathtidy/pkg/config"
	"github.com/arthur-debert/pathtidy/pkg/envstore"
	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/arthur-debert/pathtidy/pkg/platform"
	"github.com/arthur-debert/pathtidy/pkg/reconcile"
	"github.com/arthur-debert/pathtidy/pkg/style"
	"github.com/arthur-debert/pathtidy/pkg/ui/prompt"
)

func newFixCmd(flags *globalFlags) *cobra.Command {
	var (
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "fix",
		Short: MsgFixShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, flags, dryRun, yes)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFixDryRun)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFixYes)
	return cmd
}

// engineOptions wires the platform predicates and the configured heuristic
// tunables into the engine.
func engineOptions(cfg *config.Config, confirm reconcile.ConfirmFunc) reconcile.Options {
	return reconcile.Options{
		Exists:            platform.Exists,
		UserScoped:        platform.UserScoped,
		ConfirmTruncation: confirm,
		ShortThreshold:    cfg.Truncation.Threshold,
		ShortRoots:        cfg.Truncation.KnownRoots,
	}
}

func runFix(cmd *cobra.Command, flags *globalFlags, dryRun, yes bool) error {
	log := logging.GetLogger("cmd.fix")

	cfg, store, err := loadSetup(flags)
	if err != nil {
		return err
	}

	systemRaw, err := store.Load(reconcile.ScopeSystem)
	if err != nil {
		return err
	}
	userRaw, err := store.Load(reconcile.ScopeUser)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prompter := prompt.New(cmd.InOrStdin(), out)

	// Suspected-truncated entries are only removed on an explicit yes;
	// with --yes there is nobody to ask, so suspects are kept.
	confirm := func(entry string, scope reconcile.Scope) reconcile.Decision {
		if yes || dryRun {
			return reconcile.Keep
		}
		remove, err := prompter.Confirm(fmt.Sprintf(MsgTruncationPrompt, entry, scope), false)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("Confirmation failed, keeping entry")
			return reconcile.Keep
		}
		if remove {
			return reconcile.Remove
		}
		return reconcile.Keep
	}

	res := reconcile.Reconcile(envstore.Split(systemRaw), envstore.Split(userRaw),
		engineOptions(cfg, confirm))

	fmt.Fprint(out, style.RenderReport(res))

	newSystem := envstore.Join(res.System)
	newUser := envstore.Join(res.User)
	if newSystem == systemRaw && newUser == userRaw {
		fmt.Fprintln(out, MsgNoChanges)
		return nil
	}
	if dryRun {
		fmt.Fprintln(out, MsgDryRunNote)
		return nil
	}

	if !yes {
		apply, err := prompter.Confirm(MsgApplyPrompt, false)
		if err != nil {
			return err
		}
		if !apply {
			fmt.Fprintln(out, MsgDeclined)
			return nil
		}
	}

	backups := backup.NewDir(cfg.Backup.Dir)
	stamp, err := backups.Write(systemRaw, userRaw)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, MsgBackupWritten, backups.Path(), stamp)

	if err := envstore.Apply(store, newSystem, newUser); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgApplyFailed, backups.Path())
		return err
	}
	log.Info().Str("stamp", stamp).Msg("Reconciliation applied")
	fmt.Fprintln(out, MsgApplied)
	return nil
}
