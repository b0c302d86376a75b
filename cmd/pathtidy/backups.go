package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathtidy/pkg/backup"
	"github.com/arthur-debert/pathtidy/pkg/envstore"
	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/arthur-debert/pathtidy/pkg/ui/prompt"
)

func newBackupsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: MsgBackupsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackupsList(cmd, flags)
		},
	}
	cmd.AddCommand(newRestoreCmd(flags))
	return cmd
}

func runBackupsList(cmd *cobra.Command, flags *globalFlags) error {
	cfg, _, err := loadSetup(flags)
	if err != nil {
		return err
	}

	backups := backup.NewDir(cfg.Backup.Dir)
	stamps, err := backups.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(stamps) == 0 {
		fmt.Fprintln(out, MsgNoBackups)
		return nil
	}
	fmt.Fprintf(out, "%s:\n", backups.Path())
	for _, stamp := range stamps {
		fmt.Fprintf(out, "  %s\n", stamp)
	}
	return nil
}

func newRestoreCmd(flags *globalFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <stamp>",
		Short: MsgRestoreShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, flags, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFixYes)
	return cmd
}

func runRestore(cmd *cobra.Command, flags *globalFlags, stamp string, yes bool) error {
	log := logging.GetLogger("cmd.restore")

	cfg, store, err := loadSetup(flags)
	if err != nil {
		return err
	}

	snap, err := backup.NewDir(cfg.Backup.Dir).Read(stamp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !yes {
		prompter := prompt.New(cmd.InOrStdin(), out)
		apply, err := prompter.Confirm(fmt.Sprintf(MsgRestorePrompt, stamp), false)
		if err != nil {
			return err
		}
		if !apply {
			fmt.Fprintln(out, MsgRestoreDeclined)
			return nil
		}
	}

	if err := envstore.Apply(store, snap.System, snap.User); err != nil {
		return err
	}
	log.Info().Str("stamp", stamp).Msg("Snapshot restored")
	fmt.Fprintf(out, MsgRestored, stamp)
	return nil
}
