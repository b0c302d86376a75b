package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathtidy/internal/version"
	"github.com/arthur-debert/pathtidy/pkg/config"
	"github.com/arthur-debert/pathtidy/pkg/envstore"
	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/logging"
	"github.com/arthur-debert/pathtidy/pkg/style"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	verbosity  int
	configPath string
	storeKind  string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "pathtidy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.storeKind, "store", "", MsgFlagStore)

	rootCmd.AddCommand(newFixCmd(flags))
	rootCmd.AddCommand(newShowCmd(flags))
	rootCmd.AddCommand(newBackupsCmd(flags))
	rootCmd.AddCommand(newGenconfigCmd(flags))
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// loadSetup resolves configuration, color handling and the store for a
// command invocation.
func loadSetup(flags *globalFlags) (*config.Config, envstore.Store, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	style.SetupColor(cfg.Output.Color)

	kind := cfg.Store.Kind
	if flags.storeKind != "" {
		kind = flags.storeKind
	}

	var store envstore.Store
	switch kind {
	case "", "auto":
		store = envstore.Default()
	case "file":
		store = envstore.NewFileStore(cfg.Store.Dir)
	default:
		return nil, nil, errors.Newf(errors.ErrInvalidInput, MsgErrUnknownStore, kind)
	}
	return cfg, store, nil
}
