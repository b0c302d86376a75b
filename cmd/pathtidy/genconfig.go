package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathtidy/pkg/config"
)

func newGenconfigCmd(flags *globalFlags) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !effective {
				fmt.Fprintln(out, config.GenerateDefaultContent())
				return nil
			}
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			content, err := config.GenerateEffectiveContent(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(out, content)
			return nil
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, MsgGenconfigFlagEff)
	return cmd
}
