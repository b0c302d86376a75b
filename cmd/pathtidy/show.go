package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pathtidy/pkg/envstore"
	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/arthur-debert/pathtidy/pkg/reconcile"
	"github.com/arthur-debert/pathtidy/pkg/style"
)

// showPayload is the machine-readable shape of the diagnosis.
type showPayload struct {
	Source   string              `json:"source" yaml:"source"`
	Findings []reconcile.Finding `json:"findings" yaml:"findings"`
}

func newShowCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)
	return cmd
}

func runShow(cmd *cobra.Command, flags *globalFlags, format string) error {
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

	findings := reconcile.Diagnose(envstore.Split(systemRaw), envstore.Split(userRaw),
		engineOptions(cfg, nil))

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		fmt.Fprintf(out, MsgStoreSourceHeader, store.Source())
		fmt.Fprint(out, style.RenderFindings(findings))
	case "json":
		data, err := json.MarshalIndent(showPayload{Source: store.Source(), Findings: findings}, "", "  ")
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode findings")
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(showPayload{Source: store.Source(), Findings: findings})
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode findings")
		}
		fmt.Fprint(out, string(data))
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format)
	}
	return nil
}
