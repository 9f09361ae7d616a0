package commands

import (
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/stencil/config"
	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/stencil"
	"github.com/teranos/stencil/sym"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: sym.Config + " Show and validate stencil configuration",
		Long: `Display and check the effective stencil configuration.

Examples:
  stencil config show                 # Show current configuration
  stencil config show --format json   # Show configuration in JSON format
  stencil config validate             # Validate current configuration
  stencil config init                 # Write a default stencil.toml`,
	}

	cmd.AddCommand(newConfigShowCmd(a), newConfigValidateCmd(a), newConfigInitCmd())
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(a.cfg, format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format != "json" {
				fmt.Fprint(out, "# stencil configuration\n")
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.validConfig(); err != nil {
				return err
			}
			pterm.Fprintln(cmd.OutOrStdout(), pterm.Green(sym.Created+" Configuration is valid"))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default stencil.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ProjectFileName)

			created, err := config.WriteProjectFile(path, config.Default())
			if err != nil {
				return errors.Wrap(err, "failed to write project config")
			}

			status := stencil.Skipped
			if created {
				status = stencil.Created
			}
			printStatus(cmd.OutOrStdout(), status, path)
			return nil
		},
	}
}
