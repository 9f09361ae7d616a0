package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/stencil/config"
	"github.com/teranos/stencil/logger"
	"github.com/teranos/stencil/manifest"
	"github.com/teranos/stencil/stencil"
	"github.com/teranos/stencil/sym"
)

// buildFlags are shared by every command that turns manifests into classes.
type buildFlags struct {
	format string
	indent int
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Manifest format: toml, yaml (default: from extension)")
	cmd.Flags().IntVar(&f.indent, "indent", 1, "Class body indent in units of four spaces (overrides manifest and config)")
}

// loadClasses decodes and builds every class declared in the manifest at
// path.
func (a *app) loadClasses(cmd *cobra.Command, cfg *config.Config, flags *buildFlags, path string) ([]*stencil.Class, error) {
	formatName := flags.format
	if formatName == "" {
		formatName = cfg.Manifest.Format
	}

	var format manifest.Format
	if formatName != "" {
		parsed, err := manifest.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
		format = parsed
	}

	m, err := manifest.LoadFs(a.fs, path, format)
	if err != nil {
		return nil, err
	}

	opts := []manifest.BuildOption{manifest.WithDefaults(cfg.Class.Namespace, cfg.Class.Indent)}
	if cmd.Flags().Changed("indent") {
		opts = append(opts, manifest.WithIndent(flags.indent))
	}

	classes, err := m.Build(opts...)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Manifest built",
		logger.FieldManifest, path,
		logger.FieldCount, len(classes))
	return classes, nil
}

func newRenderCmd(a *app) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "render <manifest>...",
		Short: sym.Render + " Print generated classes to stdout",
		Long: `Render every class declared in the given manifests and print the PHP
source to stdout. Nothing is written to disk.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.validConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			first := true
			for _, path := range args {
				classes, err := a.loadClasses(cmd, cfg, &flags, path)
				if err != nil {
					return err
				}
				for _, class := range classes {
					if !first {
						fmt.Fprintln(out)
					}
					first = false
					fmt.Fprintln(out, class.Render())
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
