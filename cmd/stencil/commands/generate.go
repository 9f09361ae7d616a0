package commands

import (
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/stencil/config"
	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/logger"
	"github.com/teranos/stencil/stencil"
	"github.com/teranos/stencil/sym"
)

// generateResult counts what one generate pass did.
type generateResult struct {
	created int
	skipped int
}

func (r *generateResult) add(other generateResult) {
	r.created += other.created
	r.skipped += other.skipped
}

func newGenerateCmd(a *app) *cobra.Command {
	var flags buildFlags
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate <manifest>...",
		Short: sym.Generate + " Write class files for the given manifests",
		Long: `Generate one PHP file per class declared in the given manifests.

Files that already exist are skipped and left untouched.

Examples:
  stencil generate models.toml
  stencil generate models.yaml -o src/Models --indent 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.validConfig()
			if err != nil {
				return err
			}
			dir := outputDir
			if dir == "" {
				dir = cfg.Output.Directory
			}

			start := time.Now()
			var total generateResult
			for _, path := range args {
				result, err := a.generate(cmd, cfg, &flags, path, dir)
				total.add(result)
				if err != nil {
					return err
				}
			}

			pterm.Fprintln(cmd.OutOrStdout(), pterm.Sprintf("%d created, %d skipped", total.created, total.skipped))
			logger.Infow("Generation complete",
				logger.FieldCount, total.created,
				logger.FieldPath, dir,
				logger.FieldDurationMS, time.Since(start).Milliseconds())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: output.directory from config)")
	return cmd
}

// generate writes every class of one manifest into dir.
func (a *app) generate(cmd *cobra.Command, cfg *config.Config, flags *buildFlags, path, dir string) (generateResult, error) {
	var result generateResult

	classes, err := a.loadClasses(cmd, cfg, flags, path)
	if err != nil {
		return result, err
	}

	if err := a.fs.MkdirAll(dir, 0o755); err != nil {
		return result, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	out := cmd.OutOrStdout()
	for _, class := range classes {
		status, err := class.WriteTo(a.fs, dir)
		if err != nil {
			return result, err
		}
		printStatus(out, status, class.FilePath(dir))

		switch status {
		case stencil.Created:
			result.created++
		case stencil.Skipped:
			result.skipped++
		}
	}
	return result, nil
}

func printStatus(w io.Writer, status stencil.WriteStatus, path string) {
	switch status {
	case stencil.Created:
		pterm.Fprintln(w, pterm.Green(sym.Created+" Created ")+path)
	case stencil.Skipped:
		pterm.Fprintln(w, pterm.Yellow(sym.Skipped+" Skipped ")+path+pterm.Gray(" (already exists)"))
	}
}
