package commands

import (
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/logger"
	"github.com/teranos/stencil/manifest"
	"github.com/teranos/stencil/sym"
)

func newWatchCmd(a *app) *cobra.Command {
	var flags buildFlags
	var outputDir string

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: sym.Watch + " Generate classes whenever a manifest in dir changes",
		Long: `Generate classes for every manifest in dir, then keep watching dir and
generate again whenever a manifest is created or changed. Runs until
interrupted.

Existing class files are still skipped, so a changed manifest only adds
files for classes that do not exist yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.validConfig()
			if err != nil {
				return err
			}
			dir := outputDir
			if dir == "" {
				dir = cfg.Output.Directory
			}
			watchDir := args[0]

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			generateOne := func(path string) {
				if _, err := a.generate(cmd, cfg, &flags, path, dir); err != nil {
					pterm.Fprintln(cmd.ErrOrStderr(), pterm.Red(sym.Failed+" ")+err.Error())
					logger.Warnw("Generation failed",
						logger.FieldManifest, path,
						logger.FieldError, err)
				}
			}

			existing, err := manifestsIn(a.fs, watchDir)
			if err != nil {
				return err
			}
			for _, path := range existing {
				generateOne(path)
			}

			watcher, err := manifest.NewWatcher(watchDir, time.Duration(cfg.Watch.DebounceMS)*time.Millisecond)
			if err != nil {
				return err
			}
			defer watcher.Close()

			logger.Infow("Watching for manifest changes",
				logger.FieldPath, watchDir,
				logger.FieldCount, len(existing))
			return watcher.Run(ctx, generateOne)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: output.directory from config)")
	return cmd
}

// manifestsIn lists the manifest files directly inside dir, sorted.
func manifestsIn(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list manifests in %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !manifest.IsManifestFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
