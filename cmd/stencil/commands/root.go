// Package commands implements the stencil command line.
package commands

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/stencil/config"
	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/logger"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	fs         afero.Fs
	cfg        *config.Config
	configFile string
	verbosity  int
	jsonLogs   bool
}

// NewRootCmd builds the stencil command tree on the OS filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:   "stencil",
		Short: "Generate PHP class files from manifests",
		Long: `stencil - Generate PHP class files from TOML or YAML manifests.

Each manifest declares one or more classes: namespace, imports, parent,
interfaces, constants, properties and methods. Existing files are never
overwritten.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (STENCIL_* prefix)
3. Project config (nearest stencil.toml)
4. User config (<user config dir>/stencil/stencil.toml)
5. Default values

Examples:
  stencil render models.toml              # Print the generated classes
  stencil generate models.toml -o src     # Write class files into src/
  stencil watch manifests/ -o src         # Regenerate on manifest changes
  stencil config show --format yaml       # Show current configuration`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Cleanup() },
	}

	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "Emit logs as JSON")
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: nearest stencil.toml)")

	root.AddCommand(
		newRenderCmd(a),
		newGenerateCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration and initializes the logger before any command
// runs. Flags win over configured log settings.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := cfg.Log.Verbosity
	if a.verbosity > verbosity {
		verbosity = a.verbosity
	}
	if err := logger.Initialize(a.jsonLogs || cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	logger.Debugw("Configuration loaded",
		logger.FieldOperation, cmd.Name(),
		logger.FieldPath, a.configFile)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configFile != "" {
		return config.LoadFromFile(a.configFile)
	}
	config.Reset()
	return config.Load()
}

// validConfig returns the loaded configuration once it passes validation.
func (a *app) validConfig() (*config.Config, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return a.cfg, nil
}
