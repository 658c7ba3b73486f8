// Package cli defines the cobra command tree: serve, seed, search, and
// migrate.  The root command loads configuration and builds the logger
// shared by every subcommand.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configPath string
	logLevel   string
}

// appContext carries the loaded configuration and logger into subcommands.
type appContext struct {
	cfg *config.Config
	log logging.Logger
}

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:     "repurpose",
		Short:   "Biomedical query classification and drug repurposing service",
		Long:    "repurpose classifies free-text queries as drugs or diseases,\nenriches them from PubChem, ChEMBL, RxNorm, DrugBank, and DisGeNET,\nand maintains a disease-drug repurposing map.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file (default: environment variables)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug|info|warn|error)")

	cmd.AddCommand(
		newServeCmd(app),
		newSeedCmd(app),
		newSearchCmd(app),
		newMigrateCmd(app),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// init loads configuration and builds the logger.  It runs once per
// invocation, before any subcommand.
func (a *appContext) init(opts *rootOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	log, err := logging.FromAppConfig(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	return nil
}
