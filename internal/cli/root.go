// Package cli wires the cobra command tree. The bare command starts the
// GUI; subcommands operate the same store headlessly for scripted use.
package cli

import (
	"github.com/spf13/cobra"

	"launchdeck/internal/app"
	"launchdeck/internal/config"
	"launchdeck/internal/logger"
	"launchdeck/internal/store"
)

type options struct {
	dataFile string
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "launchdeck",
		Short:         "Group and launch your everyday applications",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			application, err := app.NewApplication(cfg, newLogger(cfg))
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	root.PersistentFlags().StringVar(&opts.dataFile, "data", "", "path to the data file (default: per-user config dir)")

	root.AddCommand(
		newListCommand(opts),
		newLaunchCommand(opts),
		newAddCommand(opts),
		newRemoveCommand(opts),
	)
	return root
}

func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}
	return cfg, nil
}

func newLogger(cfg config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.JSONLogs {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}

// openStore opens the registry for a headless subcommand. Log output is
// suppressed so command output stays parseable.
func openStore(opts *options) (*store.Store, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.DataFile, logger.Nop{}), nil
}
