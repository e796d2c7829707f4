// Package command contains the CLI command constructors.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stolasapp/basicauth/internal/config"
	"github.com/stolasapp/basicauth/internal/observability"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	configFilePath := config.DefaultPath()
	cmd := &cobra.Command{
		Use:          "basicauth [command] [flags]",
		Short:        "Encode and decode HTTP Basic Authorization header values",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			explicit := cmd.Flags().Changed("config")
			cfg, err := loadOrDefaultConfig(configFilePath, explicit)
			if err != nil {
				return fmt.Errorf("failed to load configuration file: %w", err)
			}
			logger := observability.InitSlog(cfg)
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("path", configFilePath),
				slog.Any("config", cfg),
			)
			slog.SetDefault(logger)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		configFilePath,
		"path to the configuration file",
	)

	cmd.AddCommand(
		encodeCommand(),
		decodeCommand(),
	)

	return cmd
}

// loadOrDefaultConfig falls back to the default configuration when the file
// at the default location does not exist. A missing file that was requested
// explicitly is an error.
func loadOrDefaultConfig(configFilePath string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(configFilePath)
	if err == nil || explicit || !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	return config.Default(), nil
}
