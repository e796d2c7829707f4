package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stolasapp/basicauth"
	"github.com/stolasapp/basicauth/internal/config"
)

func encodeCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "encode USER",
		Short: "Encode credentials",
		Long: "Encodes the user-id and a password into a Basic Authorization header value.\n" +
			"Passwords may be provided via stdin or through the interactive prompt.",

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			userID := args[0]
			if strings.Contains(userID, ":") {
				logger.WarnContext(cmd.Context(),
					"user-id contains a colon and will not decode to the same value",
					slog.String("user_id", userID),
				)
			}

			passwd, err := prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "password: ", true)
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			creds := basicauth.New(userID, string(passwd))
			out := creds.Header()
			if raw || cfg.Output == config.OutputRaw {
				out = creds.Encode()
			}
			if _, err = fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			logger.DebugContext(cmd.Context(), "encoded credentials", slog.Any("credentials", creds))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the base64 payload instead of the header value")
	return cmd
}
