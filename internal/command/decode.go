package command

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/basicauth"
)

type decoded struct {
	UserID   string `json:"user_id"`
	Password string `json:"password,omitempty"`
}

func decodeCommand() *cobra.Command {
	var (
		showPassword bool
		asJSON       bool
	)
	cmd := &cobra.Command{
		Use:   "decode VALUE...",
		Short: "Decode credentials",
		Long: "Decodes Basic Authorization header values or bare base64 payloads and prints\n" +
			"the user-id of each, in input order. Passwords are only printed on request.",

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			creds := make([]basicauth.Credentials, len(args))
			errs := make([]error, len(args))

			// Failures are kept per value in errs so one bad value does not
			// stop the others; the group itself never fails.
			var grp errgroup.Group
			grp.SetLimit(cfg.Concurrency)
			for i, value := range args {
				grp.Go(func() error {
					creds[i], errs[i] = basicauth.Parse(value)
					return nil
				})
			}
			_ = grp.Wait()

			failed := 0
			for i := range args {
				if errs[i] != nil {
					failed++
					logger.DebugContext(cmd.Context(), "failed to decode value",
						slog.Int("index", i),
						slog.Any("error", errs[i]),
					)
					if _, err = fmt.Fprintf(cmd.ErrOrStderr(), "value %d: %v\n", i+1, errs[i]); err != nil {
						return err
					}
					continue
				}
				if err = printDecoded(cmd.OutOrStdout(), creds[i], showPassword, asJSON); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("failed to decode %d of %d values", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "include passwords in the output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per value")
	return cmd
}

func printDecoded(out io.Writer, creds basicauth.Credentials, showPassword, asJSON bool) error {
	rec := decoded{UserID: creds.UserID()}
	if showPassword {
		rec.Password = creds.Password()
	}
	if asJSON {
		return json.NewEncoder(out).Encode(rec)
	}
	line := rec.UserID
	if showPassword {
		line += ":" + rec.Password
	}
	_, err := fmt.Fprintln(out, line)
	return err
}
