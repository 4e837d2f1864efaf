package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"wpconf/internal/wpconfig"

	"github.com/spf13/cobra"
)

// newCheckCmd creates the check command.
func newCheckCmd(provider *AppProvider) *cobra.Command {
	var (
		dbhost string
		dbuser string
		dbpass string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check database connectivity",
		Long: `Check database connectivity with the credentials from wp-config.php.

Flags override individual credentials without touching the file, which makes
it easy to try new values before an update.

Examples:
  wpconf check
  wpconf check --dbhost db.example.com:3307
  wpconf check --dbuser wp --dbpass 's3cret'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			path, err := app.ResolveConfigFile()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			current, err := wpconfig.Extract(wpconfig.ParseDocument(string(raw)))
			if err != nil {
				return fmt.Errorf("reading current values from %s: %w", path, err)
			}

			host := flagOrCurrent(cmd, "dbhost", dbhost, current, wpconfig.KeyDBHost)
			user := flagOrCurrent(cmd, "dbuser", dbuser, current, wpconfig.KeyDBUser)
			pass := flagOrCurrent(cmd, "dbpass", dbpass, current, wpconfig.KeyDBPassword)

			ctx, cancel := context.WithTimeout(cmd.Context(), app.CheckTimeout())
			defer cancel()
			if err := app.Checker.Check(ctx, host, user, pass); err != nil {
				return fmt.Errorf("connectivity check failed: %w", err)
			}

			display := host
			if display == "" {
				display = "localhost"
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"status": "ok",
					"host":   display,
					"user":   user,
				})
			}

			fmt.Fprintf(app.Out, "%s Database connection OK (%s@%s)\n", app.SuccessColor("✓"), user, display)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbhost, "dbhost", "", "Host to check instead of the file's DB_HOST")
	cmd.Flags().StringVar(&dbuser, "dbuser", "", "User to check instead of the file's DB_USER")
	cmd.Flags().StringVar(&dbpass, "dbpass", "", "Password to check instead of the file's DB_PASSWORD")

	return cmd
}

// flagOrCurrent returns the flag value when the user set it, the file's
// current value otherwise, empty when neither is known.
func flagOrCurrent(cmd *cobra.Command, name, flagValue string, current wpconfig.Values, key wpconfig.Key) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	if v, ok := current[string(key)]; ok {
		return v.Literal()
	}
	return ""
}
