package cmd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"wpconf/internal/wpconfig"

	"github.com/spf13/cobra"
)

// newUpdateCmd creates the update command.
func newUpdateCmd(provider *AppProvider) *cobra.Command {
	var (
		dbname    string
		dbuser    string
		dbpass    string
		dbhost    string
		dbprefix  string
		dbcharset string
		dbcollate string
		locale    string
		wpdebug   bool
		extraPHP  bool
		skipCheck bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update values in wp-config.php",
		Long: `Update named values in an existing wp-config.php.

Only values that actually differ from the file are rewritten, and only the
value itself changes; comments, whitespace, and all surrounding code survive
byte for byte. Keys not already present in the file are never added.

With --extra-php, a PHP block is read from standard input and spliced in
immediately before the "That's all, stop editing!" marker.

Unless --skip-check is given, database connectivity is verified with the
effective credentials (new values where changed, current values otherwise)
before the file is touched.

Examples:
  wpconf update --dbname new_db --dbuser wp
  wpconf update --wpdebug=true
  wpconf update --dbpass 's3cret' --skip-check
  wpconf update --extra-php < extra.php`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			// Only flags the user actually set become raw options, so
			// cobra defaults never leak into the update set.
			opts := make(map[string]wpconfig.Value)
			stringOpts := []struct {
				name  string
				value *string
			}{
				{"dbname", &dbname},
				{"dbuser", &dbuser},
				{"dbpass", &dbpass},
				{"dbhost", &dbhost},
				{"dbprefix", &dbprefix},
				{"dbcharset", &dbcharset},
				{"dbcollate", &dbcollate},
				{"locale", &locale},
			}
			for _, o := range stringOpts {
				if cmd.Flags().Changed(o.name) {
					opts[o.name] = wpconfig.String(*o.value)
				}
			}
			if cmd.Flags().Changed("wpdebug") {
				opts["wpdebug"] = wpconfig.Bool(wpdebug)
			}
			if extraPHP {
				opts["extra-php"] = wpconfig.Bool(true)
				if app.StdinIsTerminal() {
					fmt.Fprintln(app.Err, "Reading extra PHP from standard input; end with Ctrl-D.")
				}
			}

			updates, err := wpconfig.Normalize(opts, app.Stdin)
			if err != nil {
				return err
			}

			path, err := app.ResolveConfigFile()
			if err != nil {
				return err
			}
			app.Log.WithField("path", path).Debug("using config file")

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			doc := wpconfig.ParseDocument(string(raw))
			current, err := wpconfig.Extract(doc)
			if err != nil {
				return fmt.Errorf("reading current values from %s: %w", path, err)
			}
			app.Log.WithField("count", len(current)).Debug("extracted current values")

			changes := wpconfig.Changed(current, updates)
			for key := range changes {
				app.Log.WithField("key", string(key)).Debug("value differs")
			}
			if len(changes) == 0 {
				if app.JSON {
					return json.NewEncoder(app.Out).Encode(map[string]string{
						"status": "unchanged",
						"path":   path,
					})
				}
				fmt.Fprintln(app.Out, "Nothing to update.")
				return nil
			}

			if skipCheck {
				app.Log.Debug("skipping database connectivity check")
			} else {
				host := effective(changes, current, wpconfig.KeyDBHost)
				user := effective(changes, current, wpconfig.KeyDBUser)
				pass := effective(changes, current, wpconfig.KeyDBPassword)

				ctx, cancel := context.WithTimeout(cmd.Context(), app.CheckTimeout())
				defer cancel()
				if err := app.Checker.Check(ctx, host, user, pass); err != nil {
					return fmt.Errorf("connectivity check failed (use --skip-check to bypass): %w", err)
				}
			}

			patched, err := wpconfig.Patch(doc, changes, current)
			if err != nil {
				return err
			}

			if err := writeFilePreservingMode(path, []byte(patched.String())); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			if app.JSON {
				keys := make([]string, 0, len(changes))
				for k := range changes {
					keys = append(keys, string(k))
				}
				sort.Strings(keys)
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"status":  "updated",
					"path":    path,
					"changed": keys,
				})
			}

			noun := "values"
			if len(changes) == 1 {
				noun = "value"
			}
			fmt.Fprintf(app.Out, "%s Updated %s (%d %s)\n", app.SuccessColor("✓"), path, len(changes), noun)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbname, "dbname", "", "Database name (DB_NAME)")
	cmd.Flags().StringVar(&dbuser, "dbuser", "", "Database user (DB_USER)")
	cmd.Flags().StringVar(&dbpass, "dbpass", "", "Database password (DB_PASSWORD)")
	cmd.Flags().StringVar(&dbhost, "dbhost", "", "Database host (DB_HOST)")
	cmd.Flags().StringVar(&dbprefix, "dbprefix", "", "Table prefix, [A-Za-z0-9_] only ($table_prefix)")
	cmd.Flags().StringVar(&dbcharset, "dbcharset", "", "Database charset (DB_CHARSET)")
	cmd.Flags().StringVar(&dbcollate, "dbcollate", "", "Database collation (DB_COLLATE)")
	cmd.Flags().StringVar(&locale, "locale", "", "Site locale (WPLANG)")
	cmd.Flags().BoolVar(&wpdebug, "wpdebug", false, "Debug mode (WP_DEBUG); --wpdebug=false is a real update")
	cmd.Flags().BoolVar(&extraPHP, "extra-php", false, "Read a PHP block from stdin and splice it before the stop-editing marker")
	cmd.Flags().BoolVar(&skipCheck, "skip-check", false, "Skip the database connectivity check")

	return cmd
}

// effective returns the value the connectivity check should use: the new
// value where it changed, the current one otherwise, empty when neither is
// known.
func effective(changes wpconfig.Updates, current wpconfig.Values, key wpconfig.Key) string {
	if v, ok := changes[key]; ok {
		return v.Literal()
	}
	if v, ok := current[string(key)]; ok {
		return v.Literal()
	}
	return ""
}

// writeFilePreservingMode writes data atomically via a temporary file and
// rename, keeping the original file's permission bits.
func writeFilePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}
