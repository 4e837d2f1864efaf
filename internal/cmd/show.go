package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"wpconf/internal/wpconfig"

	"github.com/spf13/cobra"
)

// newShowCmd creates the show command.
func newShowCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show values currently defined in wp-config.php",
		Long: `Show the supported values as currently defined in wp-config.php.

A key defined to a falsy value (false, empty string, "0") reads the same as
an undefined key and is reported as not set.

Examples:
  wpconf show
  wpconf show --json`,
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

			if app.JSON {
				values := make(map[string]string)
				for _, opt := range wpconfig.Options {
					if opt.Key == wpconfig.KeyExtraPHP {
						continue
					}
					if v, ok := current[string(opt.Key)]; ok {
						values[string(opt.Key)] = v.Literal()
					}
				}
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"path":   path,
					"values": values,
				})
			}

			fmt.Fprintf(app.Out, "%s:\n", path)
			for _, opt := range wpconfig.Options {
				if opt.Key == wpconfig.KeyExtraPHP {
					continue
				}
				if v, ok := current[string(opt.Key)]; ok {
					fmt.Fprintf(app.Out, "  %s = %s\n", opt.Key, v.Literal())
				} else {
					fmt.Fprintf(app.Out, "  %s (not set)\n", opt.Key)
				}
			}
			return nil
		},
	}

	return cmd
}
