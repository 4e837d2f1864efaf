package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"wpconf/internal/dbcheck"
	"wpconf/internal/settings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	JSONOutput bool
	Verbose    bool
	Out        io.Writer
	Err        io.Writer
	Stdin      io.Reader

	// Overrides for testing
	SettingsPath string
	Checker      dbcheck.Checker
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a mock/test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	settingsPath := p.SettingsPath
	if settingsPath == "" {
		var err error
		settingsPath, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := settings.Open(settingsPath)
	if err != nil {
		return nil, err
	}
	settings.ApplyDefaults(store)

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	stdin := p.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(logrus.WarnLevel)
	if p.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	configPath := p.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(settings.EnvConfigPath)
	}

	app := &App{
		Settings:   store,
		Log:        log,
		Out:        out,
		Err:        errOut,
		Stdin:      stdin,
		JSON:       p.JSONOutput || settings.JSONFromEnv(),
		ConfigPath: configPath,
	}

	app.Checker = p.Checker
	if app.Checker == nil {
		app.Checker = &dbcheck.MySQL{Timeout: app.CheckTimeout()}
	}

	return app, nil
}

// FindConfigFile locates the configuration file. If path is provided it may
// name the file itself or a directory containing it. Otherwise the search
// walks up from the current directory; WordPress accepts the file one level
// above the web root, so an upward walk matches what the site itself would
// load.
func FindConfigFile(path, name string) (string, error) {
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("cannot access %s: %w", path, err)
		}
		if info.IsDir() {
			candidate := filepath.Join(path, name)
			if _, err := os.Stat(candidate); err != nil {
				return "", fmt.Errorf("no %s in directory %s: %w", name, path, err)
			}
			return candidate, nil
		}
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot get current directory: %w", err)
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding the file
			return "", fmt.Errorf("no %s found (searched from %s to /)", name, cwd)
		}
		dir = parent
	}
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out:   os.Stdout,
		Err:   os.Stderr,
		Stdin: os.Stdin,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wpconf",
		Short: "Update values in an existing wp-config.php",
		Long: `Wpconf rewrites named values (database credentials, table prefix, charset,
debug flag, locale) in an existing wp-config.php while preserving every other
byte of the file, and can splice an extra PHP block in before the
"That's all, stop editing!" marker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&provider.Verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&provider.ConfigPath, "path", "", "Path to wp-config.php or its directory (default: search upward from cwd)")

	// Register all commands
	rootCmd.AddCommand(newUpdateCmd(provider))
	rootCmd.AddCommand(newShowCmd(provider))
	rootCmd.AddCommand(newCheckCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
