// Package cmd implements the wpconf command-line interface.
package cmd

import (
	"io"
	"os"
	"strconv"
	"time"

	"wpconf/internal/dbcheck"
	"wpconf/internal/settings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Settings settings.Store
	Checker  dbcheck.Checker
	Log      *logrus.Logger
	Out      io.Writer
	Err      io.Writer
	Stdin    io.Reader
	JSON     bool // output in JSON format

	// ConfigPath pins the wp-config.php location (from --path or
	// WPCONF_PATH). Empty means search upward from the current directory.
	ConfigPath string
}

// ConfigName returns the file name searched for on disk.
func (a *App) ConfigName() string {
	if v, ok := a.Settings.Get(settings.KeyConfigName); ok && v != "" {
		return v
	}
	return "wp-config.php"
}

// CheckTimeout returns the connectivity-check timeout from settings.
func (a *App) CheckTimeout() time.Duration {
	if v, ok := a.Settings.Get(settings.KeyCheckTimeout); ok {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return dbcheck.DefaultTimeout
}

// ResolveConfigFile locates the configuration file for this invocation.
func (a *App) ResolveConfigFile() (string, error) {
	return FindConfigFile(a.ConfigPath, a.ConfigName())
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a
// terminal, otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// StdinIsTerminal reports whether standard input is an interactive terminal.
func (a *App) StdinIsTerminal() bool {
	if f, ok := a.Stdin.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
