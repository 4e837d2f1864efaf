package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wpconf/internal/settings"

	"github.com/sirupsen/logrus"
)

// testConfig is the wp-config.php fixture. WP_DEBUG, WPLANG, and DB_COLLATE
// are falsy on purpose.
const testConfig = `<?php
// ** MySQL settings ** //
define('DB_NAME', 'old_db');
define('DB_USER', 'wp');
define('DB_PASSWORD', 'secret');
define('DB_HOST', 'localhost');
define('DB_CHARSET', 'utf8');
define('DB_COLLATE', '');

$table_prefix = 'wp_';

define('WP_DEBUG', false);
define('WPLANG', '');

/* That's all, stop editing! Happy publishing. */

require_once(ABSPATH . 'wp-settings.php');
`

// fakeChecker records connectivity checks and optionally fails them.
type fakeChecker struct {
	calls int
	host  string
	user  string
	pass  string
	err   error
}

func (f *fakeChecker) Check(ctx context.Context, host, user, password string) error {
	f.calls++
	f.host, f.user, f.pass = host, user, password
	return f.err
}

// setupTestApp creates an App backed by a temp directory holding the fixture
// wp-config.php, buffer writers, and a fake checker.
func setupTestApp(t *testing.T) (*App, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "wp-config.php")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := settings.Open(filepath.Join(dir, "settings.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	settings.ApplyDefaults(store)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &App{
		Settings:   store,
		Checker:    &fakeChecker{},
		Log:        log,
		Out:        &bytes.Buffer{},
		Err:        &bytes.Buffer{},
		Stdin:      strings.NewReader(""),
		ConfigPath: path,
	}, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
