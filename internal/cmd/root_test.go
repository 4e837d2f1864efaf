package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindConfigFileDirectPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wp-config.php")
	if err := os.WriteFile(path, []byte("<?php\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfigFile(path, "wp-config.php")
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	if got != path {
		t.Errorf("FindConfigFile = %q, want %q", got, path)
	}
}

func TestFindConfigFileDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wp-config.php")
	if err := os.WriteFile(path, []byte("<?php\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfigFile(dir, "wp-config.php")
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	if got != path {
		t.Errorf("FindConfigFile = %q, want %q", got, path)
	}
}

func TestFindConfigFileDirectoryMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := FindConfigFile(dir, "wp-config.php")
	if err == nil {
		t.Fatal("expected error for directory without wp-config.php")
	}
}

func TestFindConfigFileMissingPath(t *testing.T) {
	_, err := FindConfigFile(filepath.Join(t.TempDir(), "nope.php"), "wp-config.php")
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestFindConfigFileSearchesUpward(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wp-config.php")
	if err := os.WriteFile(path, []byte("<?php\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "wp-content", "themes")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	got, err := FindConfigFile("", "wp-config.php")
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	// Compare resolved paths; the temp dir may be behind a symlink.
	wantInfo, _ := os.Stat(path)
	gotInfo, err := os.Stat(got)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("FindConfigFile = %q, want %q", got, path)
	}
}

func TestFindConfigFileCustomName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wp-config-local.php")
	if err := os.WriteFile(path, []byte("<?php\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfigFile(dir, "wp-config-local.php")
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	if got != path {
		t.Errorf("FindConfigFile = %q, want %q", got, path)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd(&AppProvider{})

	for _, name := range []string{"update", "show", "check", "config", "version"} {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestUnknownCommandFails(t *testing.T) {
	root := newRootCmd(&AppProvider{})
	root.SetArgs([]string{"frobnicate"})
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
