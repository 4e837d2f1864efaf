package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.All(); len(got) != 0 {
		t.Errorf("empty store All() = %v, want empty map", got)
	}
}

func TestOpenLoadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "check.timeout: \"5\"\nconfig.name: wp-config-sample.php\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	v, ok := s.Get("check.timeout")
	if !ok || v != "5" {
		t.Errorf("Get(check.timeout) = %q, %v; want %q, true", v, ok, "5")
	}
	v, ok = s.Get("config.name")
	if !ok || v != "wp-config-sample.php" {
		t.Errorf("Get(config.name) = %q, %v; want %q, true", v, ok, "wp-config-sample.php")
	}
}

func TestSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("config.name", "wp-config-local.php"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok := s.Get("config.name")
	if !ok || v != "wp-config-local.php" {
		t.Errorf("Get(config.name) = %q, %v; want %q, true", v, ok, "wp-config-local.php")
	}
}

func TestSetInMemoryDoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	s.SetInMemory("check.timeout", "10")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("SetInMemory created the settings file: %v", err)
	}

	v, ok := s.Get("check.timeout")
	if !ok || v != "10" {
		t.Errorf("Get(check.timeout) = %q, %v; want %q, true", v, ok, "10")
	}
}

func TestUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("check.timeout", "5"); err != nil {
		t.Fatal(err)
	}
	if err := s.Unset("check.timeout"); err != nil {
		t.Fatalf("Unset: %v", err)
	}

	if _, ok := s.Get("check.timeout"); ok {
		t.Error("Get(check.timeout) ok = true after Unset, want false")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("config.name", "wp-config.php"); err != nil {
		t.Fatal(err)
	}

	all := s.All()
	all["config.name"] = "MUTATED"

	v, _ := s.Get("config.name")
	if v != "wp-config.php" {
		t.Errorf("mutation of All() result affected store: Get(config.name) = %q", v)
	}
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s1, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s1.Set("check.timeout", "20"); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Open (reload): %v", err)
	}

	v, ok := s2.Get("check.timeout")
	if !ok || v != "20" {
		t.Errorf("reloaded Get(check.timeout) = %q, %v; want %q, true", v, ok, "20")
	}
}

func TestSetLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("config.name", "wp-config.php"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSetCreatesParentDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "config.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("key", "value"); err != nil {
		t.Fatalf("Set with nested path: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestConcurrentSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := Open(path)
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = s.Set(fmt.Sprintf("key%d", i), fmt.Sprintf("val%d", i))
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	for i := 0; i < n; i++ {
		key := fmt.Sprintf("key%d", i)
		if val, ok := s.Get(key); !ok || val != fmt.Sprintf("val%d", i) {
			t.Errorf("key %q = %q after concurrent writes, want %q", key, val, fmt.Sprintf("val%d", i))
		}
	}
}

func TestOpenInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::invalid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open with invalid YAML should return error")
	}
}
