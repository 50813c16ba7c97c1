package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Limit int    `yaml:"limit"`
}

func (s *sample) Validate() error {
	if s.Limit < 1 {
		return errors.New("limit must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("FINDVISOR_TEST_NAME", "advisor")
	path := writeFile(t, "name: ${FINDVISOR_TEST_NAME}\nlimit: 3\n")

	var s sample
	if err := Load(path, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "advisor" || s.Limit != 3 {
		t.Errorf("got %+v", s)
	}
}

func TestLoad_RunsValidator(t *testing.T) {
	path := writeFile(t, "name: x\nlimit: 0\n")
	var s sample
	if err := Load(path, &s); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadIfExists(t *testing.T) {
	s := sample{Name: "default", Limit: 1}
	found, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.yaml"), &s)
	if err != nil || found {
		t.Fatalf("missing file: found=%v err=%v", found, err)
	}
	if s.Name != "default" {
		t.Errorf("target modified: %+v", s)
	}

	found, err = LoadIfExists(writeFile(t, "name: file\nlimit: 2\n"), &s)
	if err != nil || !found {
		t.Fatalf("existing file: found=%v err=%v", found, err)
	}
	if s.Name != "file" {
		t.Errorf("got %+v", s)
	}
}
