package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	origSettings := SettingsFile
	SettingsFile = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { SettingsFile = origSettings })
	return dir
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	useTempConfig(t)

	settings, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.PreviewPort != DefaultPreviewPort {
		t.Errorf("expected default port %d, got %d", DefaultPreviewPort, settings.PreviewPort)
	}
	if settings.CurriculumURL == "" {
		t.Error("expected a default curriculum URL")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	useTempConfig(t)
	if err := os.WriteFile(SettingsFile, []byte("preview_port: 9999\n"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	settings, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.PreviewPort != 9999 {
		t.Errorf("expected overridden port 9999, got %d", settings.PreviewPort)
	}
	if settings.CurriculumURL != DefaultSettings().CurriculumURL {
		t.Errorf("unset options must keep their defaults, got %q", settings.CurriculumURL)
	}
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	useTempConfig(t)
	if err := os.WriteFile(SettingsFile, []byte(":\tnot yaml ["), FilePermissions); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("a malformed config file must surface an error")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	useTempConfig(t)

	want := Settings{PreviewPort: 5000, CurriculumURL: "http://localhost:9000/lessons/", OpenBrowser: true}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
