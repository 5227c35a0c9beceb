package keybinds

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistry_MatchSpecificBeforeGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "x", ActionQuit)
	r.Register(ContextConsole, "x", ActionClearConsole)

	if action, ok := r.Match(ContextConsole, "x"); !ok || action != ActionClearConsole {
		t.Errorf("specific context must win, got %q ok=%v", action, ok)
	}
	if action, ok := r.Match(ContextFileList, "x"); !ok || action != ActionQuit {
		t.Errorf("global fallback expected, got %q ok=%v", action, ok)
	}
	if _, ok := r.Match(ContextFileList, "z"); ok {
		t.Error("unbound key must not match")
	}
}

func TestRegistry_RegisterMultiple(t *testing.T) {
	r := NewRegistry()
	r.RegisterMultiple(ContextFileList, []string{"up", "k"}, ActionNavigateUp)

	for _, key := range []string{"up", "k"} {
		if action, ok := r.Match(ContextFileList, key); !ok || action != ActionNavigateUp {
			t.Errorf("key %q: expected navigate_up, got %q ok=%v", key, action, ok)
		}
	}

	keys := r.KeysFor(ContextFileList, ActionNavigateUp)
	if len(keys) != 2 || keys[0] != "k" || keys[1] != "up" {
		t.Errorf("KeysFor should return sorted keys, got %v", keys)
	}
}

func TestDefaultRegistry_CoreBindings(t *testing.T) {
	r := NewDefaultRegistry()

	cases := []struct {
		context Context
		key     string
		want    Action
	}{
		{ContextFileList, "ctrl+c", ActionQuitForce}, // global fallback
		{ContextNormal, "ctrl+s", ActionSaveRefresh},
		{ContextFileList, "d", ActionDeleteFile},
		{ContextFileList, "n", ActionCreateFile},
		{ContextConsole, "x", ActionClearConsole},
		{ContextCurriculum, "right", ActionNextLesson},
		{ContextConfirm, "y", ActionConfirm},
		{ContextConfirm, "esc", ActionCancel},
		{ContextTextInput, "enter", ActionTextSubmit},
	}
	for _, c := range cases {
		if action, ok := r.Match(c.context, c.key); !ok || action != c.want {
			t.Errorf("%s/%s: expected %q, got %q ok=%v", c.context, c.key, c.want, action, ok)
		}
	}
}

func TestValidate_RejectsUnknownContextAndAction(t *testing.T) {
	bad := &Config{Contexts: map[Context]map[string]Action{
		"bogus_context": {"x": ActionQuit},
		ContextConsole:  {"x": "launch_missiles"},
	}}

	err := Validate(bad)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	errs, ok := err.(ValidationErrors)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 aggregated errors, got %v", err)
	}
}

func TestApplyConfig_InvalidChangesNothing(t *testing.T) {
	r := NewDefaultRegistry()
	bad := &Config{Contexts: map[Context]map[string]Action{
		ContextConsole: {"x": "bogus"},
	}}

	if err := ApplyConfig(r, bad); err == nil {
		t.Fatal("expected error")
	}
	if action, _ := r.Match(ContextConsole, "x"); action != ActionClearConsole {
		t.Errorf("invalid config must not alter the registry, got %q", action)
	}
}

func TestNewRegistryWithOverrides_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.yaml")
	content := "contexts:\n  console:\n    C: clear_console\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewRegistryWithOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	if action, ok := r.Match(ContextConsole, "C"); !ok || action != ActionClearConsole {
		t.Errorf("override not applied, got %q ok=%v", action, ok)
	}
	// Defaults survive alongside overrides.
	if action, _ := r.Match(ContextConsole, "x"); action != ActionClearConsole {
		t.Error("defaults must survive an overlay")
	}
}

func TestNewRegistryWithOverrides_MissingFileKeepsDefaults(t *testing.T) {
	r, err := NewRegistryWithOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing overrides file must not be an error: %v", err)
	}
	if _, ok := r.Match(ContextNormal, "ctrl+s"); !ok {
		t.Error("defaults missing")
	}
}
