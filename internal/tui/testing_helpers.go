package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/config"
	"github.com/studiowebux/minicoder/internal/curriculum"
	"github.com/studiowebux/minicoder/internal/preview"
	"github.com/studiowebux/minicoder/internal/workspace"
)

// CreateTestModel builds a Model with a starter workspace and an unstarted
// preview server. Nothing touches the network or the real config directory.
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	tempDir := t.TempDir()
	originalKeybinds := config.KeybindsFile
	config.KeybindsFile = filepath.Join(tempDir, "keybinds.yaml")
	t.Cleanup(func() {
		config.KeybindsFile = originalKeybinds
	})

	ws := workspace.New()
	server := preview.NewServer(0)
	loader := curriculum.NewLoader("http://localhost:8000/curriculum/")

	m, err := New(ws, server, loader, config.DefaultSettings(), "test-version")
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}

	// Give every widget a real size.
	m.width = 120
	m.height = 40
	m.layout()

	return &m
}

// SendKey feeds one key press through the key router.
func SendKey(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return m.handleKeyPress(msg)
}

// AssertModelField verifies a model field holds the expected value
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
