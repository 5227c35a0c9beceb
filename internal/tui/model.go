package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/config"
	"github.com/studiowebux/minicoder/internal/curriculum"
	"github.com/studiowebux/minicoder/internal/keybinds"
	"github.com/studiowebux/minicoder/internal/preview"
	"github.com/studiowebux/minicoder/internal/types"
	"github.com/studiowebux/minicoder/internal/workspace"
)

// Mode represents the current TUI mode. Normal routes keys by focused pane;
// the rest are modal overlays.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCreateFile
	ModeImportZip
	ModeDeleteConfirm
	ModeQuitConfirm
	ModeCopyPick
	ModeHelp
)

// Pane identifies the focusable panes in normal mode.
type Pane string

const (
	PaneFiles      Pane = "files"
	PaneEditor     Pane = "editor"
	PaneConsole    Pane = "console"
	PaneCurriculum Pane = "curriculum"
)

// Model represents the TUI state
type Model struct {
	// Core state
	ws       *workspace.Workspace
	server   *preview.Server
	loader   *curriculum.Loader
	keybinds *keybinds.Registry
	settings config.Settings
	version  string

	updateAvailable bool
	latestVersion   string

	mode    Mode
	focused Pane

	// Editor surface. editorFile tracks which file the buffer holds;
	// scratch is the reusable placeholder swapped in when no tab is active
	// (it is reset for reuse, never disposed).
	editor     textarea.Model
	scratch    textarea.Model
	editorFile string

	// File sidebar
	fileIndex   int
	showSidebar bool

	// Console pane
	console     []types.ConsoleRecord
	consoleView viewport.Model

	// Curriculum panel
	curriculum curriculumState

	// Modal state
	fileInput     textinput.Model
	importInput   textinput.Model
	pendingDelete string
	helpView      viewport.Model
	copyPick      copyPickState

	// UI state
	width     int
	height    int
	statusMsg string
	errorMsg  string
	statusSeq int // invalidates stale status reverts
}

// New creates the TUI model. The preview server must already be started;
// the model only publishes documents and drains its record channel.
func New(ws *workspace.Workspace, server *preview.Server, loader *curriculum.Loader, settings config.Settings, version string) (Model, error) {
	registry, err := keybinds.NewRegistryWithOverrides(config.KeybindsFile)
	if err != nil {
		// Broken overrides fall back to defaults; the user sees why.
		registry = keybinds.NewDefaultRegistry()
	}

	editor := textarea.New()
	editor.CharLimit = 0
	editor.ShowLineNumbers = true
	editor.Focus()

	scratch := textarea.New()
	scratch.CharLimit = 0
	scratch.ShowLineNumbers = false

	fileInput := textinput.New()
	fileInput.Placeholder = "filename.ext"
	fileInput.CharLimit = 128

	importInput := textinput.New()
	importInput.Placeholder = "path/to/project.zip"
	importInput.CharLimit = 512

	m := Model{
		ws:          ws,
		server:      server,
		loader:      loader,
		keybinds:    registry,
		settings:    settings,
		version:     version,
		focused:     PaneEditor,
		editor:      editor,
		scratch:     scratch,
		fileInput:   fileInput,
		importInput: importInput,
		showSidebar: true,
	}
	if err != nil {
		m.errorMsg = err.Error()
	}

	if active := ws.Active(); active != "" {
		m.loadBuffer(active)
	}
	m.publishPreview()
	return m, nil
}

// loadBuffer swaps the editing widget's buffer to the named file.
func (m *Model) loadBuffer(name string) {
	f, ok := m.ws.Get(name)
	if !ok {
		return
	}
	m.editor.SetValue(f.Content)
	m.editor.CursorStart()
	m.editorFile = name
}

// clearBuffer swaps in the placeholder scratch buffer after the last tab
// closes. The scratch buffer is reused across occurrences, reset each time.
func (m *Model) clearBuffer() {
	m.scratch.Reset()
	m.editor.SetValue("")
	m.editorFile = ""
}

// Init starts the background listeners: the console relay drain and the
// best-effort update check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listenForRecords(m.server),
		checkForUpdates(m.version),
		textarea.Blink,
	)
}

// Cleanup stops the preview server. Called on quit.
func (m *Model) Cleanup() {
	if m.server != nil {
		m.server.Stop()
	}
}
