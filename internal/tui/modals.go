package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/keybinds"
	"github.com/studiowebux/minicoder/internal/workspace"
)

// handleCreateFileKeys runs the new-file prompt. Invalid names keep the
// prompt open with an inline error.
func (m *Model) handleCreateFileKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String()); ok {
		switch action {
		case keybinds.ActionTextCancel:
			m.mode = ModeNormal
			m.errorMsg = ""
			return nil
		case keybinds.ActionTextSubmit:
			name := strings.TrimSpace(m.fileInput.Value())
			if err := m.ws.Add(name, ""); err != nil {
				switch {
				case errors.Is(err, workspace.ErrDuplicateName):
					m.errorMsg = fmt.Sprintf("%q already exists", name)
				case errors.Is(err, workspace.ErrInvalidName):
					m.errorMsg = "Name must include an extension, e.g. utils.js"
				default:
					m.errorMsg = err.Error()
				}
				return nil
			}
			m.mode = ModeNormal
			m.errorMsg = ""
			m.publishPreview()
			return m.openFile(name)
		}
	}

	var cmd tea.Cmd
	m.fileInput, cmd = m.fileInput.Update(msg)
	return cmd
}

// handleImportZipKeys runs the import-path prompt.
func (m *Model) handleImportZipKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextTextInput, msg.String()); ok {
		switch action {
		case keybinds.ActionTextCancel:
			m.mode = ModeNormal
			m.errorMsg = ""
			return nil
		case keybinds.ActionTextSubmit:
			path := strings.TrimSpace(m.importInput.Value())
			if path == "" {
				m.errorMsg = "Enter a zip path"
				return nil
			}
			m.mode = ModeNormal
			m.errorMsg = ""
			return m.importZip(path)
		}
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return cmd
}

// handleQuitConfirmKeys resolves the unsaved-changes prompt: confirm quits
// and discards the uncommitted edits, cancel returns to editing.
func (m *Model) handleQuitConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionConfirm:
		m.Cleanup()
		return tea.Quit
	case keybinds.ActionCancel:
		m.mode = ModeNormal
	}
	return nil
}

// handleDeleteConfirmKeys resolves the delete confirmation exactly once.
func (m *Model) handleDeleteConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionConfirm:
		return m.confirmDelete(true)
	case keybinds.ActionCancel:
		return m.confirmDelete(false)
	}
	return nil
}

// openHelp builds the help viewer from the live registry, so user
// overrides show up in it.
func (m *Model) openHelp() {
	var sb strings.Builder
	sb.WriteString("Keybindings\n\n")

	byContext := make(map[keybinds.Context][]keybinds.Binding)
	for _, b := range m.keybinds.Bindings() {
		byContext[b.Context] = append(byContext[b.Context], b)
	}

	contexts := []struct {
		ctx   keybinds.Context
		title string
	}{
		{keybinds.ContextGlobal, "Global"},
		{keybinds.ContextNormal, "Editor"},
		{keybinds.ContextFileList, "File List"},
		{keybinds.ContextConsole, "Console"},
		{keybinds.ContextCurriculum, "Lessons"},
		{keybinds.ContextCopyPick, "Copy Picker"},
		{keybinds.ContextConfirm, "Confirmations"},
	}
	for _, c := range contexts {
		bindings := byContext[c.ctx]
		if len(bindings) == 0 {
			continue
		}
		sb.WriteString(c.title + "\n")
		for _, b := range bindings {
			sb.WriteString(fmt.Sprintf("  %-14s %s\n", b.Key, describeAction(b.Action)))
		}
		sb.WriteString("\n")
	}

	m.helpView.SetContent(sb.String())
	m.helpView.GotoTop()
	m.mode = ModeHelp
}

func describeAction(a keybinds.Action) string {
	if desc, ok := actionDescriptions[a]; ok {
		return desc
	}
	return string(a)
}

var actionDescriptions = map[keybinds.Action]string{
	keybinds.ActionQuit:             "quit",
	keybinds.ActionQuitForce:        "force quit",
	keybinds.ActionOpenHelp:         "open this help",
	keybinds.ActionSaveRefresh:      "save file and refresh preview",
	keybinds.ActionCreateFile:       "create a new file",
	keybinds.ActionDeleteFile:       "delete the selected file",
	keybinds.ActionCloseTab:         "close the active tab",
	keybinds.ActionNextTab:          "next tab",
	keybinds.ActionPrevTab:          "previous tab",
	keybinds.ActionExportZip:        "export project as zip",
	keybinds.ActionImportZip:        "import project from zip",
	keybinds.ActionToggleSidebar:    "show/hide the file list",
	keybinds.ActionSwitchFocus:      "cycle focus",
	keybinds.ActionFocusEditor:      "focus the editor",
	keybinds.ActionFocusConsole:     "focus the console",
	keybinds.ActionNavigateUp:       "move up",
	keybinds.ActionNavigateDown:     "move down",
	keybinds.ActionPageUp:           "page up",
	keybinds.ActionPageDown:         "page down",
	keybinds.ActionGoToTop:          "jump to top",
	keybinds.ActionGoToBottom:       "jump to bottom",
	keybinds.ActionSelect:           "open the selected item",
	keybinds.ActionClearConsole:     "clear the console",
	keybinds.ActionToggleCurriculum: "show/hide lessons",
	keybinds.ActionNextLesson:       "next lesson",
	keybinds.ActionPrevLesson:       "previous lesson",
	keybinds.ActionBackToLessons:    "back to the lesson list",
	keybinds.ActionCopyCodeBlock:    "copy a code block",
	keybinds.ActionTextSubmit:       "submit",
	keybinds.ActionTextCancel:       "cancel",
	keybinds.ActionConfirm:          "confirm",
	keybinds.ActionCancel:           "cancel",
	keybinds.ActionCloseModal:       "close",
}
