package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// Force quit works everywhere.
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, key); ok && action == keybinds.ActionQuitForce {
		m.Cleanup()
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeCreateFile:
		return m.handleCreateFileKeys(msg)
	case ModeImportZip:
		return m.handleImportZipKeys(msg)
	case ModeDeleteConfirm:
		return m.handleDeleteConfirmKeys(msg)
	case ModeQuitConfirm:
		return m.handleQuitConfirmKeys(msg)
	case ModeCopyPick:
		return m.handleCopyPickKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	}
	return nil
}

// handleNormalKeys routes by focused pane.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	switch m.focused {
	case PaneEditor:
		return m.handleEditorKeys(msg)
	case PaneFiles:
		return m.handleFileListKeys(msg)
	case PaneConsole:
		return m.handleConsoleKeys(msg)
	case PaneCurriculum:
		return m.handleCurriculumKeys(msg)
	}
	return nil
}

// handleEditorKeys gives chords to the action table and everything else to
// the editing buffer, flagging divergence from the committed content.
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if action, ok := m.keybinds.Match(keybinds.ContextNormal, key); ok {
		return m.dispatchAction(action)
	}
	if m.editorFile == "" {
		// Placeholder buffer: nothing to edit until a tab opens.
		return nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.ws.MarkDirty(m.editorFile, m.editor.Value())
	return cmd
}

func (m *Model) handleFileListKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextFileList, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionNavigateUp:
		if m.fileIndex > 0 {
			m.fileIndex--
		}
		return nil
	case keybinds.ActionNavigateDown:
		if m.fileIndex < m.ws.Len()-1 {
			m.fileIndex++
		}
		return nil
	case keybinds.ActionSelect:
		names := m.ws.Names()
		if m.fileIndex < len(names) {
			return m.openFile(names[m.fileIndex])
		}
		return nil
	case keybinds.ActionDeleteFile:
		names := m.ws.Names()
		if m.fileIndex < len(names) {
			return m.requestDelete(names[m.fileIndex])
		}
		return nil
	}
	return m.dispatchAction(action)
}

func (m *Model) handleConsoleKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConsole, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionNavigateUp:
		m.consoleView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.consoleView.LineDown(1)
	case keybinds.ActionPageUp:
		m.consoleView.ViewUp()
	case keybinds.ActionPageDown:
		m.consoleView.ViewDown()
	case keybinds.ActionGoToTop:
		m.consoleView.GotoTop()
	case keybinds.ActionGoToBottom:
		m.consoleView.GotoBottom()
	default:
		return m.dispatchAction(action)
	}
	return nil
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}
	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeNormal
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionPageUp:
		m.helpView.ViewUp()
	case keybinds.ActionPageDown:
		m.helpView.ViewDown()
	}
	return nil
}

// dispatchAction executes pane-independent actions.
func (m *Model) dispatchAction(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuit:
		return m.requestQuit()
	case keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit
	case keybinds.ActionSaveRefresh:
		return m.saveAndRefresh()
	case keybinds.ActionSwitchFocus:
		m.cycleFocus()
	case keybinds.ActionFocusEditor:
		m.focused = PaneEditor
	case keybinds.ActionFocusConsole:
		m.focused = PaneConsole
	case keybinds.ActionCreateFile:
		m.mode = ModeCreateFile
		m.fileInput.SetValue("")
		m.fileInput.Focus()
		m.errorMsg = ""
	case keybinds.ActionCloseTab:
		m.closeActiveTab()
	case keybinds.ActionNextTab:
		m.cycleTab(1)
	case keybinds.ActionPrevTab:
		m.cycleTab(-1)
	case keybinds.ActionExportZip:
		return m.exportZip()
	case keybinds.ActionImportZip:
		m.mode = ModeImportZip
		m.importInput.SetValue("")
		m.importInput.Focus()
		m.errorMsg = ""
	case keybinds.ActionToggleSidebar:
		m.showSidebar = !m.showSidebar
		m.layout()
	case keybinds.ActionToggleCurriculum:
		return m.toggleCurriculum()
	case keybinds.ActionClearConsole:
		m.console = nil
		m.refreshConsoleView()
	case keybinds.ActionOpenHelp:
		m.openHelp()
	}
	return nil
}

// cycleFocus moves focus across the visible panes in a fixed order.
func (m *Model) cycleFocus() {
	order := []Pane{PaneEditor, PaneConsole}
	if m.showSidebar {
		order = append([]Pane{PaneFiles}, order...)
	}
	if m.curriculum.visible {
		order = append(order, PaneCurriculum)
	}
	for i, p := range order {
		if p == m.focused {
			m.focused = order[(i+1)%len(order)]
			return
		}
	}
	m.focused = order[0]
}

func (m *Model) cycleTab(delta int) {
	tabs := m.ws.Tabs()
	if len(tabs) == 0 {
		return
	}
	active := m.ws.Active()
	idx := 0
	for i, t := range tabs {
		if t == active {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(tabs)) % len(tabs)
	m.switchToFile(tabs[idx])
}
