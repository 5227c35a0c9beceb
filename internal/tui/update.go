package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/types"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKeyPress(msg)
		return m, cmd

	case consoleRecordMsg:
		m.appendConsole(types.ConsoleRecord(msg))
		// Re-arm the relay listener; records arrive strictly in order.
		return m, listenForRecords(m.server)

	case relayClosedMsg:
		return m, nil

	case curriculumLoadedMsg:
		m.curriculum.setTree(msg.tree)
		return m, nil

	case lessonLoadedMsg:
		cmd := m.lessonArrived(msg)
		return m, cmd

	case statusRevertMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = m.baseStatus()
		}
		return m, nil

	case updateCheckMsg:
		m.updateAvailable = msg.available
		m.latestVersion = msg.latest
		return m, nil
	}

	// Everything else (cursor blink and friends) belongs to the editor.
	if m.mode == ModeNormal && m.focused == PaneEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// baseStatus is what the status bar shows when nothing transient is up.
func (m *Model) baseStatus() string {
	if active := m.ws.Active(); active != "" {
		return "Editing " + active
	}
	return "No file open"
}

func (m *Model) appendConsole(rec types.ConsoleRecord) {
	m.console = append(m.console, rec)
	m.refreshConsoleView()
	m.consoleView.GotoBottom()
}
