package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/archive"
	"github.com/studiowebux/minicoder/internal/compiler"
)

// publishPreview recompiles the committed workspace and hands the document
// to the preview server, which pushes a reload to any open preview page.
func (m *Model) publishPreview() {
	if m.server == nil {
		return
	}
	m.server.Publish(compiler.Compile(m.ws.Snapshot()))
}

// setStatus shows a transient status message that reverts to the editing
// baseline after a cosmetic delay.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(StatusRevertDelay, func(time.Time) tea.Msg {
		return statusRevertMsg{seq: seq}
	})
}

// openFile opens a tab for the file, makes it active and swaps the editor
// buffer. On narrow terminals the sidebar overlay collapses afterwards.
func (m *Model) openFile(name string) tea.Cmd {
	return m.switchToFileCmd(name, true)
}

// switchToFile is openFile without the narrow-viewport sidebar collapse,
// used for tab cycling.
func (m *Model) switchToFile(name string) {
	m.switchToFileCmd(name, false)
}

func (m *Model) switchToFileCmd(name string, collapse bool) tea.Cmd {
	m.ws.Open(name)
	m.loadBuffer(name)
	m.focused = PaneEditor
	if collapse && m.width > 0 && m.width <= MobileWidthThreshold {
		m.showSidebar = false
		m.layout()
	}
	return m.setStatus("Editing " + name)
}

// saveAndRefresh commits the editor buffer and republishes the preview.
func (m *Model) saveAndRefresh() tea.Cmd {
	name := m.editorFile
	if name == "" {
		return nil
	}
	if err := m.ws.Commit(name, m.editor.Value()); err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	m.publishPreview()
	return m.setStatus("Saved & Refreshed " + name)
}

// closeActiveTab closes the active tab. The workspace picks the successor;
// when none is left the placeholder buffer takes over.
func (m *Model) closeActiveTab() {
	active := m.ws.Active()
	if active == "" {
		return
	}
	m.ws.Close(active)
	if next := m.ws.Active(); next != "" {
		m.loadBuffer(next)
	} else {
		m.clearBuffer()
	}
	m.statusMsg = m.baseStatus()
}

// requestQuit quits immediately when everything is committed; otherwise it
// opens the unsaved-changes confirmation. Force quit (ctrl+c) bypasses this.
func (m *Model) requestQuit() tea.Cmd {
	if !m.ws.AnyDirty() {
		m.Cleanup()
		return tea.Quit
	}
	m.mode = ModeQuitConfirm
	m.errorMsg = ""
	return nil
}

// requestDelete opens the confirmation modal for a file. The decision is
// resolved exactly once by confirm, cancel or dismiss.
func (m *Model) requestDelete(name string) tea.Cmd {
	m.pendingDelete = name
	m.mode = ModeDeleteConfirm
	m.errorMsg = ""
	return nil
}

// confirmDelete resolves a pending delete decision.
func (m *Model) confirmDelete(accepted bool) tea.Cmd {
	name := m.pendingDelete
	m.pendingDelete = ""
	m.mode = ModeNormal
	if !accepted || name == "" {
		return nil
	}

	wasInBuffer := m.editorFile == name
	if err := m.ws.Delete(name); err != nil {
		m.errorMsg = err.Error()
		return nil
	}
	if m.fileIndex >= m.ws.Len() {
		m.fileIndex = m.ws.Len() - 1
	}
	if wasInBuffer {
		if next := m.ws.Active(); next != "" {
			m.loadBuffer(next)
		} else {
			m.clearBuffer()
		}
	}
	m.publishPreview()
	return m.setStatus("Deleted " + name)
}

// exportZip serializes the workspace into the working directory.
func (m *Model) exportZip() tea.Cmd {
	data, err := archive.Export(m.ws.Snapshot())
	if err != nil {
		m.errorMsg = fmt.Sprintf("Export failed: %v", err)
		return nil
	}
	if err := os.WriteFile(archive.DefaultExportName, data, 0644); err != nil {
		m.errorMsg = fmt.Sprintf("Export failed: %v", err)
		return nil
	}
	return m.setStatus("Exported " + archive.DefaultExportName)
}

// importZip decodes the archive fully, then atomically replaces the
// workspace. A decode failure leaves the store untouched.
func (m *Model) importZip(path string) tea.Cmd {
	data, err := os.ReadFile(path)
	if err != nil {
		m.errorMsg = fmt.Sprintf("Import failed: %v", err)
		return nil
	}
	files, err := archive.Import(data)
	if err != nil {
		m.errorMsg = fmt.Sprintf("Import failed: %v", err)
		return nil
	}

	m.ws.Reset(files)
	m.fileIndex = 0

	var cmd tea.Cmd
	if entry := archive.EntryPoint(files); entry != "" {
		cmd = m.openFile(entry)
	} else {
		m.clearBuffer()
	}
	m.publishPreview()
	return cmd
}
