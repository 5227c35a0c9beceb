package tui

import (
	"fmt"
	"strings"

	"github.com/studiowebux/minicoder/internal/markdown"
)

// layout recomputes every widget's dimensions from the window size and the
// visible panels. Called on resize and whenever a panel toggles.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// Narrow terminals drop the sidebar automatically.
	if m.width < MobileWidthThreshold {
		m.showSidebar = false
	}

	editorWidth, editorHeight := m.editorDims()
	contentHeight := m.height - ChromeHeight

	m.editor.SetWidth(editorWidth - 2)
	m.editor.SetHeight(editorHeight)
	m.scratch.SetWidth(editorWidth - 2)
	m.scratch.SetHeight(editorHeight)

	m.consoleView.Width = editorWidth - 2
	m.consoleView.Height = ConsoleHeight - 2
	m.refreshConsoleView()

	lessonWidth := CurriculumWidth - 2
	m.curriculum.lessonView.Width = lessonWidth
	m.curriculum.lessonView.Height = contentHeight - 2
	if m.curriculum.renderer == nil || m.curriculum.renderer.Width() != lessonWidth {
		if r, err := markdown.NewRenderer(lessonWidth); err == nil {
			m.curriculum.renderer = r
			if m.curriculum.viewing != nil {
				m.renderLesson(m.curriculum.viewing)
			}
		}
	}

	m.helpView.Width = m.width - ModalWidthMargin
	m.helpView.Height = m.height - HelpHeightMargin
}

// editorDims computes the editor pane's inner size from the window and the
// visible side panels.
func (m *Model) editorDims() (width, height int) {
	width = m.width
	if m.showSidebar {
		width -= SidebarWidth
	}
	if m.curriculum.visible {
		width -= CurriculumWidth
	}
	if width < 20 {
		width = 20
	}
	height = m.height - ChromeHeight - ConsoleHeight
	if height < 3 {
		height = 3
	}
	return width, height
}

// refreshConsoleView rewrites the console viewport from the record list.
func (m *Model) refreshConsoleView() {
	if len(m.console) == 0 {
		m.consoleView.SetContent(consoleEmptyText)
		return
	}
	var sb strings.Builder
	for _, rec := range m.console {
		tag := levelStyle(rec.Level).Render(fmt.Sprintf("[%s]", rec.Level))
		sb.WriteString(tag + " " + rec.Text() + "\n")
	}
	m.consoleView.SetContent(strings.TrimSuffix(sb.String(), "\n"))
}
