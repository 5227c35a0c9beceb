package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/studiowebux/minicoder/internal/curriculum"
	"github.com/studiowebux/minicoder/internal/markdown"
	"github.com/studiowebux/minicoder/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			Underline(true)
)

const consoleEmptyText = "console output appears here"

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeCreateFile:
		return m.renderTextPrompt("New File", "Enter a filename with extension:", m.fileInput.View())
	case ModeImportZip:
		return m.renderTextPrompt("Import Project", "Path to a zip archive:", m.importInput.View())
	case ModeDeleteConfirm:
		return m.renderDeleteConfirm()
	case ModeQuitConfirm:
		return m.renderQuitConfirm()
	case ModeCopyPick:
		return m.renderCopyPicker()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	var columns []string

	contentHeight := m.height - ChromeHeight + 2

	if m.showSidebar {
		columns = append(columns, m.box(m.renderFileList(), SidebarWidth-2, contentHeight, m.focused == PaneFiles))
	}

	editorWidth, editorHeight := m.editorDims()
	editorColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabStrip(),
		m.box(m.renderEditor(), editorWidth-2, editorHeight, m.focused == PaneEditor),
		m.box(m.consoleView.View(), m.consoleView.Width, m.consoleView.Height, m.focused == PaneConsole),
	)
	columns = append(columns, editorColumn)

	if m.curriculum.visible {
		columns = append(columns, m.box(m.renderCurriculum(), CurriculumWidth-2, contentHeight, m.focused == PaneCurriculum))
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

// box draws a rounded border, green when the pane holds focus.
func (m Model) box(content string, width, height int, focused bool) string {
	borderColor := colorGray
	if focused {
		borderColor = colorGreen
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		Render(content)
}

func (m Model) renderTabStrip() string {
	tabs := m.ws.Tabs()
	if len(tabs) == 0 {
		return styleSubtle.Render(" no open tabs ")
	}

	active := m.ws.Active()
	var parts []string
	for _, name := range tabs {
		label := name
		if f, ok := m.ws.Get(name); ok && f.Dirty {
			label += "*"
		}
		label = truncate.StringWithTail(label, 20, "…")
		if name == active {
			parts = append(parts, styleActiveTab.Render(" "+label+" "))
		} else {
			parts = append(parts, styleSubtle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "|")
}

func (m Model) renderEditor() string {
	if m.editorFile == "" {
		return styleSubtle.Render("No file open.\n\nSelect a file from the list, or press ctrl+n to create one.")
	}
	return m.editor.View()
}

func (m Model) renderFileList() string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Files") + "\n\n")

	for i, name := range m.ws.Names() {
		marker := "  "
		if m.ws.IsOpen(name) {
			marker = "• "
		}
		label := marker + truncate.StringWithTail(name, SidebarWidth-6, "…")
		if f, ok := m.ws.Get(name); ok && f.Dirty {
			label += "*"
		}
		if i == m.fileIndex && m.focused == PaneFiles {
			sb.WriteString(styleSelected.Render(label))
		} else {
			sb.WriteString(label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + styleSubtle.Render("n new · d delete · e export"))
	return sb.String()
}

func (m Model) renderCurriculum() string {
	c := m.curriculum

	if c.viewing != nil {
		title := styleTitle.Render(c.viewing.Title)
		footer := styleSubtle.Render("←/→ prev/next · y copy · esc back")
		return lipgloss.JoinVertical(lipgloss.Left, title, c.lessonView.View(), footer)
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Lessons") + "\n\n")

	if c.loading {
		sb.WriteString(styleSubtle.Render("Loading..."))
		return sb.String()
	}
	if len(c.rows) == 0 {
		sb.WriteString(styleSubtle.Render("No lessons found"))
		return sb.String()
	}

	for i, row := range c.rows {
		indent := strings.Repeat("  ", row.depth)
		var label string
		switch row.node.Kind {
		case curriculum.KindFolder:
			arrow := "▸"
			if c.expanded[row.node] {
				arrow = "▾"
			}
			label = fmt.Sprintf("%s%s %s", indent, arrow, row.node.Name)
		case curriculum.KindError:
			label = indent + styleError.Render(row.node.Message)
		default:
			label = indent + "  " + row.node.Title
		}
		label = truncate.StringWithTail(label, CurriculumWidth-4, "…")
		if i == c.selected && m.focused == PaneCurriculum {
			sb.WriteString(styleSelected.Render(label))
		} else {
			sb.WriteString(label)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderStatusBar() string {
	left := m.statusMsg
	if left == "" {
		left = "Editing " + m.ws.Active()
		if m.ws.Active() == "" {
			left = "No file open"
		}
	}
	if strings.HasPrefix(left, "Saved") || strings.HasPrefix(left, "Copied") || strings.HasPrefix(left, "Exported") {
		left = styleSuccess.Render(left)
	}

	right := ""
	if m.errorMsg != "" {
		right = styleError.Render(m.errorMsg)
	} else if m.updateAvailable {
		right = styleWarning.Render("update available: " + m.latestVersion)
	} else {
		right = styleSubtle.Render(fmt.Sprintf("preview %s | f1 help", m.server.URL()))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}

func (m Model) renderHelp() string {
	title := styleTitle.Render("Help")
	footer := styleSubtle.Render("esc/q to close · j/k to scroll")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.helpView.View(), footer)
}

func (m Model) renderTextPrompt(title, hint, input string) string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render(title) + "\n\n")
	sb.WriteString(hint + "\n\n")
	sb.WriteString(input + "\n")
	if m.errorMsg != "" {
		sb.WriteString("\n" + styleError.Render(m.errorMsg) + "\n")
	}
	sb.WriteString("\n" + styleSubtle.Render("enter to confirm · esc to cancel"))
	return m.modal(sb.String())
}

func (m Model) renderDeleteConfirm() string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Delete File") + "\n\n")
	sb.WriteString(fmt.Sprintf("Delete %q? This cannot be undone.\n", m.pendingDelete))
	sb.WriteString("\n" + styleWarning.Render("y to delete · n to cancel"))
	return m.modal(sb.String())
}

func (m Model) renderQuitConfirm() string {
	var dirty []string
	for _, name := range m.ws.Names() {
		if f, ok := m.ws.Get(name); ok && f.Dirty {
			dirty = append(dirty, name)
		}
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Unsaved Changes") + "\n\n")
	sb.WriteString("Quit without saving? Unsaved edits will be lost:\n")
	for _, name := range dirty {
		sb.WriteString("  " + styleWarning.Render(name) + "\n")
	}
	sb.WriteString("\n" + styleWarning.Render("y to quit anyway · n to keep editing"))
	return m.modal(sb.String())
}

func (m Model) renderCopyPicker() string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Copy Code Block") + "\n\n")

	for i, block := range m.copyPick.blocks {
		lang := block.Language
		if lang == "" {
			lang = "text"
		}
		header := fmt.Sprintf("#%d [%s] %d lines", i+1, lang, strings.Count(block.Code, "\n")+1)
		if i == m.copyPick.selected {
			sb.WriteString(styleSelected.Render(header) + "\n")
			preview := markdown.Highlight(block)
			lines := strings.Split(preview, "\n")
			if len(lines) > 6 {
				lines = append(lines[:6], styleSubtle.Render("..."))
			}
			sb.WriteString(strings.Join(lines, "\n") + "\n")
		} else {
			sb.WriteString(styleSubtle.Render(header) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(styleSubtle.Render("enter to copy · esc to cancel"))
	return m.modal(sb.String())
}

// modal centers a dialog in the window.
func (m Model) modal(content string) string {
	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(1, 2).
		Width(min(m.width-ModalWidthMargin, 64)).
		Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// levelStyle colors a console level tag.
func levelStyle(level types.ConsoleLevel) lipgloss.Style {
	switch level {
	case types.LevelError:
		return styleError
	case types.LevelWarn:
		return styleWarning
	default:
		return styleSubtle
	}
}
