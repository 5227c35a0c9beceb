package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/keybinds"
	"github.com/studiowebux/minicoder/internal/markdown"
)

// copyPickState holds the code-block picker opened over a lesson.
type copyPickState struct {
	blocks   []markdown.CodeBlock
	selected int
}

// openCopyPicker lists the open lesson's fenced code blocks for copying.
// A lesson without code blocks never opens the picker.
func (m *Model) openCopyPicker() tea.Cmd {
	node := m.curriculum.viewing
	if node == nil {
		return nil
	}
	blocks := markdown.ExtractCodeBlocks(node.Content)
	if len(blocks) == 0 {
		return m.setStatus("No code blocks in this lesson")
	}
	m.copyPick = copyPickState{blocks: blocks}
	m.mode = ModeCopyPick
	return nil
}

func (m *Model) handleCopyPickKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextCopyPick, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionNavigateUp:
		if m.copyPick.selected > 0 {
			m.copyPick.selected--
		}
	case keybinds.ActionNavigateDown:
		if m.copyPick.selected < len(m.copyPick.blocks)-1 {
			m.copyPick.selected++
		}
	case keybinds.ActionSelect:
		block := m.copyPick.blocks[m.copyPick.selected]
		m.mode = ModeNormal
		if err := clipboard.WriteAll(block.Code); err != nil {
			return m.setStatus("Clipboard unavailable: " + err.Error())
		}
		return m.setStatus("Copied code block to clipboard")
	case keybinds.ActionCloseModal, keybinds.ActionCancel:
		m.mode = ModeNormal
	}
	return nil
}
