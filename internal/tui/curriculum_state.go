package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/curriculum"
	"github.com/studiowebux/minicoder/internal/keybinds"
	"github.com/studiowebux/minicoder/internal/markdown"
)

// curriculumState holds the lesson panel: the discovered tree, the visible
// (expansion-aware) row list, and the lesson viewer.
type curriculumState struct {
	visible bool
	loading bool

	tree     []*curriculum.Node
	flat     []*curriculum.Node // linear prev/next sequence
	rows     []curriculumRow
	expanded map[*curriculum.Node]bool
	selected int

	viewing    *curriculum.Node
	lessonView viewport.Model
	renderer   *markdown.Renderer
}

// curriculumRow is one visible line of the lesson tree.
type curriculumRow struct {
	node  *curriculum.Node
	depth int
}

// setTree installs a freshly loaded tree. The tree is rebuilt from scratch
// on every panel open; expansion state starts collapsed.
func (c *curriculumState) setTree(tree []*curriculum.Node) {
	c.loading = false
	c.tree = tree
	c.flat = curriculum.Flatten(tree)
	c.expanded = make(map[*curriculum.Node]bool)
	c.selected = 0
	c.viewing = nil
	c.rebuildRows()
}

func (c *curriculumState) rebuildRows() {
	c.rows = c.rows[:0]
	var walk func(nodes []*curriculum.Node, depth int)
	walk = func(nodes []*curriculum.Node, depth int) {
		for _, n := range nodes {
			c.rows = append(c.rows, curriculumRow{node: n, depth: depth})
			if n.Kind == curriculum.KindFolder && c.expanded[n] {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(c.tree, 0)
	if c.selected >= len(c.rows) {
		c.selected = len(c.rows) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

// toggleCurriculum opens or closes the lesson panel. Opening rebuilds the
// tree from the server; there is no incremental refresh.
func (m *Model) toggleCurriculum() tea.Cmd {
	m.curriculum.visible = !m.curriculum.visible
	m.layout()
	if !m.curriculum.visible {
		if m.focused == PaneCurriculum {
			m.focused = PaneEditor
		}
		return nil
	}

	m.focused = PaneCurriculum
	m.curriculum.loading = true
	loader := m.loader
	return func() tea.Msg {
		return curriculumLoadedMsg{tree: loader.Load(context.Background())}
	}
}

func (m *Model) handleCurriculumKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextCurriculum, msg.String())
	if !ok {
		return nil
	}

	c := &m.curriculum
	if c.viewing != nil {
		return m.handleLessonViewerAction(action)
	}

	switch action {
	case keybinds.ActionNavigateUp:
		if c.selected > 0 {
			c.selected--
		}
	case keybinds.ActionNavigateDown:
		if c.selected < len(c.rows)-1 {
			c.selected++
		}
	case keybinds.ActionGoToTop:
		c.selected = 0
	case keybinds.ActionGoToBottom:
		if len(c.rows) > 0 {
			c.selected = len(c.rows) - 1
		}
	case keybinds.ActionSelect:
		if c.selected < len(c.rows) {
			row := c.rows[c.selected]
			switch row.node.Kind {
			case curriculum.KindFolder:
				c.expanded[row.node] = !c.expanded[row.node]
				c.rebuildRows()
			case curriculum.KindDocument:
				return m.openLesson(row.node)
			}
		}
	default:
		return m.dispatchAction(action)
	}
	return nil
}

func (m *Model) handleLessonViewerAction(action keybinds.Action) tea.Cmd {
	c := &m.curriculum
	switch action {
	case keybinds.ActionNavigateUp:
		c.lessonView.LineUp(1)
	case keybinds.ActionNavigateDown:
		c.lessonView.LineDown(1)
	case keybinds.ActionPageUp:
		c.lessonView.ViewUp()
	case keybinds.ActionPageDown:
		c.lessonView.ViewDown()
	case keybinds.ActionGoToTop:
		c.lessonView.GotoTop()
	case keybinds.ActionGoToBottom:
		c.lessonView.GotoBottom()
	case keybinds.ActionBackToLessons:
		c.viewing = nil
	case keybinds.ActionNextLesson:
		return m.stepLesson(1)
	case keybinds.ActionPrevLesson:
		return m.stepLesson(-1)
	case keybinds.ActionCopyCodeBlock:
		return m.openCopyPicker()
	default:
		return m.dispatchAction(action)
	}
	return nil
}

// openLesson shows a document node, fetching its body on first open.
func (m *Model) openLesson(node *curriculum.Node) tea.Cmd {
	m.curriculum.viewing = node
	if node.ContentState == curriculum.ContentLoaded {
		m.renderLesson(node)
		return nil
	}

	loader := m.loader
	return func() tea.Msg {
		body := loader.FetchDocument(context.Background(), node)
		return lessonLoadedMsg{node: node, body: body}
	}
}

// lessonArrived handles a fetched lesson body. A stale arrival for a
// navigated-away node only warms that node's cache; the open lesson keeps
// its own content.
func (m *Model) lessonArrived(msg lessonLoadedMsg) tea.Cmd {
	if m.curriculum.viewing == msg.node {
		m.renderLesson(msg.node)
	}
	return nil
}

func (m *Model) renderLesson(node *curriculum.Node) {
	c := &m.curriculum
	if c.renderer == nil {
		return
	}
	c.lessonView.SetContent(c.renderer.Render(node.Content))
	c.lessonView.GotoTop()
}

// stepLesson navigates linearly over the flattened document sequence.
func (m *Model) stepLesson(delta int) tea.Cmd {
	c := &m.curriculum
	if c.viewing == nil {
		return nil
	}
	idx := -1
	for i, doc := range c.flat {
		if doc == c.viewing {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx == -1 || next < 0 || next >= len(c.flat) {
		return nil
	}
	return m.openLesson(c.flat[next])
}
