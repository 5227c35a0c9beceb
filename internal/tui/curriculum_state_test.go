package tui

import (
	"testing"

	"github.com/studiowebux/minicoder/internal/curriculum"
)

func sampleTree() []*curriculum.Node {
	return []*curriculum.Node{
		{Kind: curriculum.KindDocument, Title: "intro", Path: "http://x/intro.md"},
		{
			Kind: curriculum.KindFolder,
			Name: "basics",
			Children: []*curriculum.Node{
				{Kind: curriculum.KindDocument, Title: "variables", Path: "http://x/basics/variables.md"},
				{Kind: curriculum.KindDocument, Title: "loops", Path: "http://x/basics/loops.md"},
			},
		},
		{Kind: curriculum.KindError, Message: "Load Error", Detail: "boom"},
	}
}

func TestSetTree_CollapsedFoldersHideChildren(t *testing.T) {
	m := CreateTestModel(t)
	m.curriculum.setTree(sampleTree())

	// intro, basics (collapsed), error leaf.
	AssertModelField(t, "row count", len(m.curriculum.rows), 3)
	AssertModelField(t, "flat docs", len(m.curriculum.flat), 3)
	AssertModelField(t, "selected reset", m.curriculum.selected, 0)
}

func TestCurriculumSelect_ExpandsFolder(t *testing.T) {
	m := CreateTestModel(t)
	m.curriculum.visible = true
	m.focused = PaneCurriculum
	m.curriculum.setTree(sampleTree())

	m.curriculum.selected = 1 // basics folder
	SendKey(m, "enter")
	AssertModelField(t, "expanded rows", len(m.curriculum.rows), 5)

	SendKey(m, "enter")
	AssertModelField(t, "collapsed rows", len(m.curriculum.rows), 3)
}

func TestCurriculumSelect_OpensLoadedDocumentWithoutFetch(t *testing.T) {
	m := CreateTestModel(t)
	m.curriculum.visible = true
	m.focused = PaneCurriculum
	tree := sampleTree()
	tree[0].Content = "# Intro"
	tree[0].ContentState = curriculum.ContentLoaded
	m.curriculum.setTree(tree)

	cmd := SendKey(m, "enter")
	if cmd != nil {
		t.Error("loaded document should not schedule a fetch")
	}
	AssertModelField(t, "viewing", m.curriculum.viewing, tree[0])
}

func TestCurriculumSelect_UnloadedDocumentSchedulesFetch(t *testing.T) {
	m := CreateTestModel(t)
	m.curriculum.visible = true
	m.focused = PaneCurriculum
	m.curriculum.setTree(sampleTree())

	cmd := SendKey(m, "enter")
	if cmd == nil {
		t.Error("unloaded document should schedule a fetch")
	}
}

func TestStepLesson_WalksFlattenedSequence(t *testing.T) {
	m := CreateTestModel(t)
	tree := sampleTree()
	for _, doc := range curriculum.Flatten(tree) {
		doc.Content = "# " + doc.Title
		doc.ContentState = curriculum.ContentLoaded
	}
	m.curriculum.setTree(tree)

	m.openLesson(m.curriculum.flat[0])
	m.stepLesson(1)
	AssertModelField(t, "second lesson", m.curriculum.viewing.Title, "variables")
	m.stepLesson(1)
	AssertModelField(t, "third lesson", m.curriculum.viewing.Title, "loops")

	// Past the end stays put.
	m.stepLesson(1)
	AssertModelField(t, "clamped at end", m.curriculum.viewing.Title, "loops")
	m.stepLesson(-1)
	AssertModelField(t, "back one", m.curriculum.viewing.Title, "variables")
}

func TestLessonArrived_StaleDeliveryKeepsOpenLesson(t *testing.T) {
	m := CreateTestModel(t)
	tree := sampleTree()
	m.curriculum.setTree(tree)

	opened := m.curriculum.flat[0]
	stale := m.curriculum.flat[1]
	m.curriculum.viewing = opened

	m.lessonArrived(lessonLoadedMsg{node: stale, body: "# stale"})
	AssertModelField(t, "viewing unchanged", m.curriculum.viewing, opened)
}

func TestBackToLessons_ReturnsToTree(t *testing.T) {
	m := CreateTestModel(t)
	m.curriculum.visible = true
	m.focused = PaneCurriculum
	tree := sampleTree()
	tree[0].Content = "# Intro"
	tree[0].ContentState = curriculum.ContentLoaded
	m.curriculum.setTree(tree)

	SendKey(m, "enter")
	if m.curriculum.viewing == nil {
		t.Fatal("lesson should be open")
	}
	SendKey(m, "esc")
	if m.curriculum.viewing != nil {
		t.Error("esc should return to the lesson tree")
	}
}

func TestOpenCopyPicker_RequiresCodeBlocks(t *testing.T) {
	m := CreateTestModel(t)
	tree := sampleTree()
	tree[0].Content = "no code here"
	tree[0].ContentState = curriculum.ContentLoaded
	m.curriculum.setTree(tree)
	m.curriculum.viewing = tree[0]

	m.openCopyPicker()
	AssertModelField(t, "picker not opened", m.mode, ModeNormal)
}

func TestOpenCopyPicker_ListsBlocksInOrder(t *testing.T) {
	m := CreateTestModel(t)
	tree := sampleTree()
	tree[0].Content = "```js\nfirst()\n```\ntext\n```css\n.second {}\n```"
	tree[0].ContentState = curriculum.ContentLoaded
	m.curriculum.setTree(tree)
	m.curriculum.viewing = tree[0]

	m.openCopyPicker()
	AssertModelField(t, "picker mode", m.mode, ModeCopyPick)
	AssertModelField(t, "block count", len(m.copyPick.blocks), 2)
	AssertModelField(t, "first block lang", m.copyPick.blocks[0].Language, "js")
	AssertModelField(t, "second block lang", m.copyPick.blocks[1].Language, "css")

	SendKey(m, "esc")
	AssertModelField(t, "picker closed", m.mode, ModeNormal)
}

func TestToggleCurriculum_HiddenPanelReleasesFocus(t *testing.T) {
	m := CreateTestModel(t)
	m.curriculum.visible = true
	m.focused = PaneCurriculum

	m.toggleCurriculum()
	AssertModelField(t, "panel hidden", m.curriculum.visible, false)
	AssertModelField(t, "focus returned", m.focused, PaneEditor)
}
