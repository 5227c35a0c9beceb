package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/curriculum"
	"github.com/studiowebux/minicoder/internal/preview"
	"github.com/studiowebux/minicoder/internal/types"
	"github.com/studiowebux/minicoder/internal/version"
)

// consoleRecordMsg carries one relayed console record into the update loop.
type consoleRecordMsg types.ConsoleRecord

// relayClosedMsg signals that the preview server shut its record channel.
type relayClosedMsg struct{}

// curriculumLoadedMsg delivers a freshly built lesson tree.
type curriculumLoadedMsg struct {
	tree []*curriculum.Node
}

// lessonLoadedMsg delivers a lazily fetched lesson body. The node pointer
// identifies the slot; a stale delivery for a navigated-away lesson just
// re-renders whatever is currently open.
type lessonLoadedMsg struct {
	node *curriculum.Node
	body string
}

// statusRevertMsg reverts the status bar after a cosmetic delay. seq guards
// against a stale timer clobbering a newer message.
type statusRevertMsg struct {
	seq int
}

// updateCheckMsg carries the result of the best-effort release check.
type updateCheckMsg struct {
	available bool
	latest    string
}

// listenForRecords waits for the next console record. The returned command
// re-arms itself from Update on every delivery, preserving arrival order.
func listenForRecords(server *preview.Server) tea.Cmd {
	return func() tea.Msg {
		rec, ok := <-server.Records()
		if !ok {
			return relayClosedMsg{}
		}
		return consoleRecordMsg(rec)
	}
}

func checkForUpdates(current string) tea.Cmd {
	return func() tea.Msg {
		rel, newer, err := version.NewChecker().Latest(context.Background(), current)
		if err != nil || !newer {
			return updateCheckMsg{}
		}
		return updateCheckMsg{available: true, latest: rel.Version}
	}
}
