package tui

import "time"

// UI layout constants

const (
	// SidebarWidth is the fixed width of the file list pane
	SidebarWidth = 24

	// CurriculumWidth is the fixed width of the lesson panel
	CurriculumWidth = 44

	// ConsoleHeight is the height of the console pane below the editor
	ConsoleHeight = 8

	// MobileWidthThreshold mirrors the narrow-viewport behavior: below it,
	// opening a file auto-collapses the sidebar overlay
	MobileWidthThreshold = 80

	// ChromeHeight accounts for the tab strip and the status bar
	ChromeHeight = 4

	// StatusRevertDelay is the cosmetic delay before a transient status
	// message reverts to the editing baseline
	StatusRevertDelay = 2 * time.Second

	// ModalWidthMargin is the horizontal margin applied to modal dialogs
	ModalWidthMargin = 10

	// HelpHeightMargin is the vertical margin of the help viewer
	HelpHeightMargin = 4
)
