package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal     Context = "global"     // Available everywhere
	ContextNormal     Context = "normal"     // Editing surface focused
	ContextFileList   Context = "file_list"  // File sidebar focused
	ContextConsole    Context = "console"    // Console pane focused
	ContextCurriculum Context = "curriculum" // Lesson tree / lesson viewer
	ContextCopyPick   Context = "copy_pick"  // Code-block copy picker
	ContextTextInput  Context = "text_input" // Text input prompts
	ContextConfirm    Context = "confirm"    // Confirmation dialogs
	ContextHelp       Context = "help"       // Help viewer
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)
	ActionOpenHelp  Action = "open_help"  // Open help viewer

	// Workspace actions
	ActionSaveRefresh   Action = "save_refresh"   // Commit active file, recompile preview
	ActionCreateFile    Action = "create_file"    // Open the new-file prompt
	ActionDeleteFile    Action = "delete_file"    // Delete selected file (with confirm)
	ActionCloseTab      Action = "close_tab"      // Close the active tab
	ActionNextTab       Action = "next_tab"       // Cycle to the next tab
	ActionPrevTab       Action = "prev_tab"       // Cycle to the previous tab
	ActionExportZip     Action = "export_zip"     // Export workspace as zip
	ActionImportZip     Action = "import_zip"     // Import zip prompt
	ActionToggleSidebar Action = "toggle_sidebar" // Collapse/expand the file list

	// Focus switching
	ActionSwitchFocus  Action = "switch_focus"  // Cycle focus across panes
	ActionFocusEditor  Action = "focus_editor"  // Jump to the editor
	ActionFocusConsole Action = "focus_console" // Jump to the console pane

	// Navigation (lists and viewers)
	ActionNavigateUp   Action = "navigate_up"   // Move up one item
	ActionNavigateDown Action = "navigate_down" // Move down one item
	ActionPageUp       Action = "page_up"       // Move up one page
	ActionPageDown     Action = "page_down"     // Move down one page
	ActionGoToTop      Action = "go_to_top"     // Go to top
	ActionGoToBottom   Action = "go_to_bottom"  // Go to bottom
	ActionSelect       Action = "select"        // Open/activate the selected item

	// Console actions
	ActionClearConsole Action = "clear_console" // Empty the console pane

	// Curriculum actions
	ActionToggleCurriculum Action = "toggle_curriculum" // Open/close the lesson panel
	ActionNextLesson       Action = "next_lesson"       // Linear next document
	ActionPrevLesson       Action = "prev_lesson"       // Linear previous document
	ActionBackToLessons    Action = "back_to_lessons"   // Leave the viewer for the tree
	ActionCopyCodeBlock    Action = "copy_code_block"   // Open the copy picker

	// Text input actions
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Cancel text input

	// Confirmation actions
	ActionConfirm Action = "confirm" // Accept (y/enter)
	ActionCancel  Action = "cancel"  // Decline (n/esc)

	// Modal actions
	ActionCloseModal Action = "close_modal" // Close current modal
)

// knownActions is the validation whitelist for user overrides.
var knownActions = map[Action]bool{
	ActionQuit: true, ActionQuitForce: true, ActionOpenHelp: true,
	ActionSaveRefresh: true, ActionCreateFile: true, ActionDeleteFile: true,
	ActionCloseTab: true, ActionNextTab: true, ActionPrevTab: true,
	ActionExportZip: true, ActionImportZip: true, ActionToggleSidebar: true,
	ActionSwitchFocus: true, ActionFocusEditor: true, ActionFocusConsole: true,
	ActionNavigateUp: true, ActionNavigateDown: true, ActionPageUp: true,
	ActionPageDown: true, ActionGoToTop: true, ActionGoToBottom: true,
	ActionSelect: true, ActionClearConsole: true, ActionToggleCurriculum: true,
	ActionNextLesson: true, ActionPrevLesson: true, ActionBackToLessons: true,
	ActionCopyCodeBlock: true, ActionTextSubmit: true, ActionTextCancel: true,
	ActionConfirm: true, ActionCancel: true, ActionCloseModal: true,
}

// knownContexts is the set of context names accepted in keybinds.yaml.
var knownContexts = map[Context]bool{
	ContextGlobal: true, ContextNormal: true, ContextFileList: true,
	ContextConsole: true, ContextCurriculum: true, ContextCopyPick: true,
	ContextTextInput: true, ContextConfirm: true, ContextHelp: true,
}
