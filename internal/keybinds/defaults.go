package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalBindings(r)
	registerFileListBindings(r)
	registerConsoleBindings(r)
	registerCurriculumBindings(r)
	registerCopyPickBindings(r)
	registerTextInputBindings(r)
	registerConfirmBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+s", ActionSaveRefresh)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)
}

// registerNormalBindings covers the editing surface. Printable keys go to
// the editor buffer, so everything here is a chord.
func registerNormalBindings(r *Registry) {
	r.Register(ContextNormal, "tab", ActionSwitchFocus)
	r.Register(ContextNormal, "ctrl+n", ActionCreateFile)
	r.Register(ContextNormal, "ctrl+w", ActionCloseTab)
	r.Register(ContextNormal, "ctrl+right", ActionNextTab)
	r.Register(ContextNormal, "ctrl+left", ActionPrevTab)
	r.Register(ContextNormal, "ctrl+e", ActionExportZip)
	r.Register(ContextNormal, "ctrl+o", ActionImportZip)
	r.Register(ContextNormal, "ctrl+b", ActionToggleSidebar)
	r.Register(ContextNormal, "ctrl+l", ActionToggleCurriculum)
	r.Register(ContextNormal, "ctrl+g", ActionFocusConsole)
}

// registerFileListBindings covers the file sidebar
func registerFileListBindings(r *Registry) {
	r.Register(ContextFileList, "q", ActionQuit)
	r.Register(ContextFileList, "tab", ActionSwitchFocus)
	r.RegisterMultiple(ContextFileList, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextFileList, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextFileList, []string{"enter", "l"}, ActionSelect)
	r.Register(ContextFileList, "n", ActionCreateFile)
	r.RegisterMultiple(ContextFileList, []string{"d", "delete"}, ActionDeleteFile)
	r.Register(ContextFileList, "e", ActionExportZip)
	r.Register(ContextFileList, "i", ActionImportZip)
	r.Register(ContextFileList, "b", ActionToggleSidebar)
	r.Register(ContextFileList, "L", ActionToggleCurriculum)
	r.Register(ContextFileList, "c", ActionFocusConsole)
}

// registerConsoleBindings covers the console pane
func registerConsoleBindings(r *Registry) {
	r.Register(ContextConsole, "q", ActionQuit)
	r.Register(ContextConsole, "tab", ActionSwitchFocus)
	r.RegisterMultiple(ContextConsole, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextConsole, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextConsole, "pgup", ActionPageUp)
	r.Register(ContextConsole, "pgdown", ActionPageDown)
	r.Register(ContextConsole, "home", ActionGoToTop)
	r.Register(ContextConsole, "end", ActionGoToBottom)
	r.RegisterMultiple(ContextConsole, []string{"x", "ctrl+k"}, ActionClearConsole)
}

// registerCurriculumBindings covers the lesson tree and the lesson viewer
func registerCurriculumBindings(r *Registry) {
	r.Register(ContextCurriculum, "q", ActionQuit)
	r.Register(ContextCurriculum, "tab", ActionSwitchFocus)
	r.RegisterMultiple(ContextCurriculum, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextCurriculum, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextCurriculum, "pgup", ActionPageUp)
	r.Register(ContextCurriculum, "pgdown", ActionPageDown)
	r.Register(ContextCurriculum, "home", ActionGoToTop)
	r.Register(ContextCurriculum, "end", ActionGoToBottom)
	r.RegisterMultiple(ContextCurriculum, []string{"enter", "l"}, ActionSelect)
	r.RegisterMultiple(ContextCurriculum, []string{"right", "n"}, ActionNextLesson)
	r.RegisterMultiple(ContextCurriculum, []string{"left", "p"}, ActionPrevLesson)
	r.RegisterMultiple(ContextCurriculum, []string{"esc", "backspace"}, ActionBackToLessons)
	r.Register(ContextCurriculum, "y", ActionCopyCodeBlock)
	r.Register(ContextCurriculum, "L", ActionToggleCurriculum)
}

// registerCopyPickBindings covers the code-block copy picker
func registerCopyPickBindings(r *Registry) {
	r.RegisterMultiple(ContextCopyPick, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextCopyPick, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextCopyPick, []string{"enter", "y"}, ActionSelect)
	r.RegisterMultiple(ContextCopyPick, []string{"esc", "q"}, ActionCloseModal)
}

// registerTextInputBindings covers text input prompts
func registerTextInputBindings(r *Registry) {
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
}

// registerConfirmBindings covers confirmation dialogs
func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}

// registerHelpBindings covers the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "f1"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
}
