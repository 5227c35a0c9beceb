package workspace

// Tabs returns the open tab names in insertion order.
func (ws *Workspace) Tabs() []string {
	out := make([]string, len(ws.tabs))
	copy(out, ws.tabs)
	return out
}

// Active returns the active file name, or "" when no tab is active.
func (ws *Workspace) Active() string { return ws.active }

// IsOpen reports whether the named file has a tab.
func (ws *Workspace) IsOpen(name string) bool {
	for _, t := range ws.tabs {
		if t == name {
			return true
		}
	}
	return false
}

// Open makes the named file active, appending a tab for it if it does not
// have one yet. Opening an unknown file is a no-op.
func (ws *Workspace) Open(name string) {
	if _, ok := ws.files[name]; !ok {
		return
	}
	if !ws.IsOpen(name) {
		ws.tabs = append(ws.tabs, name)
	}
	ws.active = name
}

// Close removes the tab for the named file. When the active tab closes and
// others remain, the tab now occupying the same positional index is
// activated (clamped to the new length): the right neighbor, or the new last
// tab if the closed one was rightmost. When the last tab closes the
// selection becomes empty and the caller swaps in its placeholder buffer.
func (ws *Workspace) Close(name string) {
	idx := -1
	for i, t := range ws.tabs {
		if t == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	ws.tabs = append(ws.tabs[:idx], ws.tabs[idx+1:]...)

	if ws.active != name {
		return
	}
	if len(ws.tabs) == 0 {
		ws.active = ""
		return
	}
	next := idx
	if next > len(ws.tabs)-1 {
		next = len(ws.tabs) - 1
	}
	ws.Open(ws.tabs[next])
}
