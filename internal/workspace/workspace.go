package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/studiowebux/minicoder/internal/types"
)

// Error values surfaced to the user at the point of the offending action.
// None of them leaves the workspace mutated.
var (
	ErrDuplicateName = errors.New("file already exists")
	ErrInvalidName   = errors.New("file name needs an extension (e.g. .js, .css)")
	ErrLastFile      = errors.New("cannot delete the last file")
	ErrUnknownFile   = errors.New("no such file")
)

// Workspace owns the virtual file table, the open tab set and the active
// selection. All mutation goes through its methods; callers hold a single
// instance and never share it across goroutines (the TUI update loop is the
// only writer).
type Workspace struct {
	order []string
	files map[string]*types.VirtualFile

	tabs   []string
	active string
}

// New creates a workspace seeded with the starter project: the three entry
// point files, all committed, all open, index.html active.
func New() *Workspace {
	ws := Empty()
	for _, f := range seedFiles() {
		ws.order = append(ws.order, f.Name)
		ws.files[f.Name] = f
		ws.tabs = append(ws.tabs, f.Name)
	}
	ws.active = types.EntryHTML
	return ws
}

// Empty creates a workspace with no files, no tabs and no selection.
// Used by tests and as the base for archive imports.
func Empty() *Workspace {
	return &Workspace{files: make(map[string]*types.VirtualFile)}
}

// Names returns the file names in store iteration order.
func (ws *Workspace) Names() []string {
	out := make([]string, len(ws.order))
	copy(out, ws.order)
	return out
}

// Len returns the number of files in the store.
func (ws *Workspace) Len() int { return len(ws.order) }

// AnyDirty reports whether any file's editor content has diverged from its
// committed content.
func (ws *Workspace) AnyDirty() bool {
	for _, f := range ws.files {
		if f.Dirty {
			return true
		}
	}
	return false
}

// Get returns a copy of the named file.
func (ws *Workspace) Get(name string) (types.VirtualFile, bool) {
	f, ok := ws.files[name]
	if !ok {
		return types.VirtualFile{}, false
	}
	return *f, true
}

// Snapshot returns copies of every file in store iteration order. The
// preview compiler and archive exporter work off snapshots so they can never
// observe a half-applied mutation.
func (ws *Workspace) Snapshot() []types.VirtualFile {
	out := make([]types.VirtualFile, 0, len(ws.order))
	for _, name := range ws.order {
		out = append(out, *ws.files[name])
	}
	return out
}

// Add creates a new empty-or-seeded file. The name must be unique and carry
// a dot-delimited extension; the language is derived from it.
func (ws *Workspace) Add(name, content string) error {
	name = strings.TrimSpace(name)
	if _, exists := ws.files[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if types.Ext(name) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	ws.order = append(ws.order, name)
	ws.files[name] = &types.VirtualFile{
		Name:     name,
		Language: types.LanguageForName(name),
		Content:  content,
	}
	return nil
}

// Commit overwrites the stored content and clears the dirty flag. The caller
// is responsible for recompiling the preview afterwards.
func (ws *Workspace) Commit(name, content string) error {
	f, ok := ws.files[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFile, name)
	}
	f.Content = content
	f.Dirty = false
	return nil
}

// MarkDirty flags the file when the editor buffer has diverged from the
// committed content. Called on every live edit; equal content never sets the
// flag, so an edit-then-undo sequence stays clean until the values actually
// differ.
func (ws *Workspace) MarkDirty(name, editorContent string) {
	f, ok := ws.files[name]
	if !ok {
		return
	}
	if f.Content != editorContent {
		f.Dirty = true
	}
}

// Delete removes a file from the store, the tab set and, when it was active,
// re-selects: first remaining open tab, else first remaining file. Deleting
// the sole remaining file fails with ErrLastFile.
func (ws *Workspace) Delete(name string) error {
	if _, ok := ws.files[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFile, name)
	}
	if len(ws.order) <= 1 {
		return ErrLastFile
	}

	delete(ws.files, name)
	ws.order = remove(ws.order, name)
	ws.tabs = remove(ws.tabs, name)

	if ws.active == name {
		if len(ws.tabs) > 0 {
			ws.Open(ws.tabs[0])
		} else {
			ws.Open(ws.order[0])
		}
	}
	return nil
}

// Reset atomically replaces the whole store with the given files (archive
// import). Tabs and selection are cleared; the caller re-opens the entry
// point afterwards. Files with an empty or extensionless name are rejected
// upstream by the archive decoder, so Reset trusts its input.
func (ws *Workspace) Reset(files []types.VirtualFile) {
	ws.order = ws.order[:0]
	ws.files = make(map[string]*types.VirtualFile, len(files))
	ws.tabs = nil
	ws.active = ""
	for i := range files {
		f := files[i]
		f.Dirty = false
		if _, dup := ws.files[f.Name]; dup {
			continue
		}
		ws.order = append(ws.order, f.Name)
		ws.files[f.Name] = &f
	}
}

func remove(s []string, name string) []string {
	for i, v := range s {
		if v == name {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
