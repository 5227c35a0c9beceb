package types

import "strings"

// Language identifies the editing language of a virtual file, derived from
// its extension.
type Language string

const (
	LangHTML       Language = "html"
	LangCSS        Language = "css"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJSON       Language = "json"
	LangMarkdown   Language = "markdown"
	LangPlainText  Language = "plaintext"
)

// Conventional entry point file names. The preview compiler treats these as
// the primary HTML/CSS/JS inputs; everything else is auxiliary.
const (
	EntryHTML = "index.html"
	EntryCSS  = "style.css"
	EntryJS   = "script.js"
)

// VirtualFile is an in-memory named text artifact. It is not backed by the
// host filesystem; the workspace owns its lifecycle.
type VirtualFile struct {
	Name     string   `json:"name" yaml:"name"`
	Language Language `json:"language" yaml:"language"`
	Content  string   `json:"content" yaml:"content"`
	// Dirty marks a file whose editor buffer has diverged from the last
	// committed content.
	Dirty bool `json:"dirty,omitempty" yaml:"dirty,omitempty"`
}

// Ext returns the lowercased extension of a file name, without the dot.
// Returns "" when the name has no dot-delimited extension.
func Ext(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

var langByExt = map[string]Language{
	"html": LangHTML,
	"css":  LangCSS,
	"js":   LangJavaScript,
	"ts":   LangTypeScript,
	"json": LangJSON,
	"md":   LangMarkdown,
}

// LanguageForName derives the language of a file from its extension.
// Unrecognized extensions map to plain text.
func LanguageForName(name string) Language {
	if lang, ok := langByExt[Ext(name)]; ok {
		return lang
	}
	return LangPlainText
}

// ConsoleLevel is the severity of a console record.
type ConsoleLevel string

const (
	LevelLog   ConsoleLevel = "log"
	LevelWarn  ConsoleLevel = "warn"
	LevelError ConsoleLevel = "error"
)

// ValidConsoleLevel reports whether l is one of the three levels the preview
// shim is allowed to emit.
func ValidConsoleLevel(l ConsoleLevel) bool {
	return l == LevelLog || l == LevelWarn || l == LevelError
}

// ConsoleRecord is a single structured log entry relayed from the preview
// page. Records are transient: appended to the console pane in arrival order
// and discarded on clear.
type ConsoleRecord struct {
	Level ConsoleLevel `json:"level"`
	Args  []string     `json:"args"`
}

// Text joins the record arguments the way the console pane displays them.
func (r ConsoleRecord) Text() string {
	return strings.Join(r.Args, " ")
}
