package compiler

import (
	"fmt"
	"strings"

	"github.com/studiowebux/minicoder/internal/types"
)

// Compile assembles a single self-contained HTML document from a committed
// workspace snapshot. It is a pure function of its input: the same snapshot
// always produces a byte-identical document.
//
// Layout: the head carries one style block with the primary CSS followed by
// every auxiliary CSS file in store order, each under a /* name */ header.
// The body carries the primary HTML fragment, then the instrumentation shim,
// then the primary JS followed by every auxiliary JS file under // name
// headers. Missing entry files contribute empty strings.
//
// The document is only ever served to the preview page. Project code runs
// there and nowhere else; the host process never evaluates it.
func Compile(files []types.VirtualFile) string {
	var html, css, js string
	var extraStyles, extraScripts strings.Builder

	for _, f := range files {
		switch f.Name {
		case types.EntryHTML:
			html = f.Content
			continue
		case types.EntryCSS:
			css = f.Content
			continue
		case types.EntryJS:
			js = f.Content
			continue
		}
		switch f.Language {
		case types.LangCSS:
			fmt.Fprintf(&extraStyles, "\n/* %s */\n%s", f.Name, f.Content)
		case types.LangJavaScript:
			fmt.Fprintf(&extraScripts, "\n// %s\n%s", f.Name, f.Content)
		}
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n    <meta charset=\"UTF-8\">\n    <style>")
	doc.WriteString(css)
	doc.WriteString(extraStyles.String())
	doc.WriteString("</style>\n</head>\n<body>\n    ")
	doc.WriteString(html)
	doc.WriteString("\n    <script>")
	doc.WriteString(consoleShim)
	doc.WriteString("</script>\n    <script>")
	doc.WriteString(js)
	doc.WriteString(extraScripts.String())
	doc.WriteString("</script>\n</body>\n</html>")
	return doc.String()
}
