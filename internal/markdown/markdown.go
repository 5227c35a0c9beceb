// Package markdown renders lesson documents for the curriculum viewer and
// extracts their fenced code blocks for the copy-to-clipboard picker.
package markdown

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
)

// Renderer renders lesson markdown to ANSI at a given wrap width.
type Renderer struct {
	width int
	tr    *glamour.TermRenderer
}

// NewRenderer builds a renderer wrapping at width columns.
func NewRenderer(width int) (*Renderer, error) {
	if width < 20 {
		width = 20
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{width: width, tr: tr}, nil
}

// Width returns the wrap width the renderer was built for, so the viewer
// can rebuild it on window resize.
func (r *Renderer) Width() int { return r.width }

// Render converts lesson markdown to ANSI-styled terminal text. On failure
// the raw markdown is returned so the lesson is still readable.
func (r *Renderer) Render(source string) string {
	out, err := r.tr.Render(source)
	if err != nil {
		return source
	}
	return out
}

// CodeBlock is one fenced code block of a lesson, in document order.
type CodeBlock struct {
	Language string
	Code     string
}

// ExtractCodeBlocks returns every fenced code block in the document, in
// order, with the fence's info string as the language. Unterminated fences
// run to the end of the document.
func ExtractCodeBlocks(source string) []CodeBlock {
	var blocks []CodeBlock
	var current *CodeBlock

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if current == nil {
				current = &CodeBlock{Language: strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))}
			} else {
				current.Code = strings.TrimSuffix(current.Code, "\n")
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}
		if current != nil {
			current.Code += line + "\n"
		}
	}
	if current != nil {
		current.Code = strings.TrimSuffix(current.Code, "\n")
		blocks = append(blocks, *current)
	}
	return blocks
}

// Highlight colors a code block for the copy picker using chroma's terminal
// formatter. Unknown languages fall back to the plain lexer; any failure
// returns the code untouched.
func Highlight(block CodeBlock) string {
	lexer := lexers.Get(block.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return block.Code
	}

	iterator, err := lexer.Tokenise(nil, block.Code)
	if err != nil {
		return block.Code
	}
	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return block.Code
	}
	return sb.String()
}
