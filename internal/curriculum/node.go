package curriculum

// Kind discriminates the curriculum tree variants.
type Kind int

const (
	KindFolder Kind = iota
	KindDocument
	KindError
)

// ContentState tracks the lazy-loaded body of a document node. "Not yet
// fetched" and "fetch failed" are distinct states so the viewer can retry
// the former and explain the latter.
type ContentState int

const (
	ContentUnloaded ContentState = iota
	ContentLoaded
	ContentFailed
)

// Node is one vertex of the curriculum tree: a folder of lessons, a lesson
// document, or an error leaf standing in for a failed discovery step. The
// loader never raises errors past its boundary; the caller always receives
// a renderable tree.
type Node struct {
	Kind Kind

	// Folder
	Name     string
	Children []*Node

	// Document
	Title        string
	Path         string
	Content      string
	ContentState ContentState

	// Error
	Message string
	Detail  string
}

// Flatten produces the ordered document sequence used for linear prev/next
// navigation: depth-first, children in listing order. Folder and error
// nodes are not part of the sequence.
func Flatten(tree []*Node) []*Node {
	var docs []*Node
	for _, node := range tree {
		switch node.Kind {
		case KindDocument:
			docs = append(docs, node)
		case KindFolder:
			docs = append(docs, Flatten(node.Children)...)
		}
	}
	return docs
}
