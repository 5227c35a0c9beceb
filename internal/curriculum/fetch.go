package curriculum

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchDocument loads a document node's body on first open and caches it on
// the node. A failed fetch substitutes a synthetic error body and marks the
// node ContentFailed instead of returning an error, so navigation is never
// blocked by one bad lesson. Re-fetching an already loaded node is a no-op;
// a stale response landing after the user navigated away simply overwrites
// the same node's slot (last write wins, keyed by path).
func (l *Loader) FetchDocument(ctx context.Context, node *Node) string {
	if node.Kind != KindDocument {
		return ""
	}
	if node.ContentState == ContentLoaded {
		return node.Content
	}

	body, err := l.fetchBody(ctx, node.Path)
	if err != nil {
		node.Content = fmt.Sprintf("# Error\nFailed to load lesson content from %s", node.Path)
		node.ContentState = ContentFailed
		return node.Content
	}
	node.Content = body
	node.ContentState = ContentLoaded
	return node.Content
}

func (l *Loader) fetchBody(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
