package curriculum

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// autoindex builds a minimal directory-listing page from hrefs.
func autoindex(hrefs ...string) string {
	page := "<html><body><h1>Index of /</h1><ul>"
	for _, h := range hrefs {
		page += fmt.Sprintf(`<li><a href="%s">%s</a></li>`, h, h)
	}
	return page + "</ul></body></html>"
}

func newTestServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoad_NoServerContext(t *testing.T) {
	for _, base := range []string{"", "file:///lessons", "curriculum/"} {
		l := NewLoader(base)
		tree := l.Load(context.Background())
		if len(tree) != 1 || tree[0].Kind != KindError {
			t.Fatalf("base %q: expected a single error leaf, got %+v", base, tree)
		}
		if tree[0].Message != "Server Required" {
			t.Errorf("base %q: expected Server Required, got %q", base, tree[0].Message)
		}
	}
}

func TestLoad_ListingFetchFailure(t *testing.T) {
	srv := newTestServer(t, map[string]string{})
	l := NewLoader(srv.URL + "/curriculum/")

	tree := l.Load(context.Background())
	if len(tree) != 1 || tree[0].Kind != KindError || tree[0].Message != "Load Error" {
		t.Fatalf("expected a single Load Error leaf, got %+v", tree)
	}
}

func TestLoad_EmptyListing(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/curriculum/": autoindex("../", "?sort=name"),
	})
	l := NewLoader(srv.URL + "/curriculum/")

	tree := l.Load(context.Background())
	if len(tree) != 1 || tree[0].Kind != KindError || tree[0].Message != "No Lessons Found" {
		t.Fatalf("expected a single No Lessons Found leaf, got %+v", tree)
	}
}

func TestLoad_ListingScenario(t *testing.T) {
	// Listing returns ["a.md", "sub/", "?sort=name"]: the document is kept,
	// the empty subfolder is omitted, the query link is excluded entirely.
	srv := newTestServer(t, map[string]string{
		"/curriculum/":     autoindex("a.md", "sub/", "?sort=name"),
		"/curriculum/sub/": autoindex(),
	})
	l := NewLoader(srv.URL + "/curriculum/")

	tree := l.Load(context.Background())
	if len(tree) != 1 {
		t.Fatalf("expected a single node, got %d: %+v", len(tree), tree)
	}
	doc := tree[0]
	if doc.Kind != KindDocument || doc.Title != "a" {
		t.Errorf("expected document titled %q, got kind=%v title=%q", "a", doc.Kind, doc.Title)
	}
	if want := srv.URL + "/curriculum/a.md"; doc.Path != want {
		t.Errorf("expected path %q, got %q", want, doc.Path)
	}
	if doc.ContentState != ContentUnloaded {
		t.Error("document content must start unloaded")
	}
}

func TestLoad_NestedFoldersAndNameCleaning(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/curriculum/":              autoindex("01-the-basics/", "99-extra-stuff/", "README.txt"),
		"/curriculum/01-the-basics/": autoindex("01-hello-world.md", "02-second-steps.md"),
		"/curriculum/99-extra-stuff/": autoindex("bonus.dm"),
	})
	l := NewLoader(srv.URL + "/curriculum/")

	tree := l.Load(context.Background())
	if len(tree) != 2 {
		t.Fatalf("expected 2 folders (non-lesson file ignored), got %d", len(tree))
	}
	if tree[0].Kind != KindFolder || tree[0].Name != "the basics" {
		t.Errorf("expected folder %q, got %q", "the basics", tree[0].Name)
	}
	if len(tree[0].Children) != 2 {
		t.Fatalf("expected 2 lessons in the first folder, got %d", len(tree[0].Children))
	}
	if got := tree[0].Children[0].Title; got != "hello world" {
		t.Errorf("expected cleaned title %q, got %q", "hello world", got)
	}
	if tree[1].Name != "extra stuff" {
		t.Errorf("expected folder %q, got %q", "extra stuff", tree[1].Name)
	}
	if got := tree[1].Children[0].Title; got != "bonus" {
		t.Errorf(".dm lessons should be included, got title %q", got)
	}
}

func TestLoad_AbsoluteHrefsStripBasePrefix(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/curriculum/": autoindex("/curriculum/a.md"),
	})
	l := NewLoader(srv.URL + "/curriculum/")

	tree := l.Load(context.Background())
	if len(tree) != 1 || tree[0].Kind != KindDocument {
		t.Fatalf("expected one document, got %+v", tree)
	}
	if want := srv.URL + "/curriculum/a.md"; tree[0].Path != want {
		t.Errorf("expected %q, got %q", want, tree[0].Path)
	}
}

func TestFlatten_DepthFirstOrder(t *testing.T) {
	d1 := &Node{Kind: KindDocument, Title: "d1"}
	d2 := &Node{Kind: KindDocument, Title: "d2"}
	d3 := &Node{Kind: KindDocument, Title: "d3"}
	tree := []*Node{
		{Kind: KindFolder, Name: "F1", Children: []*Node{d1, d2}},
		{Kind: KindFolder, Name: "F2", Children: []*Node{d3}},
		{Kind: KindError, Message: "ignored"},
	}

	flat := Flatten(tree)
	if len(flat) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(flat))
	}
	for i, want := range []string{"d1", "d2", "d3"} {
		if flat[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, flat[i].Title)
		}
	}
}

func TestFetchDocument_LazyLoadAndCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, "# Lesson One")
	}))
	t.Cleanup(srv.Close)

	l := NewLoader(srv.URL + "/")
	node := &Node{Kind: KindDocument, Title: "one", Path: srv.URL + "/one.md"}

	body := l.FetchDocument(context.Background(), node)
	if body != "# Lesson One" {
		t.Errorf("unexpected body %q", body)
	}
	if node.ContentState != ContentLoaded {
		t.Error("node should be marked loaded")
	}

	l.FetchDocument(context.Background(), node)
	if hits != 1 {
		t.Errorf("loaded content must be cached, server hit %d times", hits)
	}
}

func TestFetchDocument_FailureSubstitutesErrorBody(t *testing.T) {
	l := NewLoader("http://127.0.0.1:1/") // nothing listens here
	node := &Node{Kind: KindDocument, Title: "bad", Path: "http://127.0.0.1:1/bad.md"}

	body := l.FetchDocument(context.Background(), node)
	if node.ContentState != ContentFailed {
		t.Error("failed fetch must mark the node ContentFailed")
	}
	if body == "" || node.Content == "" {
		t.Error("failed fetch must substitute a synthetic error body")
	}
}
