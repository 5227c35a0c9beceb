// Package curriculum discovers a directory tree of markdown lessons by
// crawling static-file-server autoindex pages. Discovery failures become
// error leaves in the returned tree, never errors to the caller, so the
// lesson panel always has something to render.
package curriculum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const fetchTimeout = 15 * time.Second

// Loader crawls directory listings under BaseURL. The zero Client falls
// back to a timeout-bounded default.
type Loader struct {
	BaseURL string
	Client  *http.Client
}

// NewLoader creates a loader for the given base URL (typically something
// like http://localhost:8000/curriculum/).
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: fetchTimeout},
	}
}

func (l *Loader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return &http.Client{Timeout: fetchTimeout}
}

// Load builds the curriculum tree from scratch. It is called every time the
// panel opens; there is no incremental refresh.
func (l *Loader) Load(ctx context.Context) []*Node {
	base := strings.TrimSpace(l.BaseURL)
	if base == "" || !isHTTP(base) {
		return []*Node{{
			Kind:    KindError,
			Message: "Server Required",
			Detail:  "Lessons are loaded from a web server directory listing. Start a local server (e.g. http://localhost:8000) and point --curriculum at it.",
		}}
	}
	return l.loadDir(ctx, ensureTrailingSlash(base))
}

func (l *Loader) loadDir(ctx context.Context, dir string) []*Node {
	links, err := l.fetchListing(ctx, dir)
	if err != nil {
		return []*Node{{
			Kind:    KindError,
			Message: "Load Error",
			Detail:  fmt.Sprintf("Failed to read the lesson directory listing: %v. Make sure the server is running.", err),
		}}
	}
	if len(links) == 0 {
		return []*Node{{
			Kind:    KindError,
			Message: "No Lessons Found",
			Detail:  "The curriculum folder is empty or couldn't be indexed.",
		}}
	}

	var tree []*Node
	for _, link := range links {
		link = l.trimListingHref(link)
		full := dir + link

		if strings.HasSuffix(link, "/") {
			children := l.loadDir(ctx, full)
			if onlyErrors(children) {
				continue
			}
			tree = append(tree, &Node{
				Kind:     KindFolder,
				Name:     cleanName(strings.TrimSuffix(link, "/")),
				Children: children,
			})
		} else if isLessonFile(link) {
			tree = append(tree, &Node{
				Kind:  KindDocument,
				Title: cleanTitle(link),
				Path:  full,
			})
		}
	}
	if len(tree) == 0 {
		return []*Node{{
			Kind:    KindError,
			Message: "No Lessons Found",
			Detail:  "The curriculum folder contains no markdown lessons.",
		}}
	}
	return tree
}

// fetchListing GETs an autoindex page and extracts usable anchor targets:
// query-string links and self/parent navigation are excluded.
func (l *Loader) fetchListing(ctx context.Context, dir string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dir, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return extractLinks(resp.Body)
}

// extractLinks walks the listing HTML and collects href attributes of
// anchor elements, applying the exclusion rules.
func extractLinks(r io.Reader) ([]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if usableHref(attr.Val) {
					links = append(links, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return links, nil
}

func usableHref(href string) bool {
	if href == "" || strings.HasPrefix(href, "?") {
		return false
	}
	if href == "../" || href == "./" || href == ".." || href == "." {
		return false
	}
	return true
}

// trimListingHref reduces an absolute listing href to a path relative to
// the crawl base. Some autoindex implementations emit absolute paths.
func (l *Loader) trimListingHref(href string) string {
	if !strings.HasPrefix(href, "/") {
		return href
	}
	if u, err := url.Parse(l.BaseURL); err == nil {
		basePath := ensureTrailingSlash(u.Path)
		if strings.HasPrefix(href, basePath) {
			return strings.TrimPrefix(href, basePath)
		}
	}
	return strings.TrimPrefix(href, "/")
}

var ordinalPrefix = regexp.MustCompile(`^[0-9]+-`)

// cleanName turns a directory segment into a display name: one leading
// ordinal prefix stripped, dashes become spaces.
func cleanName(segment string) string {
	segment = ordinalPrefix.ReplaceAllString(segment, "")
	return strings.ReplaceAll(segment, "-", " ")
}

var lessonExt = regexp.MustCompile(`(?i)\.(md|dm)$`)

func cleanTitle(file string) string {
	return cleanName(lessonExt.ReplaceAllString(file, ""))
}

func isLessonFile(link string) bool {
	return lessonExt.MatchString(link)
}

func isHTTP(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func onlyErrors(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Kind != KindError {
			return false
		}
	}
	return true
}
