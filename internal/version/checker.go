// Package version asks the project's release feed whether a newer build
// exists. The check is best-effort: callers surface a hint and swallow
// errors.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://api.github.com/repos/studiowebux/minicoder/releases/latest"
	checkTimeout    = 5 * time.Second
)

// Release is a published build.
type Release struct {
	Version string
	URL     string
}

// Checker queries a GitHub-style latest-release endpoint. The zero value is
// not usable; construct with NewChecker. Endpoint and Client are exposed so
// tests can point the checker at a local server.
type Checker struct {
	Endpoint string
	Client   *http.Client
}

func NewChecker() *Checker {
	return &Checker{
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: checkTimeout},
	}
}

// Latest fetches the newest release and reports whether it is ahead of the
// running version.
func (c *Checker) Latest(ctx context.Context, current string) (Release, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return Release{}, false, err
	}
	req.Header.Set("User-Agent", "minicoder/"+current)

	resp, err := c.Client.Do(req)
	if err != nil {
		return Release{}, false, fmt.Errorf("release check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Release{}, false, fmt.Errorf("release check: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Release{}, false, fmt.Errorf("release check: %w", err)
	}

	rel := Release{
		Version: strings.TrimPrefix(payload.TagName, "v"),
		URL:     payload.HTMLURL,
	}
	return rel, Newer(rel.Version, current), nil
}

// Newer reports whether version a is ahead of version b. Versions are read
// as dotted major.minor.patch triplets; missing fields count as zero and
// pre-release or build suffixes are ignored. Unparseable versions are never
// considered newer, so a garbage tag cannot nag the user.
func Newer(a, b string) bool {
	at, ok := triplet(a)
	if !ok {
		return false
	}
	bt, ok := triplet(b)
	if !ok {
		return true
	}
	for i := 0; i < 3; i++ {
		if at[i] != bt[i] {
			return at[i] > bt[i]
		}
	}
	return false
}

// triplet parses "1.2.3", "v1.2", "1.2.3-rc.1" into [major minor patch].
func triplet(s string) ([3]int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if cut := strings.IndexAny(s, "-+"); cut != -1 {
		s = s[:cut]
	}

	var out [3]int
	fields := strings.SplitN(s, ".", 3)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}
