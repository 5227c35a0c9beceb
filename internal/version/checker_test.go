package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewer(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0.2.0", "0.1.0", true},
		{"0.1.0", "0.2.0", false},
		{"1.0.0", "0.9.9", true},
		{"0.1.0", "0.1.0", false},
		{"v0.2.0", "0.1.0", true},
		{"0.2", "0.1.9", true},        // missing patch counts as zero
		{"0.1", "0.1.0", false},       // equal after padding
		{"0.2.0-rc.1", "0.1.0", true}, // pre-release suffix ignored
		{"0.1.0+build5", "0.1.0", false},
		{"garbage", "0.1.0", false}, // unparseable latest never nags
		{"0.2.0", "dev", true},      // unparseable current is always behind
	}
	for _, tt := range tests {
		if got := Newer(tt.a, tt.b); got != tt.want {
			t.Errorf("Newer(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLatest_ReportsUpdate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "minicoder/0.1.0" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte(`{"tag_name":"v0.2.0","html_url":"https://example.com/v0.2.0"}`))
	}))
	defer ts.Close()

	c := NewChecker()
	c.Endpoint = ts.URL

	rel, newer, err := c.Latest(context.Background(), "0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if !newer {
		t.Error("0.2.0 should be reported as newer than 0.1.0")
	}
	if rel.Version != "0.2.0" {
		t.Errorf("Version = %q, want 0.2.0", rel.Version)
	}
	if rel.URL != "https://example.com/v0.2.0" {
		t.Errorf("URL = %q", rel.URL)
	}
}

func TestLatest_UpToDate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v0.1.0","html_url":"https://example.com/v0.1.0"}`))
	}))
	defer ts.Close()

	c := NewChecker()
	c.Endpoint = ts.URL

	_, newer, err := c.Latest(context.Background(), "0.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if newer {
		t.Error("equal versions must not report an update")
	}
}

func TestLatest_BadStatusIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden) // rate limited
	}))
	defer ts.Close()

	c := NewChecker()
	c.Endpoint = ts.URL

	if _, _, err := c.Latest(context.Background(), "0.1.0"); err == nil {
		t.Error("non-200 response should surface as an error")
	}
}
