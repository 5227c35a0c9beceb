// Package preview runs the embedded HTTP server backing the live preview.
// It serves the most recently compiled project document at / and accepts a
// websocket on /__console over which the injected shim relays console
// records from the preview page back into the TUI. Project code executes
// only in the browser tab viewing /; the host process never evaluates it.
package preview

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/studiowebux/minicoder/internal/types"
)

const (
	// RecordBuffer sizes the relay channel between the websocket reader and
	// the TUI. It only absorbs bursts: when it fills, the reader blocks and
	// backpressure reaches the page's socket. No record is ever dropped.
	RecordBuffer = 100

	shutdownTimeout = 2 * time.Second
)

// Server owns the preview endpoint and the console relay.
type Server struct {
	host string
	port int

	httpServer *http.Server

	mu   sync.RWMutex
	doc  string
	subs map[*subscriber]struct{}

	records  chan types.ConsoleRecord
	done     chan struct{}
	stopOnce sync.Once
}

// NewServer creates a preview server bound to localhost on the given port.
func NewServer(port int) *Server {
	return &Server{
		host:    "localhost",
		port:    port,
		subs:    make(map[*subscriber]struct{}),
		records: make(chan types.ConsoleRecord, RecordBuffer),
		done:    make(chan struct{}),
	}
}

// URL returns the address a browser should open.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s:%d/", s.host, s.port)
}

// Records is the relay channel: console records from the preview page in
// strict arrival order.
func (s *Server) Records() <-chan types.ConsoleRecord {
	return s.records
}

// Start begins listening. It returns once the listener is bound so the
// caller can surface bind failures immediately; request serving continues
// in the background.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDocument)
	mux.HandleFunc("/__console", s.handleConsole)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("preview server: %w", err)
	}

	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("preview server error: %v", err)
		}
	}()
	return nil
}

// Stop shuts the server down, closing every preview websocket and releasing
// any relay send blocked on a consumer that stopped draining.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() { close(s.done) })
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Publish swaps the served document and tells connected preview pages to
// reload themselves.
func (s *Server) Publish(doc string) {
	s.mu.Lock()
	s.doc = doc
	subs := make([]*subscriber, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.notifyReload()
	}
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprint(w, doc)
}
