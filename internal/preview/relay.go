package preview

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/studiowebux/minicoder/internal/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The preview page is served by this same server; same-origin only.
	CheckOrigin: func(r *http.Request) bool {
		return r.Header.Get("Origin") == "" || r.Host == hostOf(r.Header.Get("Origin"))
	},
}

func hostOf(origin string) string {
	for _, prefix := range []string{"http://", "https://"} {
		if len(origin) > len(prefix) && origin[:len(prefix)] == prefix {
			return origin[len(prefix):]
		}
	}
	return origin
}

// consoleMessage is the wire shape the shim emits. Anything that does not
// carry type "console" with a known level is cross-origin noise and is
// dropped without a record.
type consoleMessage struct {
	Type  string   `json:"type"`
	Level string   `json:"level"`
	Args  []string `json:"args"`
}

// subscriber is one connected preview page.
type subscriber struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (sub *subscriber) notifyReload() {
	sub.writeMu.Lock()
	defer sub.writeMu.Unlock()
	if err := sub.conn.WriteJSON(map[string]string{"type": "reload"}); err != nil {
		log.Printf("preview reload push failed: %v", err)
	}
}

func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("console relay upgrade failed: %v", err)
		return
	}

	sub := &subscriber{conn: conn}
	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.subs, sub)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.relay(data)
	}
}

// relay decodes one inbound message and forwards it when it matches the
// console-record shape. Every valid record is delivered in arrival order:
// when the buffer fills, the send blocks the websocket reader so
// backpressure reaches the page instead of losing output. The done channel
// unblocks a pending send during shutdown.
func (s *Server) relay(data []byte) {
	var msg consoleMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	if msg.Type != "console" {
		return
	}
	level := types.ConsoleLevel(msg.Level)
	if !types.ValidConsoleLevel(level) {
		return
	}
	select {
	case s.records <- types.ConsoleRecord{Level: level, Args: msg.Args}:
	case <-s.done:
	}
}
