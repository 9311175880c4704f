// Package web serves a board to browsers: an index page with a canvas
// view and a websocket that streams grid snapshots while accepting
// toggle/playpause/reset events. It is a second display driver over
// the same board surface the GUI uses.
package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"lifegrid/internal/board"
	"lifegrid/internal/core"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer; events are tiny.
	maxMessageSize = 512
)

// Server hosts one board behind an HTTP endpoint. A single run loop
// goroutine owns the board: connection readers forward decoded events
// into it over a channel, so ticks and input events never interleave.
type Server struct {
	board    *board.Board
	interval time.Duration

	events chan Event
	joins  chan *client
	parts  chan *client

	upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer wraps the board in a web driver ticking at the given rate.
func NewServer(b *board.Board, tps int) *Server {
	if tps <= 0 {
		tps = 40
	}
	return &Server{
		board:    b,
		interval: time.Second / time.Duration(tps),
		events:   make(chan Event, 16),
		joins:    make(chan *client),
		parts:    make(chan *client),
	}
}

// ListenAndServe starts the run loop and blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	go s.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWebsocket)
	return http.ListenAndServe(addr, mux)
}

// run owns the board. Every branch below is the only code path that
// mutates it, which is what keeps the event surface serialized.
func (s *Server) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	clients := map[*client]struct{}{}
	for {
		select {
		case <-ticker.C:
			s.apply(Event{Type: EventTick})
		case ev := <-s.events:
			s.apply(ev)
		case c := <-s.joins:
			clients[c] = struct{}{}
		case c := <-s.parts:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.send)
			}
			continue
		}

		if len(clients) == 0 {
			continue
		}
		payload, err := json.Marshal(s.snapshot())
		if err != nil {
			log.Printf("web: encode snapshot: %v", err)
			continue
		}
		for c := range clients {
			select {
			case c.send <- payload:
			default:
				// Slow client; drop the frame rather than stall the loop.
			}
		}
	}
}

// apply dispatches one event onto the board.
func (s *Server) apply(ev Event) {
	switch ev.Type {
	case EventTick:
		s.board.Tick()
	case EventToggle:
		if err := s.board.ToggleCell(ev.X, ev.Y); err != nil {
			if errors.Is(err, core.ErrOutOfBounds) {
				log.Printf("web: toggle (%d,%d): out of bounds", ev.X, ev.Y)
				return
			}
			log.Printf("web: toggle (%d,%d): %v", ev.X, ev.Y, err)
		}
	case EventPlayPause:
		s.board.ToggleRunning()
	case EventReset:
		s.board.Reset()
	default:
		log.Printf("web: unknown event type %q", ev.Type)
	}
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("web: upgrade:", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 8)}
	s.joins <- c
	go c.writePump()
	s.readPump(c)
}

// readPump decodes events from one peer and feeds them to the run
// loop. It returns when the connection drops.
func (s *Server) readPump(c *client) {
	defer func() {
		s.parts <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var ev Event
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("web: read:", err)
			}
			return
		}
		if ev.Type == EventTick {
			// Peers do not drive the clock.
			continue
		}
		s.events <- ev
	}
}

// writePump pushes snapshots and keepalive pings to one peer.
func (c *client) writePump() {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
