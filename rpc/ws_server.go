package rpc

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Integra-layer/chain-id-card/events"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type registration struct {
	conn  *websocket.Conn
	hello WSMessage
}

// WebSocketHub fans view-state events out to websocket clients. All writes
// happen on the Run goroutine.
type WebSocketHub struct {
	clients    map[*websocket.Conn]bool
	register   chan registration
	unregister chan *websocket.Conn
	broadcast  chan WSMessage
	quit       chan struct{}
	logger     zerolog.Logger
}

func NewWebSocketHub(logger zerolog.Logger) *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan registration),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan WSMessage, 64),
		quit:       make(chan struct{}),
		logger:     logger,
	}
}

func (h *WebSocketHub) Run() {
	for {
		select {
		case reg := <-h.register:
			if err := reg.conn.WriteJSON(reg.hello); err != nil {
				reg.conn.Close()
				continue
			}
			h.clients[reg.conn] = true

		case conn := <-h.unregister:
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
					h.logger.Debug().Err(err).Msg("dropping websocket client")
					delete(h.clients, c)
					c.Close()
				}
			}

		case <-h.quit:
			for c := range h.clients {
				c.Close()
			}
			h.clients = make(map[*websocket.Conn]bool)
			return
		}
	}
}

func (h *WebSocketHub) Stop() {
	close(h.quit)
}

func (h *WebSocketHub) Broadcast(msg WSMessage) {
	select {
	case h.broadcast <- msg:
	case <-h.quit:
	}
}

// Relay forwards every bus event to the hub until the returned function is
// called. The subscription is in place when Relay returns.
func (h *WebSocketHub) Relay(bus *events.EventBus) func() {
	ch, cancel := bus.Subscribe()
	go func() {
		for ev := range ch {
			h.Broadcast(WSMessage{Type: string(ev.Kind), Data: ev})
		}
	}()
	return cancel
}

// HandleWS upgrades the connection and registers it with the hub. hello is
// the first message the client receives.
func (h *WebSocketHub) HandleWS(w http.ResponseWriter, r *http.Request, hello WSMessage) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	select {
	case h.register <- registration{conn: conn, hello: hello}:
	case <-h.quit:
		conn.Close()
		return
	}

	// read until the client goes away so close frames are processed
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			select {
			case h.unregister <- conn:
			case <-h.quit:
			}
			return
		}
	}
}
