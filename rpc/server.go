package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Integra-layer/chain-id-card/card"
	"github.com/Integra-layer/chain-id-card/clipboard"
	"github.com/Integra-layer/chain-id-card/events"
	"github.com/Integra-layer/chain-id-card/params"
	"github.com/Integra-layer/chain-id-card/state"
)

// Server exposes the card over JSON-RPC and pushes view-state events to
// websocket clients.
type Server struct {
	registry *params.Registry
	view     *state.Controller
	copies   *clipboard.Board
	bus      *events.EventBus
	hub      *WebSocketHub
	targets  map[string]struct{}
	logger   zerolog.Logger

	stopRelay func()
	http      *http.Server
}

func NewServer(registry *params.Registry, view *state.Controller, copies *clipboard.Board, bus *events.EventBus, logger zerolog.Logger) *Server {
	logger = logger.With().Str("component", "rpc").Logger()

	targets := make(map[string]struct{})
	for _, n := range registry.Networks() {
		for t := range card.CopyTargets(card.Render(registry.Get(n))) {
			targets[t] = struct{}{}
		}
	}

	return &Server{
		registry: registry,
		view:     view,
		copies:   copies,
		bus:      bus,
		hub:      NewWebSocketHub(logger),
		targets:  targets,
		logger:   logger,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// JSON-RPC
	mux.HandleFunc("/", s.HandleJSONRPC)

	// view-state events
	mux.HandleFunc("/ws", s.handleWS)

	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.hub.HandleWS(w, r, WSMessage{Type: "state", Data: s.view.State()})
}

// Run starts the websocket hub and relays bus events to it. Start calls it;
// tests that mount Handler directly call it themselves.
func (s *Server) Run() {
	go s.hub.Run()
	s.stopRelay = s.hub.Relay(s.bus)
}

// Start binds port, then runs the hub and serves in the background. A port
// that cannot be bound is reported before anything starts.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", addr, err)
	}

	s.Run()
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("RPC server listening")
	go func() {
		err := s.http.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("RPC server stopped")
		}
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.stopRelay != nil {
		s.stopRelay()
		s.stopRelay = nil
		s.hub.Stop()
	}
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
