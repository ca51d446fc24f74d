package explorer

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

// ExplorerAPI serves the chain card and its view state over HTTP.
type ExplorerAPI struct {
	Registry *params.Registry
	View     *state.Controller
	Copies   *clipboard.Board
	Events   *events.EventBus

	logger  zerolog.Logger
	targets map[string]struct{}
	server  *http.Server
}

func NewExplorerAPI(registry *params.Registry, view *state.Controller, copies *clipboard.Board, bus *events.EventBus, logger zerolog.Logger) *ExplorerAPI {
	targets := make(map[string]struct{})
	for _, n := range registry.Networks() {
		for t := range card.CopyTargets(card.Render(registry.Get(n))) {
			targets[t] = struct{}{}
		}
	}

	return &ExplorerAPI{
		Registry: registry,
		View:     view,
		Copies:   copies,
		Events:   bus,
		logger:   logger.With().Str("component", "explorer").Logger(),
		targets:  targets,
	}
}

func (api *ExplorerAPI) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /card/networks", api.handleNetworks)
	mux.HandleFunc("GET /card/spec", api.handleSpec)
	mux.HandleFunc("GET /card/spec/{network}", api.handleSpec)
	mux.HandleFunc("GET /card/sections", api.handleSections)
	mux.HandleFunc("GET /card/sections/{network}", api.handleSections)
	mux.HandleFunc("GET /card/stats/{network}", api.handleStats)

	mux.HandleFunc("GET /card/state", api.handleState)
	mux.HandleFunc("POST /card/state/network", api.handleSelect)
	mux.HandleFunc("POST /card/state/theme", api.handleToggleTheme)

	mux.HandleFunc("GET /card/copy", api.handleCopyStatus)
	mux.HandleFunc("POST /card/copy", api.handleCopy)

	// Live view-state changes (SSE)
	mux.HandleFunc("GET /card/stream", api.handleStream)

	return mux
}

// Start binds port and serves the API in the background.
func (api *ExplorerAPI) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", addr, err)
	}

	api.server = &http.Server{
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	api.logger.Info().Str("addr", ln.Addr().String()).Msg("explorer API running")
	go func() {
		err := api.server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			api.logger.Error().Err(err).Msg("explorer API stopped")
		}
	}()
	return nil
}

func (api *ExplorerAPI) Stop(ctx context.Context) error {
	if api.server == nil {
		return nil
	}
	return api.server.Shutdown(ctx)
}
