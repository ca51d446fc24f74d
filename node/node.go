package node

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Integra-layer/chain-id-card/clipboard"
	"github.com/Integra-layer/chain-id-card/events"
	"github.com/Integra-layer/chain-id-card/explorer"
	"github.com/Integra-layer/chain-id-card/log"
	"github.com/Integra-layer/chain-id-card/params"
	"github.com/Integra-layer/chain-id-card/rpc"
	"github.com/Integra-layer/chain-id-card/state"
)

type Node struct {
	Config      *Config
	Logger      zerolog.Logger
	Registry    *params.Registry
	Events      *events.EventBus
	Prefs       state.Preferences
	Attributes  *state.AttributeSet
	View        *state.Controller
	Copies      *clipboard.Board
	RPCServer   *rpc.Server
	ExplorerAPI *explorer.ExplorerAPI
}

func NewNode(cfg *Config) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &Node{
		Config: cfg,
		Logger: logger,
	}, nil
}

func (n *Node) Start() error {
	n.Logger.Info().
		Str("data_dir", n.Config.DataDir).
		Int("rpc_port", n.Config.RPCPort).
		Int("explorer_port", n.Config.ExplorerPort).
		Msg("starting chain card node")

	// ------------------------------------------------
	// 1. Registry + EventBus
	// ------------------------------------------------
	n.Registry = params.Default()
	n.Events = events.NewEventBus()

	// ------------------------------------------------
	// 2. Preferences
	// ------------------------------------------------
	if n.Config.DataDir == "" {
		n.Prefs = state.NewMemoryPreferences()
	} else {
		prefs, err := state.OpenLevelDBPreferences(filepath.Join(n.Config.DataDir, "prefs"))
		if err != nil {
			return fmt.Errorf("could not open preferences: %w", err)
		}
		n.Prefs = prefs
	}

	// ------------------------------------------------
	// 3. View state + copy feedback
	// ------------------------------------------------
	n.Attributes = state.NewAttributeSet()
	n.View = state.NewController(n.Registry, n.Prefs, n.Attributes, n.Events, n.Logger)
	n.Copies = clipboard.NewBoard(n.clipboard(), clipboard.DefaultAckWindow, n.Events, n.Logger)

	st := n.View.State()
	n.Logger.Info().
		Str("network", st.Network.String()).
		Str("theme", st.Theme.String()).
		Str("chain_id", n.View.Spec().Network.ChainID).
		Msg("view state ready")

	// ------------------------------------------------
	// 4. RPC server
	// ------------------------------------------------
	n.RPCServer = rpc.NewServer(n.Registry, n.View, n.Copies, n.Events, n.Logger)
	if err := n.RPCServer.Start(n.Config.RPCPort); err != nil {
		n.RPCServer = nil
		return n.abort(fmt.Errorf("could not start RPC server: %w", err))
	}

	// ------------------------------------------------
	// 5. Explorer API (REST + live stream)
	// ------------------------------------------------
	n.ExplorerAPI = explorer.NewExplorerAPI(n.Registry, n.View, n.Copies, n.Events, n.Logger)
	if err := n.ExplorerAPI.Start(n.Config.ExplorerPort); err != nil {
		n.ExplorerAPI = nil
		return n.abort(fmt.Errorf("could not start explorer API: %w", err))
	}

	n.Logger.Info().Msg("node started")
	return nil
}

func (n *Node) clipboard() clipboard.Clipboard {
	switch n.Config.Clipboard {
	case "none":
		return nil
	case "auto":
		if cb, ok := clipboard.Detect(); ok {
			n.Logger.Info().Msg("using system clipboard")
			return cb
		}
		n.Logger.Warn().Msg("no clipboard helper found, copies stay in memory")
	}
	return &clipboard.MemoryClipboard{}
}

// abort releases whatever Start opened before it failed.
func (n *Node) abort(err error) error {
	if stopErr := n.Stop(context.Background()); stopErr != nil {
		n.Logger.Warn().Err(stopErr).Msg("cleanup after failed start")
	}
	return err
}

func (n *Node) Stop(ctx context.Context) error {
	n.Logger.Info().Msg("stopping chain card node")

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if n.ExplorerAPI != nil {
		keep(n.ExplorerAPI.Stop(ctx))
		n.ExplorerAPI = nil
	}
	if n.RPCServer != nil {
		keep(n.RPCServer.Stop(ctx))
		n.RPCServer = nil
	}
	if n.Copies != nil {
		n.Copies.Stop()
	}
	if n.Prefs != nil {
		keep(n.Prefs.Close())
		n.Prefs = nil
	}

	if firstErr != nil {
		return fmt.Errorf("could not stop node cleanly: %w", firstErr)
	}
	n.Logger.Info().Msg("node stopped")
	return nil
}
