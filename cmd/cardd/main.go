package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/Integra-layer/chain-id-card/node"
)

func main() {

	var (
		configPath   string
		dataDir      string
		rpcPort      int
		explorerPort int
		logLevel     string
		clipboard    string
	)

	defaults := node.DefaultConfig()

	pflag.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pflag.StringVarP(&dataDir, "datadir", "d", defaults.DataDir, "directory for the preference database (empty keeps preferences in memory)")
	pflag.IntVarP(&rpcPort, "rpc-port", "r", defaults.RPCPort, "JSON-RPC and websocket port")
	pflag.IntVarP(&explorerPort, "explorer-port", "e", defaults.ExplorerPort, "HTTP card API port")
	pflag.StringVarP(&logLevel, "log-level", "l", defaults.LogLevel, "Zerolog logger minimum severity level")
	pflag.StringVar(&clipboard, "clipboard", defaults.Clipboard, "clipboard backend: auto, memory or none")

	pflag.Parse()

	cfg := defaults
	if configPath != "" {
		loaded, err := node.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// explicit flags win over the config file
	flags := pflag.CommandLine
	if flags.Changed("datadir") || configPath == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("rpc-port") || configPath == "" {
		cfg.RPCPort = rpcPort
	}
	if flags.Changed("explorer-port") || configPath == "" {
		cfg.ExplorerPort = explorerPort
	}
	if flags.Changed("log-level") || configPath == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("clipboard") || configPath == "" {
		cfg.Clipboard = clipboard
	}

	n, err := node.NewNode(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := n.Logger

	if err := n.Start(); err != nil {
		log.Fatal().Err(err).Msg("could not start node")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Stop(shutdown); err != nil {
		log.Error().Err(err).Msg("unclean shutdown")
		os.Exit(1)
	}
}
