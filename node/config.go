package node

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir      string `yaml:"dataDir"`
	ExplorerPort int    `yaml:"explorerPort"`
	RPCPort      int    `yaml:"rpcPort"`
	LogLevel     string `yaml:"logLevel"`
	// Clipboard selects the clipboard backend: auto, memory or none.
	Clipboard string `yaml:"clipboard"`
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		DataDir:      filepath.Join(home, ".chaincard"),
		ExplorerPort: 9500,
		RPCPort:      8545,
		LogLevel:     "info",
		Clipboard:    "auto",
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ExplorerPort < 0 || c.ExplorerPort > 65535 {
		return fmt.Errorf("invalid explorer port %d", c.ExplorerPort)
	}
	if c.RPCPort < 0 || c.RPCPort > 65535 {
		return fmt.Errorf("invalid rpc port %d", c.RPCPort)
	}
	switch c.Clipboard {
	case "auto", "memory", "none":
	default:
		return fmt.Errorf("unknown clipboard backend %q", c.Clipboard)
	}
	return nil
}
