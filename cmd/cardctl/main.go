package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Integra-layer/chain-id-card/card"
	"github.com/Integra-layer/chain-id-card/log"
	"github.com/Integra-layer/chain-id-card/params"
	"github.com/Integra-layer/chain-id-card/state"
)

const usage = `usage: cardctl [flags] <command> [argument]

commands:
  networks          list the networks
  spec [network]    print the chain specification
  state             print the daemon's view state
  select <network>  switch the daemon to a network
  theme             toggle the daemon's theme
  copy <text>       copy a card value through the daemon
`

func main() {

	var (
		rpcURL   string
		offline  bool
		format   string
		logLevel string
		timeout  time.Duration
	)

	pflag.StringVarP(&rpcURL, "rpc", "r", "http://localhost:8545", "chain card daemon JSON-RPC URL")
	pflag.BoolVarP(&offline, "offline", "o", false, "read the built-in registry instead of asking the daemon")
	pflag.StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	pflag.StringVarP(&logLevel, "log-level", "l", "warn", "Zerolog logger minimum severity level")
	pflag.DurationVarP(&timeout, "timeout", "t", 5*time.Second, "request timeout")
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}

	pflag.Parse()

	logger, err := log.NewLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}
	command, arg := args[0], ""
	if len(args) > 1 {
		arg = args[1]
	}
	if command == "spec" || command == "select" {
		arg = networkArg(arg)
	}

	out := printer{w: os.Stdout, format: format}

	if offline {
		err = runOffline(out, command, arg)
	} else {
		err = dialAndRun(rpcURL, timeout, out, command, arg)
	}
	if err != nil {
		logger.Fatal().Str("command", command).Err(err).Msg("command failed")
	}
}

// networkArg accepts network names in any case and with surrounding space
// on the command line. The daemon only takes the exact names.
func networkArg(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func dialAndRun(rpcURL string, timeout time.Duration, out printer, command, arg string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("could not connect to chain card daemon at %s: %w", rpcURL, err)
	}
	defer client.Close()

	return runRemote(ctx, client, out, command, arg)
}

func runOffline(out printer, command, arg string) error {
	registry := params.Default()

	switch command {
	case "networks":
		return out.print(registry.Networks(), nil)
	case "spec":
		n := params.Mainnet
		if arg != "" {
			var err error
			if n, err = params.ParseNetwork(arg); err != nil {
				return err
			}
		}
		spec := registry.Get(n)
		return out.print(spec, card.Render(spec))
	default:
		return fmt.Errorf("command %q needs the daemon", command)
	}
}

func runRemote(ctx context.Context, client *rpc.Client, out printer, command, arg string) error {
	switch command {
	case "networks":
		var nets []params.NetworkID
		if err := client.CallContext(ctx, &nets, "card_networks"); err != nil {
			return err
		}
		return out.print(nets, nil)

	case "spec":
		var spec params.ChainSpec
		callArgs := []interface{}{}
		if arg != "" {
			callArgs = append(callArgs, arg)
		}
		if err := client.CallContext(ctx, &spec, "card_getSpec", callArgs...); err != nil {
			return err
		}
		return out.print(spec, card.Render(spec))

	case "state", "select", "theme":
		var st state.ViewState
		var err error
		switch command {
		case "state":
			err = client.CallContext(ctx, &st, "card_getState")
		case "select":
			if arg == "" {
				return fmt.Errorf("select needs a network")
			}
			err = client.CallContext(ctx, &st, "card_select", arg)
		case "theme":
			err = client.CallContext(ctx, &st, "card_toggleTheme")
		}
		if err != nil {
			return err
		}
		return out.print(st, nil)

	case "copy":
		if arg == "" {
			return fmt.Errorf("copy needs a value")
		}
		var label string
		if err := client.CallContext(ctx, &label, "card_copy", arg); err != nil {
			return err
		}
		return out.print(map[string]string{"text": arg, "label": label}, nil)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

type printer struct {
	w      io.Writer
	format string
}

// print writes v in the selected format. sections, when given, is used for
// the text format instead of the generic rendering.
func (p printer) print(v interface{}, sections []card.Section) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		if sections != nil {
			return card.WriteText(p.w, sections)
		}
		_, err := fmt.Fprintf(p.w, "%+v\n", v)
		return err
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}
