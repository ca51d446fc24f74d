package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/Integra-layer/chain-id-card/card"
	"github.com/Integra-layer/chain-id-card/params"
)

// Dispatch runs one JSON-RPC method. Params are positional, as in the
// Ethereum JSON-RPC API.
func (s *Server) Dispatch(method string, raw json.RawMessage) (interface{}, *RPCError) {
	switch method {

	case "card_networks":
		return s.registry.Networks(), nil

	case "card_getSpec":
		n, err := s.optionalNetwork(raw)
		if err != nil {
			return nil, err
		}
		return s.registry.Get(n), nil

	case "card_getSections":
		n, err := s.optionalNetwork(raw)
		if err != nil {
			return nil, err
		}
		return card.Render(s.registry.Get(n)), nil

	case "card_modules":
		n, err := s.optionalNetwork(raw)
		if err != nil {
			return nil, err
		}
		return s.registry.Get(n).ModulesByKind(), nil

	case "card_getState":
		return s.view.State(), nil

	case "card_select":
		args, err := stringParams(raw, 1)
		if err != nil {
			return nil, err
		}
		if !s.view.Select(args[0]) {
			return nil, &RPCError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown network %q", args[0])}
		}
		return s.view.State(), nil

	case "card_toggleTheme":
		s.view.ToggleTheme()
		return s.view.State(), nil

	case "card_copy":
		args, err := stringParams(raw, 1)
		if err != nil {
			return nil, err
		}
		if _, ok := s.targets[args[0]]; !ok {
			return nil, &RPCError{Code: codeInvalidParams, Message: "not a copyable value"}
		}
		s.copies.Copy(args[0])
		return s.copies.Label(args[0]), nil

	case "card_copied":
		args, err := stringParams(raw, 1)
		if err != nil {
			return nil, err
		}
		return s.copies.Acknowledged(args[0]), nil

	default:
		return nil, &RPCError{
			Code:    codeMethodNotFound,
			Message: fmt.Sprintf("the method %s does not exist/is not available", method),
		}
	}
}

// optionalNetwork reads an optional single network argument, defaulting to
// the active selection.
func (s *Server) optionalNetwork(raw json.RawMessage) (params.NetworkID, *RPCError) {
	args, err := stringParams(raw, 0)
	if err != nil {
		return "", err
	}
	if len(args) == 0 || args[0] == "" {
		return s.view.State().Network, nil
	}
	n, perr := params.ParseNetwork(args[0])
	if perr != nil {
		return "", &RPCError{Code: codeInvalidParams, Message: perr.Error()}
	}
	return n, nil
}

// stringParams decodes a positional string array with at least min entries.
func stringParams(raw json.RawMessage, min int) ([]string, *RPCError) {
	var args []string
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, &RPCError{Code: codeInvalidParams, Message: "invalid params: " + err.Error()}
		}
	}
	if len(args) < min {
		return nil, &RPCError{Code: codeInvalidParams, Message: fmt.Sprintf("missing value for required argument %d", len(args))}
	}
	return args, nil
}
