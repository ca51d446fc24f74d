package params

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Registry maps every network to its fully resolved chain specification.
// It is built once and never mutated, so it is safe to read from any
// goroutine without locking.
type Registry struct {
	specs map[NetworkID]ChainSpec
}

var networks = []NetworkID{Mainnet, Testnet}

// NewRegistry merges the shared base with each network override. The
// network and endpoint records are owned per network; precompiles,
// predeployed contracts and modules are copied once and shared between them.
func NewRegistry(base SharedSpec, overrides map[NetworkID]Override) (*Registry, error) {
	base.Precompiles = slices.Clone(base.Precompiles)
	base.Predeployed = slices.Clone(base.Predeployed)
	base.Modules = slices.Clone(base.Modules)

	if err := validateShared(base); err != nil {
		return nil, err
	}
	if len(overrides) != len(networks) {
		return nil, fmt.Errorf("expected overrides for %d networks, got %d", len(networks), len(overrides))
	}

	specs := make(map[NetworkID]ChainSpec, len(networks))
	seen := make(map[string]NetworkID, len(networks))
	for _, n := range networks {
		o, ok := overrides[n]
		if !ok {
			return nil, fmt.Errorf("missing override for %s", n)
		}
		if o.Network.ChainID == "" {
			return nil, fmt.Errorf("%s: empty chain id", n)
		}
		if other, dup := seen[o.Network.ChainID]; dup {
			return nil, fmt.Errorf("%s: chain id %q already used by %s", n, o.Network.ChainID, other)
		}
		seen[o.Network.ChainID] = n

		specs[n] = ChainSpec{
			Identity:     base.Identity,
			Network:      o.Network,
			Token:        base.Token,
			Mint:         base.Mint,
			FeeMarket:    base.FeeMarket,
			Staking:      base.Staking,
			Governance:   base.Governance,
			Slashing:     base.Slashing,
			Distribution: base.Distribution,
			Precompiles:  base.Precompiles,
			Predeployed:  base.Predeployed,
			Modules:      base.Modules,
			Endpoints:    o.Endpoints,
		}
	}

	return &Registry{specs: specs}, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(IntegraShared(), IntegraOverrides())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in chain specification: %v", err))
	}
	return r
})

// Default returns the Integra Layer registry.
func Default() *Registry {
	return defaultRegistry()
}

// Get returns the specification of n. The network domain is closed, so an
// unknown value is a programming error and panics; use Lookup or
// ParseNetwork for untrusted input. The returned lists are copies.
func (r *Registry) Get(n NetworkID) ChainSpec {
	spec, ok := r.Lookup(n)
	if !ok {
		panic(fmt.Sprintf("chain specification for %q not registered", string(n)))
	}
	return spec
}

func (r *Registry) Lookup(n NetworkID) (ChainSpec, bool) {
	spec, ok := r.specs[n]
	if !ok {
		return ChainSpec{}, false
	}
	spec.Precompiles = slices.Clone(spec.Precompiles)
	spec.Predeployed = slices.Clone(spec.Predeployed)
	spec.Modules = slices.Clone(spec.Modules)
	return spec, true
}

// Networks lists the registered networks, mainnet first.
func (r *Registry) Networks() []NetworkID {
	out := make([]NetworkID, len(networks))
	copy(out, networks)
	return out
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

var errInvalidAddress = errors.New("invalid contract address")

// ValidAddress reports whether s is a 0x prefixed 20-byte hex string.
func ValidAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && len(s) == 2+2*common.AddressLength && common.IsHexAddress(s)
}

func validateShared(base SharedSpec) error {
	if err := validateContracts("precompiles", base.Precompiles); err != nil {
		return err
	}
	if err := validateContracts("predeployed", base.Predeployed); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(base.Modules))
	for _, m := range base.Modules {
		if m == "" {
			return errors.New("modules: empty module name")
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("modules: duplicate module %q", m)
		}
		seen[m] = struct{}{}
	}
	return nil
}

func validateContracts(list string, contracts []Contract) error {
	seen := make(map[common.Address]string, len(contracts))
	for _, c := range contracts {
		if !ValidAddress(c.Address) {
			return fmt.Errorf("%s: %s: %w: %q", list, c.Name, errInvalidAddress, c.Address)
		}
		addr := c.Addr()
		if other, dup := seen[addr]; dup {
			return fmt.Errorf("%s: %s shares address %s with %s", list, c.Name, c.Address, other)
		}
		seen[addr] = c.Name
	}
	return nil
}
