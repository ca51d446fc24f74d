package params

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

func TestRegistryChainIDsUnique(t *testing.T) {
	r := Default()
	mainnet := r.Get(Mainnet)
	testnet := r.Get(Testnet)

	require.NotEmpty(t, mainnet.Network.ChainID)
	require.NotEmpty(t, testnet.Network.ChainID)
	require.NotEqual(t, mainnet.Network.ChainID, testnet.Network.ChainID)
	require.Equal(t, "integra_26217-1", mainnet.Network.ChainID)
	require.Equal(t, "integra_26218-1", testnet.Network.ChainID)
	require.EqualValues(t, 26217, mainnet.Network.EVMChainID)
	require.EqualValues(t, 26218, testnet.Network.EVMChainID)
}

func TestRegistrySharedBase(t *testing.T) {
	r := Default()
	mainnet := r.Get(Mainnet)
	testnet := r.Get(Testnet)

	require.Equal(t, mainnet.Identity, testnet.Identity)
	require.Equal(t, mainnet.Token, testnet.Token)
	require.Equal(t, mainnet.Mint, testnet.Mint)
	require.Equal(t, mainnet.FeeMarket, testnet.FeeMarket)
	require.Equal(t, mainnet.Staking, testnet.Staking)
	require.Equal(t, mainnet.Governance, testnet.Governance)
	require.Equal(t, mainnet.Slashing, testnet.Slashing)
	require.Equal(t, mainnet.Distribution, testnet.Distribution)
	require.Equal(t, mainnet.Precompiles, testnet.Precompiles)
	require.Equal(t, mainnet.Predeployed, testnet.Predeployed)
	require.Equal(t, mainnet.Modules, testnet.Modules)

	require.NotEqual(t, mainnet.Network, testnet.Network)
	require.NotEqual(t, mainnet.Endpoints, testnet.Endpoints)
}

func TestRegistrySharesListsBetweenNetworks(t *testing.T) {
	r := Default()

	require.Same(t, &r.specs[Mainnet].Precompiles[0], &r.specs[Testnet].Precompiles[0])
	require.Same(t, &r.specs[Mainnet].Predeployed[0], &r.specs[Testnet].Predeployed[0])
	require.Same(t, &r.specs[Mainnet].Modules[0], &r.specs[Testnet].Modules[0])
}

func TestRegistryListsCannotBeMutated(t *testing.T) {
	r := Default()

	m := r.Get(Mainnet)
	m.Precompiles[0].Address = "not-an-address"
	m.Predeployed[0].Name = "changed"
	m.Modules[0] = "bank"
	m.Modules = append(m.Modules, "extra")

	for _, n := range r.Networks() {
		spec := r.Get(n)
		require.Equal(t, "0x0000000000000000000000000000000000000100", spec.Precompiles[0].Address)
		require.Equal(t, "WIRL (Wrapped IRL)", spec.Predeployed[0].Name)
		require.Equal(t, "auth", spec.Modules[0])
		require.Len(t, spec.Modules, 20)
	}
}

func TestRegistryDetachedFromBase(t *testing.T) {
	base := IntegraShared()
	r, err := NewRegistry(base, IntegraOverrides())
	require.NoError(t, err)

	base.Precompiles[0].Address = "not-an-address"
	base.Modules[0] = "bank"

	spec := r.Get(Testnet)
	require.True(t, ValidAddress(spec.Precompiles[0].Address))
	require.Equal(t, "auth", spec.Modules[0])
}

func TestRegistryEndpoints(t *testing.T) {
	r := Default()
	require.Equal(t, "https://rpc.integralayer.com", r.Get(Mainnet).Endpoints.RPC)
	require.Equal(t, "https://ormos.integralayer.com/cometbft", r.Get(Testnet).Endpoints.RPC)
	require.Equal(t, "wss://ormos.integralayer.com/ws", r.Get(Testnet).Endpoints.EVMWS)
}

func TestRegistryDefaultIsBuiltOnce(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestRegistryNetworks(t *testing.T) {
	r := Default()
	require.Equal(t, []NetworkID{Mainnet, Testnet}, r.Networks())

	nets := r.Networks()
	nets[0] = "devnet"
	require.Equal(t, Mainnet, r.Networks()[0])

	_, ok := r.Lookup("devnet")
	require.False(t, ok)
	require.Panics(t, func() { r.Get("devnet") })
}

func TestPrecompileAddresses(t *testing.T) {
	spec := Default().Get(Mainnet)
	require.Len(t, spec.Precompiles, 9)

	seen := make(map[string]bool)
	for _, c := range spec.Precompiles {
		require.Regexp(t, addressPattern, c.Address, c.Name)
		require.False(t, seen[c.Address], "duplicate precompile %s", c.Address)
		seen[c.Address] = true
	}
	for _, c := range spec.Predeployed {
		require.Regexp(t, addressPattern, c.Address, c.Name)
	}
}

func TestContractChecksum(t *testing.T) {
	wirl := Default().Get(Mainnet).Predeployed[0]
	require.Equal(t, "0xD4949664cD82660AaE99bEdc034a0deA8A0bd517", wirl.Checksum())
}

func TestNewRegistryRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SharedSpec, map[NetworkID]Override)
	}{
		{"short address", func(b *SharedSpec, _ map[NetworkID]Override) {
			b.Precompiles = []Contract{{Name: "x", Address: "0x0100"}}
		}},
		{"missing prefix", func(b *SharedSpec, _ map[NetworkID]Override) {
			b.Predeployed = []Contract{{Name: "x", Address: "0000000000000000000000000000000000000100"}}
		}},
		{"duplicate address", func(b *SharedSpec, _ map[NetworkID]Override) {
			b.Precompiles = append(b.Precompiles, Contract{Name: "dup", Address: b.Precompiles[0].Address})
		}},
		{"duplicate module", func(b *SharedSpec, _ map[NetworkID]Override) {
			b.Modules = []string{"bank", "bank"}
		}},
		{"missing network", func(_ *SharedSpec, o map[NetworkID]Override) {
			delete(o, Testnet)
		}},
		{"extra network", func(_ *SharedSpec, o map[NetworkID]Override) {
			o["devnet"] = o[Testnet]
		}},
		{"empty chain id", func(_ *SharedSpec, o map[NetworkID]Override) {
			m := o[Mainnet]
			m.Network.ChainID = ""
			o[Mainnet] = m
		}},
		{"shared chain id", func(_ *SharedSpec, o map[NetworkID]Override) {
			m := o[Testnet]
			m.Network.ChainID = IntegraChainID
			o[Testnet] = m
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := IntegraShared()
			overrides := IntegraOverrides()
			tt.mutate(&base, overrides)

			_, err := NewRegistry(base, overrides)
			require.Error(t, err)
		})
	}
}

func TestParseNetwork(t *testing.T) {
	n, err := ParseNetwork("testnet")
	require.NoError(t, err)
	require.Equal(t, Testnet, n)

	n, err = ParseNetwork("mainnet")
	require.NoError(t, err)
	require.Equal(t, Mainnet, n)

	for _, in := range []string{"devnet", "", " Testnet ", "TESTNET", "Testnet\n", " testnet ", "Mainnet"} {
		_, err = ParseNetwork(in)
		require.ErrorIs(t, err, ErrUnknownNetwork, "input %q", in)
	}
}
