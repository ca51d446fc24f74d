package params

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBech32Prefixes(t *testing.T) {
	p := Default().Get(Mainnet).Identity.Bech32()
	require.Equal(t, Bech32Prefixes{
		AccAddr:  "integra",
		AccPub:   "integrapub",
		ValAddr:  "integravaloper",
		ValPub:   "integravaloperpub",
		ConsAddr: "integravalcons",
		ConsPub:  "integravalconspub",
	}, p)
}

func TestBaseUnitsPerDisplay(t *testing.T) {
	want, _ := new(big.Int).SetString("1000000000000000000", 10)
	require.Zero(t, want.Cmp(Default().Get(Testnet).Token.BaseUnitsPerDisplay()))
}

func TestQuickStats(t *testing.T) {
	stats := Default().Get(Testnet).QuickStats()
	require.Equal(t, []Stat{
		{Label: "EVM Chain ID", Value: "26218", Accent: true},
		{Label: "Block Time", Value: "~5 seconds"},
		{Label: "Total Supply", Value: "100B IRL"},
		{Label: "Inflation", Value: "1%"},
	}, stats)
}

func TestCompactSupply(t *testing.T) {
	require.Equal(t, "100B IRL", CompactSupply("100,000,000,000 IRL"))
	require.Equal(t, "5M IRL", CompactSupply("5,000,000 IRL"))
	require.Equal(t, "1,500 IRL", CompactSupply("1,500 IRL"))
	require.Equal(t, "lots", CompactSupply("lots"))
}

func TestModuleClassification(t *testing.T) {
	require.Equal(t, ModuleEVM, ClassifyModule("evm"))
	require.Equal(t, ModuleEVM, ClassifyModule("erc20"))
	require.Equal(t, ModuleEVM, ClassifyModule("feemarket"))
	require.Equal(t, ModuleIBC, ClassifyModule("ibc-core"))
	require.Equal(t, ModuleIBC, ClassifyModule("ibc-transfer"))
	require.Equal(t, ModuleCosmos, ClassifyModule("bank"))

	spec := Default().Get(Mainnet)
	seen := make(map[string]bool)
	for _, m := range spec.Modules {
		require.False(t, seen[m], "duplicate module %s", m)
		seen[m] = true
		require.Equal(t, ClassifyModule(m), ClassifyModule(m))
	}
}

func TestModulesByKind(t *testing.T) {
	groups := Default().Get(Mainnet).ModulesByKind()
	require.Len(t, groups, 3)
	require.Equal(t, ModuleCosmos, groups[0].Kind)
	require.Len(t, groups[0].Modules, 15)
	require.Equal(t, []string{"evm", "erc20", "feemarket"}, groups[1].Modules)
	require.Equal(t, []string{"ibc-core", "ibc-transfer"}, groups[2].Modules)
}
