package card

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Integra-layer/chain-id-card/params"
)

func findRow(t *testing.T, sections []Section, section, label string) Row {
	t.Helper()
	for _, s := range sections {
		if s.ID != section {
			continue
		}
		for _, g := range s.Groups {
			for _, r := range g.Rows {
				if r.Label == label {
					return r
				}
			}
		}
	}
	t.Fatalf("row %q not found in section %q", label, section)
	return Row{}
}

func TestRenderSectionOrder(t *testing.T) {
	sections := Render(params.Default().Get(params.Mainnet))
	var ids []string
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	require.Equal(t, []string{"identity", "token", "consensus", "governance", "evm", "modules", "endpoints"}, ids)
}

func TestRenderFormatsValues(t *testing.T) {
	sections := Render(params.Default().Get(params.Testnet))

	require.Equal(t, "26218", findRow(t, sections, "identity", "EVM Chain ID").Value)
	require.Equal(t, "9 static", findRow(t, sections, "identity", "Precompiles").Value)
	require.Equal(t, "Enabled (v10)", findRow(t, sections, "identity", "IBC").Value)
	require.Equal(t, "6,311,520", findRow(t, sections, "consensus", "Blocks / Year").Value)
	require.Equal(t, "10,000", findRow(t, sections, "consensus", "Historical Entries").Value)
	require.Equal(t, "Yes", findRow(t, sections, "governance", "Burn Vote Veto").Value)
	require.Equal(t, "1,000,000,000,000,000,000 airl", findRow(t, sections, "token", "1 IRL").Value)

	staking := findRow(t, sections, "evm", "Staking")
	require.Equal(t, "0x00000000...000800", staking.Value)
	require.Equal(t, "0x0000000000000000000000000000000000000800", staking.Copy)

	rpc := findRow(t, sections, "endpoints", "CometBFT RPC")
	require.Equal(t, "https://ormos.integralayer.com/cometbft", rpc.Value)
	require.Equal(t, rpc.Value, rpc.Copy)
}

func TestCopyTargets(t *testing.T) {
	spec := params.Default().Get(params.Mainnet)
	targets := CopyTargets(Render(spec))

	require.Contains(t, targets, spec.Endpoints.RPC)
	require.Contains(t, targets, spec.Network.ChainID)
	require.Contains(t, targets, spec.Predeployed[0].Address)
	require.NotContains(t, targets, "intgd")
}

func TestFormatting(t *testing.T) {
	require.Equal(t, "999", Thousands("999"))
	require.Equal(t, "1,000", Thousands("1000"))
	require.Equal(t, "123,456", Thousands("123456"))
	require.Equal(t, "Yes", YesNo(true))
	require.Equal(t, "No", YesNo(false))
	require.Equal(t, "0xD4949664...0bd517", ShortAddress("0xD4949664cD82660AaE99bEdc034a0deA8A0bd517"))
	require.Equal(t, "0x01", ShortAddress("0x01"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Render(params.Default().Get(params.Mainnet))))

	out := buf.String()
	require.Contains(t, out, "== Identity ==")
	require.Contains(t, out, "integra_26217-1")
	require.Contains(t, out, "0x0000000000000000000000000000000000000800")
	require.Contains(t, out, "https://rpc.integralayer.com")
}
