package params

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkID names one of the two deployments the card describes.
type NetworkID string

const (
	Mainnet NetworkID = "mainnet"
	Testnet NetworkID = "testnet"
)

var ErrUnknownNetwork = errors.New("unknown network")

// ParseNetwork maps s onto the closed network domain. Only the exact names
// are accepted.
func ParseNetwork(s string) (NetworkID, error) {
	switch NetworkID(s) {
	case Mainnet:
		return Mainnet, nil
	case Testnet:
		return Testnet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
}

func (n NetworkID) Valid() bool {
	return n == Mainnet || n == Testnet
}

func (n NetworkID) String() string {
	return string(n)
}

// ------------------------------------------------------------
// CHAIN SPECIFICATION
// ------------------------------------------------------------

// ChainSpec is the full parameter snapshot of one network. Fields other than
// Network and Endpoints come from the shared base and are identical across
// networks; the slices are shared between networks and must not be mutated.
type ChainSpec struct {
	Identity     Identity     `json:"identity" yaml:"identity"`
	Network      Network      `json:"network" yaml:"network"`
	Token        Token        `json:"token" yaml:"token"`
	Mint         Mint         `json:"mint" yaml:"mint"`
	FeeMarket    FeeMarket    `json:"feeMarket" yaml:"feeMarket"`
	Staking      Staking      `json:"staking" yaml:"staking"`
	Governance   Governance   `json:"governance" yaml:"governance"`
	Slashing     Slashing     `json:"slashing" yaml:"slashing"`
	Distribution Distribution `json:"distribution" yaml:"distribution"`
	Precompiles  []Contract   `json:"precompiles" yaml:"precompiles"`
	Predeployed  []Contract   `json:"predeployed" yaml:"predeployed"`
	Modules      []string     `json:"modules" yaml:"modules"`
	Endpoints    Endpoints    `json:"endpoints" yaml:"endpoints"`
}

type Identity struct {
	Name         string `json:"name" yaml:"name"`
	Binary       string `json:"binary" yaml:"binary"`
	Bech32Prefix string `json:"bech32Prefix" yaml:"bech32Prefix"`
	HomeDir      string `json:"homeDir" yaml:"homeDir"`
	CosmosSDK    string `json:"cosmosSDK" yaml:"cosmosSDK"`
	EVMFramework string `json:"evmFramework" yaml:"evmFramework"`
	CometBFT     string `json:"cometBFT" yaml:"cometBFT"`
}

// Bech32Prefixes is the full set of human readable parts derived from the
// account prefix, following the Cosmos SDK suffix conventions.
type Bech32Prefixes struct {
	AccAddr  string `json:"accAddr" yaml:"accAddr"`
	AccPub   string `json:"accPub" yaml:"accPub"`
	ValAddr  string `json:"valAddr" yaml:"valAddr"`
	ValPub   string `json:"valPub" yaml:"valPub"`
	ConsAddr string `json:"consAddr" yaml:"consAddr"`
	ConsPub  string `json:"consPub" yaml:"consPub"`
}

func (id Identity) Bech32() Bech32Prefixes {
	p := id.Bech32Prefix
	return Bech32Prefixes{
		AccAddr:  p,
		AccPub:   p + "pub",
		ValAddr:  p + "valoper",
		ValPub:   p + "valoperpub",
		ConsAddr: p + "valcons",
		ConsPub:  p + "valconspub",
	}
}

type Network struct {
	ChainID    string `json:"chainId" yaml:"chainId"`
	EVMChainID uint64 `json:"evmChainId" yaml:"evmChainId"`
	Status     string `json:"status" yaml:"status"`
}

type Token struct {
	Name         string `json:"name" yaml:"name"`
	Symbol       string `json:"symbol" yaml:"symbol"`
	BaseDenom    string `json:"baseDenom" yaml:"baseDenom"`
	DisplayDenom string `json:"displayDenom" yaml:"displayDenom"`
	Decimals     uint8  `json:"decimals" yaml:"decimals"`
	TotalSupply  string `json:"totalSupply" yaml:"totalSupply"`
}

// BaseUnitsPerDisplay returns how many base denomination units make up one
// display unit (10^decimals).
func (t Token) BaseUnitsPerDisplay() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(t.Decimals)), nil)
}

type Mint struct {
	Inflation           string `json:"inflation" yaml:"inflation"`
	InflationMin        string `json:"inflationMin" yaml:"inflationMin"`
	InflationMax        string `json:"inflationMax" yaml:"inflationMax"`
	InflationRateChange string `json:"inflationRateChange" yaml:"inflationRateChange"`
	GoalBonded          string `json:"goalBonded" yaml:"goalBonded"`
	BlocksPerYear       uint64 `json:"blocksPerYear" yaml:"blocksPerYear"`
	BlockTime           string `json:"blockTime" yaml:"blockTime"`
}

type FeeMarket struct {
	EIP1559Enabled           bool   `json:"eip1559Enabled" yaml:"eip1559Enabled"`
	BaseFee                  string `json:"baseFee" yaml:"baseFee"`
	BaseFeeGwei              string `json:"baseFeeGwei" yaml:"baseFeeGwei"`
	MinGasPrice              string `json:"minGasPrice" yaml:"minGasPrice"`
	BaseFeeChangeDenominator uint32 `json:"baseFeeChangeDenominator" yaml:"baseFeeChangeDenominator"`
	ElasticityMultiplier     uint32 `json:"elasticityMultiplier" yaml:"elasticityMultiplier"`
	MinGasMultiplier         string `json:"minGasMultiplier" yaml:"minGasMultiplier"`
}

type Staking struct {
	BondDenom         string `json:"bondDenom" yaml:"bondDenom"`
	MaxValidators     uint32 `json:"maxValidators" yaml:"maxValidators"`
	UnbondingPeriod   string `json:"unbondingPeriod" yaml:"unbondingPeriod"`
	MaxEntries        uint32 `json:"maxEntries" yaml:"maxEntries"`
	HistoricalEntries uint32 `json:"historicalEntries" yaml:"historicalEntries"`
	MinCommissionRate string `json:"minCommissionRate" yaml:"minCommissionRate"`
}

type Governance struct {
	MinDeposit                 string `json:"minDeposit" yaml:"minDeposit"`
	MinDepositDisplay          string `json:"minDepositDisplay" yaml:"minDepositDisplay"`
	ExpeditedMinDeposit        string `json:"expeditedMinDeposit" yaml:"expeditedMinDeposit"`
	ExpeditedMinDepositDisplay string `json:"expeditedMinDepositDisplay" yaml:"expeditedMinDepositDisplay"`
	MaxDepositPeriod           string `json:"maxDepositPeriod" yaml:"maxDepositPeriod"`
	VotingPeriod               string `json:"votingPeriod" yaml:"votingPeriod"`
	ExpeditedVotingPeriod      string `json:"expeditedVotingPeriod" yaml:"expeditedVotingPeriod"`
	Quorum                     string `json:"quorum" yaml:"quorum"`
	Threshold                  string `json:"threshold" yaml:"threshold"`
	VetoThreshold              string `json:"vetoThreshold" yaml:"vetoThreshold"`
	MinInitialDepositRatio     string `json:"minInitialDepositRatio" yaml:"minInitialDepositRatio"`
	BurnVoteVeto               bool   `json:"burnVoteVeto" yaml:"burnVoteVeto"`
}

type Slashing struct {
	SignedBlocksWindow      uint64 `json:"signedBlocksWindow" yaml:"signedBlocksWindow"`
	MinSignedPerWindow      string `json:"minSignedPerWindow" yaml:"minSignedPerWindow"`
	DowntimeJailDuration    string `json:"downtimeJailDuration" yaml:"downtimeJailDuration"`
	SlashFractionDoubleSign string `json:"slashFractionDoubleSign" yaml:"slashFractionDoubleSign"`
	SlashFractionDowntime   string `json:"slashFractionDowntime" yaml:"slashFractionDowntime"`
}

type Distribution struct {
	CommunityTax        string `json:"communityTax" yaml:"communityTax"`
	WithdrawAddrEnabled bool   `json:"withdrawAddrEnabled" yaml:"withdrawAddrEnabled"`
}

// Contract is a statically addressed precompile or predeployed contract.
type Contract struct {
	Name        string `json:"name" yaml:"name"`
	Address     string `json:"address" yaml:"address"`
	Description string `json:"description" yaml:"description"`
}

func (c Contract) Addr() common.Address {
	return common.HexToAddress(c.Address)
}

// Checksum returns the EIP-55 form of the contract address.
func (c Contract) Checksum() string {
	return c.Addr().Hex()
}

type Endpoints struct {
	RPC         string `json:"rpc" yaml:"rpc"`
	REST        string `json:"rest" yaml:"rest"`
	GRPC        string `json:"grpc" yaml:"grpc"`
	EVMRPC      string `json:"evmRpc" yaml:"evmRpc"`
	EVMWS       string `json:"evmWs" yaml:"evmWs"`
	Explorer    string `json:"explorer" yaml:"explorer"`
	EVMExplorer string `json:"evmExplorer" yaml:"evmExplorer"`
}

// Stat is one of the headline figures shown above the card.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Accent bool   `json:"accent"`
}

// QuickStats returns the headline figures in display order.
func (s ChainSpec) QuickStats() []Stat {
	return []Stat{
		{Label: "EVM Chain ID", Value: fmt.Sprintf("%d", s.Network.EVMChainID), Accent: true},
		{Label: "Block Time", Value: s.Mint.BlockTime},
		{Label: "Total Supply", Value: CompactSupply(s.Token.TotalSupply)},
		{Label: "Inflation", Value: s.Mint.Inflation},
	}
}

// CompactSupply shortens a pre-formatted supply such as
// "100,000,000,000 IRL" to "100B IRL". Values it cannot read are returned
// unchanged.
func CompactSupply(supply string) string {
	amount, unit, _ := strings.Cut(supply, " ")
	n, ok := new(big.Int).SetString(strings.ReplaceAll(amount, ",", ""), 10)
	if !ok {
		return supply
	}
	suffixes := []struct {
		exp    int64
		letter string
	}{{12, "T"}, {9, "B"}, {6, "M"}, {3, "K"}}
	for _, sfx := range suffixes {
		div := new(big.Int).Exp(big.NewInt(10), big.NewInt(sfx.exp), nil)
		q, r := new(big.Int).QuoRem(n, div, new(big.Int))
		if q.Sign() > 0 && r.Sign() == 0 {
			return strings.TrimSpace(q.String() + sfx.letter + " " + unit)
		}
	}
	return supply
}
