package card

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Integra-layer/chain-id-card/params"
)

// Row is one labelled value of the card. Copy is set for values the card
// offers a copy button for.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Mono  bool   `json:"mono,omitempty"`
	Copy  string `json:"copy,omitempty"`
	Note  string `json:"note,omitempty"`
}

type Group struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

type Section struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Groups   []Group `json:"groups"`
}

// Render projects a chain specification onto the card layout.
func Render(spec params.ChainSpec) []Section {
	return []Section{
		identitySection(spec),
		tokenSection(spec),
		consensusSection(spec),
		governanceSection(spec),
		evmSection(spec),
		modulesSection(spec),
		endpointsSection(spec),
	}
}

func identitySection(s params.ChainSpec) Section {
	return Section{
		ID: "identity", Title: "Identity", Subtitle: "Core chain identification and software versions",
		Groups: []Group{
			{Title: "Chain Identity", Rows: []Row{
				{Label: "Name", Value: s.Identity.Name},
				{Label: "Binary", Value: s.Identity.Binary, Mono: true},
				{Label: "Bech32 Prefix", Value: s.Identity.Bech32Prefix, Mono: true},
				{Label: "Home Directory", Value: s.Identity.HomeDir, Mono: true},
				{Label: "Chain ID", Value: s.Network.ChainID, Mono: true, Copy: s.Network.ChainID},
				{Label: "EVM Chain ID", Value: strconv.FormatUint(s.Network.EVMChainID, 10), Mono: true},
				{Label: "Status", Value: s.Network.Status},
			}},
			{Title: "Software Versions", Rows: []Row{
				{Label: "EVM Framework", Value: s.Identity.EVMFramework},
				{Label: "Cosmos SDK", Value: s.Identity.CosmosSDK},
				{Label: "CometBFT", Value: s.Identity.CometBFT},
				{Label: "EIP-1559", Value: YesNo(s.FeeMarket.EIP1559Enabled)},
				{Label: "Precompiles", Value: fmt.Sprintf("%d static", len(s.Precompiles))},
				{Label: "IBC", Value: ibcStatus(s)},
			}},
		},
	}
}

func tokenSection(s params.ChainSpec) Section {
	return Section{
		ID: "token", Title: "Token", Subtitle: "Native token denomination and supply configuration",
		Groups: []Group{
			{Title: "Token Info", Rows: []Row{
				{Label: "Name", Value: s.Token.Name},
				{Label: "Symbol", Value: s.Token.Symbol},
				{Label: "Base Denom", Value: s.Token.BaseDenom, Mono: true},
				{Label: "Display Denom", Value: s.Token.DisplayDenom},
				{Label: "Decimals", Value: strconv.Itoa(int(s.Token.Decimals))},
				{Label: "Total Supply", Value: s.Token.TotalSupply},
			}},
			{Title: "Denomination Guide", Rows: []Row{
				{Label: "1 " + s.Token.DisplayDenom, Value: fmt.Sprintf("%s %s", Thousands(s.Token.BaseUnitsPerDisplay().String()), s.Token.BaseDenom), Mono: true},
				{Label: "Base Fee", Value: s.FeeMarket.BaseFeeGwei},
			}},
		},
	}
}

func consensusSection(s params.ChainSpec) Section {
	return Section{
		ID: "consensus", Title: "Consensus & Economics", Subtitle: "Staking, inflation, fee market, slashing, and distribution parameters",
		Groups: []Group{
			{Title: "Mint / Inflation", Rows: []Row{
				{Label: "Inflation", Value: s.Mint.Inflation},
				{Label: "Min Inflation", Value: s.Mint.InflationMin},
				{Label: "Max Inflation", Value: s.Mint.InflationMax},
				{Label: "Rate Change", Value: s.Mint.InflationRateChange},
				{Label: "Goal Bonded", Value: s.Mint.GoalBonded},
				{Label: "Blocks / Year", Value: Thousands(strconv.FormatUint(s.Mint.BlocksPerYear, 10))},
				{Label: "Block Time", Value: s.Mint.BlockTime},
			}},
			{Title: "Fee Market (EIP-1559)", Rows: []Row{
				{Label: "EIP-1559 Enabled", Value: YesNo(s.FeeMarket.EIP1559Enabled)},
				{Label: "Base Fee", Value: s.FeeMarket.BaseFeeGwei},
				{Label: "Base Fee (" + s.Token.BaseDenom + ")", Value: s.FeeMarket.BaseFee, Mono: true},
				{Label: "Min Gas Price", Value: s.FeeMarket.MinGasPrice, Mono: true},
				{Label: "Change Denominator", Value: strconv.FormatUint(uint64(s.FeeMarket.BaseFeeChangeDenominator), 10)},
				{Label: "Elasticity Multiplier", Value: strconv.FormatUint(uint64(s.FeeMarket.ElasticityMultiplier), 10)},
				{Label: "Min Gas Multiplier", Value: s.FeeMarket.MinGasMultiplier},
			}},
			{Title: "Staking", Rows: []Row{
				{Label: "Bond Denom", Value: s.Staking.BondDenom, Mono: true},
				{Label: "Max Validators", Value: strconv.FormatUint(uint64(s.Staking.MaxValidators), 10)},
				{Label: "Unbonding Period", Value: s.Staking.UnbondingPeriod},
				{Label: "Max Entries", Value: strconv.FormatUint(uint64(s.Staking.MaxEntries), 10)},
				{Label: "Historical Entries", Value: Thousands(strconv.FormatUint(uint64(s.Staking.HistoricalEntries), 10))},
				{Label: "Min Commission", Value: s.Staking.MinCommissionRate},
			}},
			{Title: "Slashing", Rows: []Row{
				{Label: "Signed Blocks Window", Value: Thousands(strconv.FormatUint(s.Slashing.SignedBlocksWindow, 10))},
				{Label: "Min Signed / Window", Value: s.Slashing.MinSignedPerWindow},
				{Label: "Downtime Jail", Value: s.Slashing.DowntimeJailDuration},
				{Label: "Double Sign Slash", Value: s.Slashing.SlashFractionDoubleSign},
				{Label: "Downtime Slash", Value: s.Slashing.SlashFractionDowntime},
			}},
			{Title: "Distribution", Rows: []Row{
				{Label: "Community Tax", Value: s.Distribution.CommunityTax},
				{Label: "Withdraw Address", Value: YesNo(s.Distribution.WithdrawAddrEnabled)},
			}},
		},
	}
}

func governanceSection(s params.ChainSpec) Section {
	g := s.Governance
	return Section{
		ID: "governance", Title: "Governance", Subtitle: "On-chain governance proposal and voting parameters",
		Groups: []Group{
			{Title: "Deposits", Rows: []Row{
				{Label: "Min Deposit", Value: g.MinDepositDisplay},
				{Label: "Min Deposit (" + s.Token.BaseDenom + ")", Value: g.MinDeposit, Mono: true},
				{Label: "Expedited Deposit", Value: g.ExpeditedMinDepositDisplay},
				{Label: "Expedited Deposit (" + s.Token.BaseDenom + ")", Value: g.ExpeditedMinDeposit, Mono: true},
				{Label: "Initial Deposit Ratio", Value: g.MinInitialDepositRatio},
			}},
			{Title: "Voting", Rows: []Row{
				{Label: "Voting Period", Value: g.VotingPeriod},
				{Label: "Expedited Voting", Value: g.ExpeditedVotingPeriod},
				{Label: "Max Deposit Period", Value: g.MaxDepositPeriod},
				{Label: "Quorum", Value: g.Quorum},
				{Label: "Threshold", Value: g.Threshold},
				{Label: "Veto Threshold", Value: g.VetoThreshold},
				{Label: "Burn Vote Veto", Value: YesNo(g.BurnVoteVeto)},
			}},
		},
	}
}

func evmSection(s params.ChainSpec) Section {
	return Section{
		ID: "evm", Title: "EVM", Subtitle: "Static precompiles and predeployed contracts",
		Groups: []Group{
			{Title: "Precompiles", Rows: contractRows(s.Precompiles)},
			{Title: "Predeployed Contracts", Rows: contractRows(s.Predeployed)},
		},
	}
}

func contractRows(contracts []params.Contract) []Row {
	rows := make([]Row, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, Row{
			Label: c.Name,
			Value: ShortAddress(c.Address),
			Mono:  true,
			Copy:  c.Address,
			Note:  c.Description,
		})
	}
	return rows
}

func modulesSection(s params.ChainSpec) Section {
	titles := map[params.ModuleKind]string{
		params.ModuleCosmos: "Cosmos SDK",
		params.ModuleEVM:    "EVM",
		params.ModuleIBC:    "IBC",
	}
	var groups []Group
	for _, g := range s.ModulesByKind() {
		rows := make([]Row, 0, len(g.Modules))
		for _, m := range g.Modules {
			rows = append(rows, Row{Label: m, Value: string(g.Kind), Mono: true})
		}
		groups = append(groups, Group{Title: fmt.Sprintf("%s (%d)", titles[g.Kind], len(g.Modules)), Rows: rows})
	}
	return Section{
		ID: "modules", Title: "Modules", Subtitle: fmt.Sprintf("%d modules compiled into %s", len(s.Modules), s.Identity.Binary),
		Groups: groups,
	}
}

func endpointsSection(s params.ChainSpec) Section {
	e := s.Endpoints
	rows := []Row{
		{Label: "CometBFT RPC", Value: e.RPC},
		{Label: "REST (LCD)", Value: e.REST},
		{Label: "gRPC", Value: e.GRPC},
		{Label: "EVM JSON-RPC", Value: e.EVMRPC},
		{Label: "EVM WebSocket", Value: e.EVMWS},
		{Label: "Explorer", Value: e.Explorer},
		{Label: "EVM Explorer", Value: e.EVMExplorer},
	}
	for i := range rows {
		rows[i].Mono = true
		rows[i].Copy = rows[i].Value
	}
	return Section{
		ID: "endpoints", Title: "Endpoints", Subtitle: "Public network endpoints",
		Groups: []Group{{Title: "Public Endpoints", Rows: rows}},
	}
}

func ibcStatus(s params.ChainSpec) string {
	for _, m := range s.Modules {
		if params.ClassifyModule(m) == params.ModuleIBC {
			return "Enabled (v10)"
		}
	}
	return "Disabled"
}

// CopyTargets lists every value the card offers a copy button for.
func CopyTargets(sections []Section) map[string]struct{} {
	out := make(map[string]struct{})
	for _, sec := range sections {
		for _, g := range sec.Groups {
			for _, r := range g.Rows {
				if r.Copy != "" {
					out[r.Copy] = struct{}{}
				}
			}
		}
	}
	return out
}

// ------------------------------------------------------------
// FORMATTING
// ------------------------------------------------------------

func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Thousands inserts comma separators into a string of decimal digits.
func Thousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ShortAddress abbreviates a hex address to its first 10 and last 6
// characters.
func ShortAddress(addr string) string {
	if len(addr) <= 16 {
		return addr
	}
	return addr[:10] + "..." + addr[len(addr)-6:]
}

// WriteText prints the sections as aligned plain text.
func WriteText(w io.Writer, sections []Section) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sec := range sections {
		fmt.Fprintf(tw, "== %s ==\n", sec.Title)
		for _, g := range sec.Groups {
			fmt.Fprintf(tw, "[%s]\n", g.Title)
			for _, r := range g.Rows {
				value := r.Value
				if r.Copy != "" && r.Copy != r.Value {
					value = r.Copy
				}
				fmt.Fprintf(tw, "  %s\t%s\n", r.Label, value)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
