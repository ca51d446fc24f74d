package params

// ------------------------------------------------------------
// INTEGRA LAYER
// ------------------------------------------------------------

const (
	IntegraEVMChainID        uint64 = 26217
	IntegraTestnetEVMChainID uint64 = 26218

	IntegraChainID        = "integra_26217-1"
	IntegraTestnetChainID = "integra_26218-1"

	IntegraChainDenom = "airl"
)

// SharedSpec holds every parameter that is identical on all networks.
type SharedSpec struct {
	Identity     Identity
	Token        Token
	Mint         Mint
	FeeMarket    FeeMarket
	Staking      Staking
	Governance   Governance
	Slashing     Slashing
	Distribution Distribution
	Precompiles  []Contract
	Predeployed  []Contract
	Modules      []string
}

// Override holds the per-network parameters. Both sub-records replace the
// shared defaults wholesale.
type Override struct {
	Network   Network
	Endpoints Endpoints
}

// IntegraShared returns the parameter set both Integra networks run with.
// 1% fixed inflation, 5000 gwei EIP-1559 base fee, 21 day unbonding.
func IntegraShared() SharedSpec {
	return SharedSpec{
		Identity: Identity{
			Name:         "Integra Layer",
			Binary:       "intgd",
			Bech32Prefix: "integra",
			HomeDir:      "~/.intgd",
			CosmosSDK:    "v0.50.x",
			EVMFramework: "cosmos/evm v0.5.1",
			CometBFT:     "v0.38.x",
		},
		Token: Token{
			Name:         "IRL",
			Symbol:       "IRL",
			BaseDenom:    IntegraChainDenom,
			DisplayDenom: "IRL",
			Decimals:     18,
			TotalSupply:  "100,000,000,000 IRL",
		},
		Mint: Mint{
			Inflation:           "1%",
			InflationMin:        "1%",
			InflationMax:        "1%",
			InflationRateChange: "0%",
			GoalBonded:          "0%",
			BlocksPerYear:       6_311_520,
			BlockTime:           "~5 seconds",
		},
		FeeMarket: FeeMarket{
			EIP1559Enabled:           true,
			BaseFee:                  "5,000,000,000,000 airl",
			BaseFeeGwei:              "5,000 gwei",
			MinGasPrice:              "5,000,000,000,000 airl",
			BaseFeeChangeDenominator: 8,
			ElasticityMultiplier:     2,
			MinGasMultiplier:         "0.5",
		},
		Staking: Staking{
			BondDenom:         IntegraChainDenom,
			MaxValidators:     100,
			UnbondingPeriod:   "21 days",
			MaxEntries:        7,
			HistoricalEntries: 10_000,
			MinCommissionRate: "0%",
		},
		Governance: Governance{
			MinDeposit:                 "1,000,000,000,000,000,000,000,000 airl",
			MinDepositDisplay:          "1,000,000 IRL",
			ExpeditedMinDeposit:        "5,000,000,000,000,000,000,000,000 airl",
			ExpeditedMinDepositDisplay: "5,000,000 IRL",
			MaxDepositPeriod:           "7 days",
			VotingPeriod:               "5 days",
			ExpeditedVotingPeriod:      "1 day",
			Quorum:                     "33.4%",
			Threshold:                  "50%",
			VetoThreshold:              "33.4%",
			MinInitialDepositRatio:     "25%",
			BurnVoteVeto:               true,
		},
		Slashing: Slashing{
			SignedBlocksWindow:      10_000,
			MinSignedPerWindow:      "5%",
			DowntimeJailDuration:    "10 minutes",
			SlashFractionDoubleSign: "5%",
			SlashFractionDowntime:   "0.01%",
		},
		Distribution: Distribution{
			CommunityTax:        "0%",
			WithdrawAddrEnabled: true,
		},
		Precompiles: []Contract{
			{Name: "P256 Verifier", Address: "0x0000000000000000000000000000000000000100", Description: "ECDSA signature verification on the P-256 (secp256r1) curve"},
			{Name: "Bech32", Address: "0x0000000000000000000000000000000000000400", Description: "Convert between Bech32 and hex address formats"},
			{Name: "Staking", Address: "0x0000000000000000000000000000000000000800", Description: "Delegate, undelegate, redelegate, and query validators from EVM"},
			{Name: "Distribution", Address: "0x0000000000000000000000000000000000000801", Description: "Claim staking rewards and manage distribution params from EVM"},
			{Name: "ICS-20 Transfer", Address: "0x0000000000000000000000000000000000000802", Description: "IBC token transfers directly from EVM smart contracts"},
			{Name: "Vesting", Address: "0x0000000000000000000000000000000000000803", Description: "Create and manage vesting accounts from EVM"},
			{Name: "Bank", Address: "0x0000000000000000000000000000000000000804", Description: "Query balances, send tokens, and manage supplies from EVM"},
			{Name: "Governance", Address: "0x0000000000000000000000000000000000000805", Description: "Submit proposals and vote from EVM smart contracts"},
			{Name: "Slashing", Address: "0x0000000000000000000000000000000000000806", Description: "Query slashing params and validator signing info from EVM"},
		},
		Predeployed: []Contract{
			{Name: "WIRL (Wrapped IRL)", Address: "0xD4949664cD82660AaE99bEdc034a0deA8A0bd517", Description: "ERC-20 wrapped version of the native IRL token"},
		},
		Modules: []string{
			"auth", "authz", "bank", "capability", "consensus",
			"distribution", "evidence", "feegrant", "genutil", "gov",
			"mint", "params", "slashing", "staking", "upgrade",
			"evm", "erc20", "feemarket",
			"ibc-core", "ibc-transfer",
		},
	}
}

// IntegraOverrides returns the per-network chain ids, status and endpoints.
func IntegraOverrides() map[NetworkID]Override {
	return map[NetworkID]Override{
		Mainnet: {
			Network: Network{
				ChainID:    IntegraChainID,
				EVMChainID: IntegraEVMChainID,
				Status:     "Live",
			},
			Endpoints: Endpoints{
				RPC:         "https://rpc.integralayer.com",
				REST:        "https://rest.integralayer.com",
				GRPC:        "grpc.integralayer.com:9090",
				EVMRPC:      "https://evm-rpc.integralayer.com",
				EVMWS:       "wss://evm-ws.integralayer.com",
				Explorer:    "https://scan.integralayer.com",
				EVMExplorer: "https://blockscout.integralayer.com",
			},
		},
		Testnet: {
			Network: Network{
				ChainID:    IntegraTestnetChainID,
				EVMChainID: IntegraTestnetEVMChainID,
				Status:     "Live",
			},
			Endpoints: Endpoints{
				RPC:         "https://ormos.integralayer.com/cometbft",
				REST:        "https://ormos.integralayer.com/rest",
				GRPC:        "ormos.integralayer.com:9090",
				EVMRPC:      "https://ormos.integralayer.com/rpc",
				EVMWS:       "wss://ormos.integralayer.com/ws",
				Explorer:    "https://scan.integralayer.com?network=testnet",
				EVMExplorer: "https://testnet.blockscout.integralayer.com",
			},
		},
	}
}
