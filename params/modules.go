package params

import "strings"

// ModuleKind is the derived classification of a chain module.
type ModuleKind string

const (
	ModuleCosmos ModuleKind = "cosmos"
	ModuleEVM    ModuleKind = "evm"
	ModuleIBC    ModuleKind = "ibc"
)

var evmModules = map[string]struct{}{
	"evm":       {},
	"erc20":     {},
	"feemarket": {},
}

// ClassifyModule derives the kind of a module from its name alone.
func ClassifyModule(name string) ModuleKind {
	if _, ok := evmModules[name]; ok {
		return ModuleEVM
	}
	if strings.HasPrefix(name, "ibc") {
		return ModuleIBC
	}
	return ModuleCosmos
}

// ModuleGroup is the subset of modules of one kind, in registry order.
type ModuleGroup struct {
	Kind    ModuleKind `json:"kind"`
	Modules []string   `json:"modules"`
}

// ModulesByKind groups the modules as Cosmos SDK, EVM and IBC.
func (s ChainSpec) ModulesByKind() []ModuleGroup {
	groups := []ModuleGroup{{Kind: ModuleCosmos}, {Kind: ModuleEVM}, {Kind: ModuleIBC}}
	index := map[ModuleKind]int{ModuleCosmos: 0, ModuleEVM: 1, ModuleIBC: 2}
	for _, m := range s.Modules {
		i := index[ClassifyModule(m)]
		groups[i].Modules = append(groups[i].Modules, m)
	}
	return groups
}
