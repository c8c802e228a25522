package bitcoinconf

import (
	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

// ActiveNetwork selects the network from the top-level regtest and testnet flags.
func ActiveNetwork(doc *ast.Document) (Network, error) {
	if doc == nil {
		return NetworkMain, nil
	}
	top := doc.Sections[ast.SectionTop]
	return selectNetwork(flagSet(top, "regtest"), flagSet(top, "testnet"))
}

// Network returns the network selected by the regtest and testnet flags of a
// resolved configuration.
func (c Config) Network() (Network, error) {
	return selectNetwork(flagSet(ast.Values(c), "regtest"), flagSet(ast.Values(c), "testnet"))
}

func selectNetwork(regtest, testnet bool) (Network, error) {
	switch {
	case regtest && testnet:
		return "", conferr.New(conferr.KindConflict, conferr.ErrConflictingNetworks)
	case regtest:
		return NetworkRegtest, nil
	case testnet:
		return NetworkTest, nil
	default:
		return NetworkMain, nil
	}
}

func flagSet(values ast.Values, name string) bool {
	b, _ := values[name].(bool)
	return b
}

// Resolve flattens doc into the configuration seen by the active network.
//
// Top-level values come first, minus the options that only apply to main
// when another network is active. The active network's section is laid
// over them: its scalars replace top-level ones and its array values are
// appended after them. Sections of inactive networks are dropped.
func Resolve(doc *ast.Document) (Config, Network, error) {
	network, err := ActiveNetwork(doc)
	if err != nil {
		return nil, "", err
	}

	flat := make(ast.Values)
	if doc == nil {
		return Config(flat), network, nil
	}
	for name, value := range doc.Sections[ast.SectionTop] {
		if network != NetworkMain && onlyAppliesToMain(name) {
			continue
		}
		flat[name] = cloneValue(value)
	}
	overlayValues(flat, doc.Sections[ast.Section(network)])

	return Config(flat), network, nil
}

func onlyAppliesToMain(name string) bool {
	option, err := options.Lookup(name)
	return err == nil && option.OnlyAppliesToMain
}
