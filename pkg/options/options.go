// Package options holds the static catalog of bitcoin.conf option names,
// their value types and the section scoping rules that apply to them.
//
// The catalog is built once at package initialization and never mutated,
// so it is safe to share across goroutines.
package options

import (
	"sort"

	"github.com/honeybbq/bitcoinconf/pkg/conferr"
)

// TypeName is the declared value type of an option.
type TypeName string

const (
	TypeString      TypeName = "string"
	TypeStringArray TypeName = "string[]"
	TypeBoolean     TypeName = "boolean"
	TypeNumber      TypeName = "number"
)

// Network names a chain the daemon can run against.
type Network string

const (
	NetworkMain    Network = "main"
	NetworkTest    Network = "test"
	NetworkRegtest Network = "regtest"
)

// Networks lists every network in section order.
var Networks = []Network{NetworkMain, NetworkTest, NetworkRegtest}

// Descriptor describes one option of the catalog.
type Descriptor struct {
	Type TypeName
	// OnlyAllowedInTop options may not appear inside a [main]/[test]/[regtest]
	// block nor be qualified with dot notation.
	OnlyAllowedInTop bool
	// NotAllowedInMain options are rejected in the main section.
	NotAllowedInMain bool
	// OnlyAppliesToMain options set at top level are ignored unless the
	// active network is main. They can still be set for test or regtest
	// from inside those sections.
	OnlyAppliesToMain bool
	// Default applies on every network unless NetworkDefaults overrides it.
	Default any
	// NetworkDefaults holds per-network default values.
	NetworkDefaults map[Network]any
	Description     string
}

// DefaultFor returns the default of d on network n, if it has one.
func (d Descriptor) DefaultFor(n Network) (any, bool) {
	if v, ok := d.NetworkDefaults[n]; ok {
		return v, true
	}
	if d.Default != nil {
		return d.Default, true
	}
	return nil, false
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, error) {
	d, ok := catalog[name]
	if !ok {
		return Descriptor{}, conferr.Newf(conferr.KindValidation, conferr.ErrUnknownOption, "%q", name)
	}
	return d, nil
}

// Names returns all registered option names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each calls fn for every registered option in name order.
func Each(fn func(name string, d Descriptor)) {
	for _, name := range Names() {
		fn(name, catalog[name])
	}
}
