// Package bitcoinconf parses, merges and resolves bitcoin.conf files.
//
// Parsing happens in two stages. ParseText turns text into a sectioned
// document (top, main, test and regtest values kept apart) and composes
// includeconf files into it. Resolve then picks the active network and
// flattens the document into a Config. WithDefaults optionally fills in the
// network-dependent defaults of every option the file left unset.
package bitcoinconf

import (
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

// Network aliases options.Network so callers need a single import.
type Network = options.Network

const (
	NetworkMain    = options.NetworkMain
	NetworkTest    = options.NetworkTest
	NetworkRegtest = options.NetworkRegtest
)

// Config is a resolved, network-scoped configuration. Values are string,
// []string, bool or float64 according to the option's declared type.
type Config map[string]any

// FileReader is the file access collaborator used to load includeconf targets.
type FileReader interface {
	ReadFile(path string) (string, error)
}

// FileReaderFunc adapts a function to FileReader.
type FileReaderFunc func(path string) (string, error)

func (f FileReaderFunc) ReadFile(path string) (string, error) {
	return f(path)
}

// Clone returns a copy of c with slice values copied.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for name, value := range c {
		out[name] = cloneValue(value)
	}
	return out
}

func cloneValue(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string(nil), list...)
	}
	return v
}
