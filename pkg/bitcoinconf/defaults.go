package bitcoinconf

import (
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

// WithDefaults returns a copy of cfg in which every option that has a default
// on network and is not set takes that default. cfg must already be resolved
// for network.
func WithDefaults(cfg Config, network Network) Config {
	out := cfg.Clone()
	options.Each(func(name string, option options.Descriptor) {
		if _, ok := out[name]; ok {
			return
		}
		if value, ok := option.DefaultFor(network); ok {
			out[name] = cloneValue(value)
		}
	})
	return out
}
