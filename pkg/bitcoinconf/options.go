package bitcoinconf

import "time"

// RenderOptions controls the forward rendering process (config → bitcoin.conf).
type RenderOptions struct {
	GenerationTag string    // Optional tag to include in the header line
	Timestamp     time.Time // Header timestamp; zero means time.Now()
	PackageName   string    // Name of the rendered package; empty means "bitcoin.conf"
}

// ParseOptions controls the reverse parsing process (bitcoin.conf → config).
type ParseOptions struct {
	Reader       FileReader // Reads includeconf targets; required when any of them is read
	WithDefaults bool       // Overlay network-dependent defaults on the result
}
