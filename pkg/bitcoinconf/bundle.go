package bitcoinconf

import (
	"io/fs"
	"time"
)

// Package represents a single configuration file.
// The entry file is always the first package; included files follow in the
// order they were read.
type Package struct {
	Name    string // File name relative to the datadir (e.g., "bitcoin.conf")
	Content []byte // Configuration content
}

// File represents an additional file that should be deployed alongside the
// main configuration.
type File struct {
	Path    string      // File path as referenced by includeconf
	Content []byte      // File content
	Mode    fs.FileMode // Unix file permissions (e.g., 0644, 0600)
}

// Metadata stores information about how and when the configuration was generated.
type Metadata struct {
	Format    string            // Format identifier ("bitcoin.conf")
	Backend   string            // Backend name that generated this bundle
	Generated time.Time         // Timestamp when the bundle was created
	Version   string            // Optional version tag
	Custom    map[string]string // Extensible metadata, e.g. the resolved network
}

// Bundle represents the complete output of a configuration render operation.
type Bundle struct {
	Packages []Package // Configuration packages
	Files    []File    // Additional files (included configuration files)
	Metadata Metadata  // Generation metadata
}

// NewBundle creates an empty Bundle with initialized metadata.
// The Generated timestamp is set to the current time.
func NewBundle(format, backend string) *Bundle {
	return &Bundle{
		Packages: make([]Package, 0),
		Files:    make([]File, 0),
		Metadata: Metadata{
			Format:    format,
			Backend:   backend,
			Generated: time.Now(),
			Custom:    make(map[string]string),
		},
	}
}
