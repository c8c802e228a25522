// Package confio reads and writes bitcoin.conf files on a file system.
//
// It resolves the entry file from a data directory, loads includeconf
// targets relative to that directory and keeps a .bak copy of any file it
// overwrites. The parsing and rendering themselves happen in the bitcoind
// backend; this package only moves bytes.
package confio

import (
	"github.com/spf13/afero"

	backend "github.com/honeybbq/bitcoinconf/backend/bitcoind"
)

// Store performs file access on an afero file system.
type Store struct {
	fs      afero.Fs
	backend *backend.Backend
	// environ replaces the process environment when non-nil.
	environ map[string]string
	// defaultDatadir replaces DefaultDatadir when non-empty.
	defaultDatadir string
}

// Option configures a Store.
type Option func(*Store)

// WithEnviron makes the Store read BITCOIN_DATADIR and BITCOIN_CONF from
// environ instead of the process environment.
func WithEnviron(environ map[string]string) Option {
	return func(s *Store) {
		s.environ = environ
	}
}

// WithDefaultDatadir overrides the platform default data directory.
func WithDefaultDatadir(dir string) Option {
	return func(s *Store) {
		s.defaultDatadir = dir
	}
}

// WithBackend replaces the default bitcoind backend.
func WithBackend(b *backend.Backend) Option {
	return func(s *Store) {
		s.backend = b
	}
}

// New returns a Store on fs. A nil fs means the OS file system.
func New(fs afero.Fs, opts ...Option) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Store{fs: fs, backend: backend.NewDefault()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) datadir() string {
	if s.defaultDatadir != "" {
		return s.defaultDatadir
	}
	return DefaultDatadir()
}

// Fs returns the file system the Store reads and writes.
func (s *Store) Fs() afero.Fs {
	return s.fs
}
