package confio

import (
	"fmt"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/honeybbq/bitcoinconf/pkg/conferr"
)

// DefaultConf is the entry file name used when neither the caller nor the
// environment names one.
const DefaultConf = "bitcoin.conf"

// ReadOptions controls Read. An empty Datadir or Conf is taken from
// BITCOIN_DATADIR or BITCOIN_CONF, then from DefaultDatadir and DefaultConf.
type ReadOptions struct {
	// Datadir is the data directory; it must be absolute.
	Datadir string
	// Conf is the entry file, relative to Datadir unless absolute.
	Conf string
	// WithDefaults fills unset options with their network defaults.
	WithDefaults bool
}

// WriteOptions controls Write. Datadir and Conf are resolved as in ReadOptions.
type WriteOptions struct {
	Datadir string
	Conf    string
	// GenerationTag is written as a comment below the header line.
	GenerationTag string
}

// location is the resolved entry file.
type location struct {
	datadir  string
	confPath string
	// explicit is set when the entry file was named by the caller or the environment.
	explicit bool
}

func (s *Store) resolve(datadir, conf string) (location, error) {
	type paths struct {
		Datadir string `env:"BITCOIN_DATADIR"`
		Conf    string `env:"BITCOIN_CONF"`
	}

	resolved := paths{Datadir: datadir, Conf: conf}
	var fromEnv paths
	if err := env.ParseWithOptions(&fromEnv, env.Options{Environment: s.environ}); err != nil {
		return location{}, conferr.New(conferr.KindValidation, fmt.Errorf("error getting env configs: %w", err))
	}
	if err := mergo.Merge(&resolved, fromEnv); err != nil {
		return location{}, conferr.New(conferr.KindInternal, fmt.Errorf("error merging configs: %w", err))
	}
	explicit := resolved.Conf != ""
	if err := mergo.Merge(&resolved, paths{Datadir: s.datadir(), Conf: DefaultConf}); err != nil {
		return location{}, conferr.New(conferr.KindInternal, fmt.Errorf("error merging configs: %w", err))
	}

	if !filepath.IsAbs(resolved.Datadir) {
		return location{}, conferr.New(conferr.KindValidation,
			fmt.Errorf("path %q given as datadir must be absolute", resolved.Datadir))
	}
	return location{
		datadir:  filepath.Clean(resolved.Datadir),
		confPath: toAbsolute(resolved.Conf, resolved.Datadir),
		explicit: explicit,
	}, nil
}

// toAbsolute resolves path against datadir unless it is already absolute.
func toAbsolute(path, datadir string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(datadir, path)
}
