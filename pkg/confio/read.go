package confio

import (
	"context"
	"errors"
	"io/fs"

	commonv1 "github.com/honeybbq/netjson/gen/go/netjson/common/v1"
	"github.com/samber/oops"
	"github.com/spf13/afero"

	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/logger"
	confrenderer "github.com/honeybbq/bitcoinconf/pkg/renderer/conf"
)

// Result is a configuration read from disk.
type Result struct {
	Config  bitcoinconf.Config
	Network bitcoinconf.Network
	// Datadir is the absolute data directory the files were resolved against.
	Datadir string
	// ConfPath is the absolute path of the entry file.
	ConfPath string
	// Files lists the includeconf files that were read, in read order.
	Files []*commonv1.IncludedFile
}

// Read loads the entry file and its includes and resolves them for the
// active network.
//
// A missing entry file is an empty configuration when it is the default
// bitcoin.conf, and a not-found error when the caller or environment named it.
func Read(ctx context.Context, opts ReadOptions) (*Result, error) {
	return New(nil).Read(ctx, opts)
}

func (s *Store) Read(ctx context.Context, opts ReadOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	loc, err := s.resolve(opts.Datadir, opts.Conf)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("datadir", loc.datadir).Str("conf", loc.confPath).Msg("reading bitcoin.conf")

	content, err := afero.ReadFile(s.fs, loc.confPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !loc.explicit:
		log.Debug().Str("conf", loc.confPath).Msg("default conf file not found, using empty configuration")
		content = nil
	case err != nil:
		return nil, oops.In("confio").With("path", loc.confPath).Wrapf(err, "read conf file")
	}

	bundle := bitcoinconf.NewBundle(confrenderer.Format, confrenderer.BackendName)
	bundle.Packages = append(bundle.Packages, bitcoinconf.Package{
		Name:    loc.confPath,
		Content: content,
	})
	cfg, err := s.backend.Parse(ctx, bundle, bitcoinconf.ParseOptions{
		Reader:       &includeReader{ctx: ctx, fs: s.fs, datadir: loc.datadir},
		WithDefaults: opts.WithDefaults,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:   cfg.Values,
		Network:  cfg.Network,
		Datadir:  loc.datadir,
		ConfPath: loc.confPath,
		Files:    cfg.Files,
	}, nil
}

// includeReader loads includeconf targets relative to the data directory.
type includeReader struct {
	ctx     context.Context
	fs      afero.Fs
	datadir string
}

func (r *includeReader) ReadFile(path string) (string, error) {
	if err := r.ctx.Err(); err != nil {
		return "", err
	}
	abs := toAbsolute(path, r.datadir)
	logger.FromContext(r.ctx).Debug().Str("include", path).Str("path", abs).Msg("reading included conf file")

	content, err := afero.ReadFile(r.fs, abs)
	if err != nil {
		return "", oops.In("confio").With("path", abs).Wrapf(err, "read included conf file %q", path)
	}
	return string(content), nil
}
