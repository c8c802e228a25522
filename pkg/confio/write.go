package confio

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/afero"

	domain "github.com/honeybbq/bitcoinconf/domain/bitcoind"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/logger"
	confrenderer "github.com/honeybbq/bitcoinconf/pkg/renderer/conf"
	"github.com/honeybbq/bitcoinconf/pkg/sync"
)

const backupSuffix = ".bak"

// WrittenFile is a file Write created or replaced.
type WrittenFile struct {
	Path     string
	Contents string
	Checksum string
}

// Plan is what Write would do for a configuration.
type Plan struct {
	Path     string
	Contents string
	Changes  *sync.ChangeSet
	// previous holds the bytes of the file being replaced; nil when there is none.
	previous []byte
}

// Write renders cfg into the entry file. An existing file is first copied
// to "<path>.bak". The parent directory must exist.
func Write(ctx context.Context, cfg bitcoinconf.Config, opts WriteOptions) ([]WrittenFile, error) {
	return New(nil).Write(ctx, cfg, opts)
}

func (s *Store) Write(ctx context.Context, cfg bitcoinconf.Config, opts WriteOptions) ([]WrittenFile, error) {
	plan, err := s.Plan(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	if plan.previous != nil {
		target := plan.Path + backupSuffix
		if err := afero.WriteFile(s.fs, target, plan.previous, 0o600); err != nil {
			return nil, oops.In("confio").With("path", target).Wrapf(err, "write backup")
		}
		log.Debug().Str("backup", target).Msgf("backed up %s", filepath.Base(plan.Path))
	}

	if err := afero.WriteFile(s.fs, plan.Path, []byte(plan.Contents), 0o600); err != nil {
		return nil, oops.In("confio").With("path", plan.Path).Wrapf(err, "write conf file")
	}
	diff := plan.Changes.Diff
	log.Debug().
		Str("conf", plan.Path).
		Str("version", plan.Changes.Target.VersionID).
		Int("added", len(diff.Added)).
		Int("removed", len(diff.Removed)).
		Int("changed", len(diff.Changed)).
		Msg("wrote bitcoin.conf")

	return []WrittenFile{{
		Path:     plan.Path,
		Contents: plan.Contents,
		Checksum: plan.Changes.Target.Checksum,
	}}, nil
}

// Plan renders cfg and diffs it against the current entry file without
// writing anything.
func (s *Store) Plan(ctx context.Context, cfg bitcoinconf.Config, opts WriteOptions) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc, err := s.resolve(opts.Datadir, opts.Conf)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bundle, err := s.backend.Render(ctx, &domain.Config{Values: cfg}, bitcoinconf.RenderOptions{
		GenerationTag: opts.GenerationTag,
		Timestamp:     now,
		PackageName:   filepath.Base(loc.confPath),
	})
	if err != nil {
		return nil, err
	}
	contents := string(bundle.Packages[0].Content)

	dir := filepath.Dir(loc.confPath)
	exists, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return nil, oops.In("confio").With("path", dir).Wrapf(err, "stat conf directory")
	}
	if !exists {
		return nil, oops.In("confio").With("path", dir).
			Wrapf(&fs.PathError{Op: "write", Path: loc.confPath, Err: fs.ErrNotExist}, "conf directory does not exist")
	}

	previous, err := afero.ReadFile(s.fs, loc.confPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		previous = nil
	case err != nil:
		return nil, oops.In("confio").With("path", loc.confPath).Wrapf(err, "read conf file for backup")
	}

	var base *sync.VersionedConfig
	if previous != nil {
		base = sync.NewVersion(string(previous), s.parseExisting(ctx, loc, previous), now)
	}
	return &Plan{
		Path:     loc.confPath,
		Contents: contents,
		Changes:  sync.NewChangeSet(base, sync.NewVersion(contents, cfg, now)),
		previous: previous,
	}, nil
}

// parseExisting resolves the file about to be replaced. A file that no
// longer parses yields nil; it is still backed up.
func (s *Store) parseExisting(ctx context.Context, loc location, content []byte) bitcoinconf.Config {
	bundle := bitcoinconf.NewBundle(confrenderer.Format, confrenderer.BackendName)
	bundle.Packages = append(bundle.Packages, bitcoinconf.Package{Name: loc.confPath, Content: content})
	cfg, err := s.backend.Parse(ctx, bundle, bitcoinconf.ParseOptions{
		Reader: &includeReader{ctx: ctx, fs: s.fs, datadir: loc.datadir},
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("conf", loc.confPath).Msg("existing conf file does not parse")
		return nil
	}
	return cfg.Values
}
