package confio

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backend "github.com/honeybbq/bitcoinconf/backend/bitcoind"
	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/logger"
	confrenderer "github.com/honeybbq/bitcoinconf/pkg/renderer/conf"
)

const datadir = "/home/satoshi/.bitcoin"

func newStore(t *testing.T, files map[string]string) (*Store, afero.Fs) {
	t.Helper()
	memfs := afero.NewMemMapFs()
	require.NoError(t, memfs.MkdirAll(datadir, 0o755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(memfs, path, []byte(content), 0o644))
	}
	return New(memfs, WithEnviron(map[string]string{}), WithDefaultDatadir(datadir)), memfs
}

func TestRead(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]string{
		datadir + "/bitcoin.conf": strings.Join([]string{
			"rpcuser=carnesen",
			"rpcpassword=top-password",
			"rpcauth=foo:edbb8eb$fae09e4",
			"rpcauth=bar:b40474b$79f29e9",
			"includeconf=included-from-top.conf",
			"[main]",
			"rpcport=44444",
			"includeconf=/etc/bitcoin/included-from-section.conf",
		}, "\n"),
		datadir + "/included-from-top.conf":         "dbbatchsize=12345",
		"/etc/bitcoin/included-from-section.conf": "rpcbind=10.10.10.10",
	})

	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, datadir, result.Datadir)
	assert.Equal(t, datadir+"/bitcoin.conf", result.ConfPath)
	assert.Equal(t, bitcoinconf.NetworkMain, result.Network)
	assert.Equal(t, "carnesen", result.Config["rpcuser"])
	assert.Equal(t, "top-password", result.Config["rpcpassword"])
	assert.Equal(t, []string{"foo:edbb8eb$fae09e4", "bar:b40474b$79f29e9"}, result.Config["rpcauth"])
	assert.Equal(t, 44444.0, result.Config["rpcport"])
	assert.Equal(t, []string{"10.10.10.10"}, result.Config["rpcbind"])
	assert.Equal(t, 12345.0, result.Config["dbbatchsize"])

	require.Len(t, result.Files, 2)
	assert.Equal(t, "included-from-top.conf", result.Files[0].GetPath())
	assert.Equal(t, "rpcbind=10.10.10.10", result.Files[1].GetContents())
}

func TestReadSkipsInactiveSectionInclude(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]string{
		datadir + "/bitcoin.conf": "rpcuser=main\n[regtest]\nincludeconf=absent.conf",
	})

	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, bitcoinconf.NetworkMain, result.Network)
	assert.Equal(t, bitcoinconf.Config{"rpcuser": "main"}, result.Config)
	assert.Empty(t, result.Files)
}

func TestReadMissingDefaultConf(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Config)
	assert.Equal(t, bitcoinconf.NetworkMain, result.Network)

	result, err = store.Read(context.Background(), ReadOptions{WithDefaults: true})
	require.NoError(t, err)
	assert.Equal(t, false, result.Config["blocksonly"])
	assert.Equal(t, 8332.0, result.Config["rpcport"])
}

func TestReadMissingExplicitConf(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	_, err := store.Read(context.Background(), ReadOptions{Conf: "bitcoin.conf"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	assert.Contains(t, err.Error(), "read conf file")
}

func TestReadMissingInclude(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]string{
		datadir + "/bitcoin.conf": "includeconf=gone.conf",
	})
	_, err := store.Read(context.Background(), ReadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestReadNestedInclude(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]string{
		datadir + "/bitcoin.conf": "includeconf=a.conf",
		datadir + "/a.conf":       "includeconf=b.conf",
	})
	_, err := store.Read(context.Background(), ReadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, conferr.ErrNestedInclude))
}

func TestReadRelativeDatadir(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	_, err := store.Read(context.Background(), ReadOptions{Datadir: "foo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be absolute")
	assert.Equal(t, conferr.KindValidation, conferr.KindOf(err))
}

func TestReadAbsoluteConfIgnoresDatadir(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]string{
		"/etc/bitcoin.conf": "testnet=1\n[test]\nrpcuser=t",
	})
	result, err := store.Read(context.Background(), ReadOptions{Conf: "/etc/bitcoin.conf"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/bitcoin.conf", result.ConfPath)
	assert.Equal(t, bitcoinconf.NetworkTest, result.Network)
	assert.Equal(t, "t", result.Config["rpcuser"])
}

func TestReadFromEnvironment(t *testing.T) {
	t.Parallel()

	memfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memfs, "/srv/node/node.conf", []byte("rpcuser=env"), 0o644))
	store := New(memfs, WithEnviron(map[string]string{
		"BITCOIN_DATADIR": "/srv/node",
		"BITCOIN_CONF":    "node.conf",
	}), WithDefaultDatadir(datadir))

	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/node", result.Datadir)
	assert.Equal(t, "env", result.Config["rpcuser"])

	// explicit options win over the environment
	_, err = store.Read(context.Background(), ReadOptions{Conf: "other.conf"})
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestReadLogsAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logger.New("confio", &buf, zerolog.DebugLevel).WithContext(context.Background())

	store, _ := newStore(t, nil)
	_, err := store.Read(ctx, ReadOptions{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "default conf file not found")
}

func TestReadCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store, _ := newStore(t, nil)
	_, err := store.Read(ctx, ReadOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	store, memfs := newStore(t, nil)
	written, err := store.Write(context.Background(), bitcoinconf.Config{
		"rpcuser": "alice",
		"rpcauth": []string{"a", "b"},
	}, WriteOptions{GenerationTag: "test-run"})
	require.NoError(t, err)

	require.Len(t, written, 1)
	path := filepath.Join(datadir, "bitcoin.conf")
	assert.Equal(t, path, written[0].Path)
	assert.Contains(t, written[0].Contents, "written by")
	assert.Contains(t, written[0].Contents, "# test-run\n")
	assert.Contains(t, written[0].Contents, "rpcauth=a\nrpcauth=b\nrpcuser=alice\n")

	onDisk, err := afero.ReadFile(memfs, path)
	require.NoError(t, err)
	assert.Equal(t, written[0].Contents, string(onDisk))

	exists, err := afero.Exists(memfs, path+".bak")
	require.NoError(t, err)
	assert.False(t, exists, "no backup without a previous file")

	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, bitcoinconf.Config{"rpcuser": "alice", "rpcauth": []string{"a", "b"}}, result.Config)
}

func TestWriteBacksUpExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(datadir, "bitcoin.conf")
	store, memfs := newStore(t, map[string]string{path: "rpcuser=old"})

	_, err := store.Write(context.Background(), bitcoinconf.Config{"rpcuser": "new"}, WriteOptions{})
	require.NoError(t, err)

	backup, err := afero.ReadFile(memfs, path+".bak")
	require.NoError(t, err)
	assert.Equal(t, "rpcuser=old", string(backup))

	current, err := afero.ReadFile(memfs, path)
	require.NoError(t, err)
	assert.Contains(t, string(current), "rpcuser=new")
}

func TestWriteNetworkSections(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	in := bitcoinconf.Config{"regtest": true, "rpcport": 1234.0, "vbparams": []string{"x:1:2"}}
	written, err := store.Write(context.Background(), in, WriteOptions{})
	require.NoError(t, err)
	assert.Contains(t, written[0].Contents, "[regtest]\nrpcport=1234\nvbparams=x:1:2\n")

	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, in, result.Config)
}

func TestWriteMissingDirectory(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, nil)
	_, err := store.Write(context.Background(), bitcoinconf.Config{}, WriteOptions{Datadir: "/does/not/exist"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestWriteRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	store, memfs := newStore(t, nil)
	_, err := store.Write(context.Background(), bitcoinconf.Config{"rpcpassword": "a#b"}, WriteOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, conferr.ErrRPCPasswordComment))

	exists, err := afero.Exists(memfs, filepath.Join(datadir, "bitcoin.conf"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDefaultDatadir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/home/u", ".bitcoin"), defaultDatadir("linux", "/home/u"))
	assert.Equal(t, filepath.Join("/Users/u", "Library", "Application Support", "Bitcoin"), defaultDatadir("darwin", "/Users/u"))
	assert.Equal(t, filepath.Join("C:/Users/u", "AppData", "Roaming", "Bitcoin"), defaultDatadir("windows", "C:/Users/u"))
	assert.NotEmpty(t, DefaultDatadir())
}

func TestPlan(t *testing.T) {
	t.Parallel()

	path := filepath.Join(datadir, "bitcoin.conf")
	store, memfs := newStore(t, map[string]string{path: "rpcuser=old\ntxindex=1"})

	plan, err := store.Plan(context.Background(), bitcoinconf.Config{"rpcuser": "new", "server": true}, WriteOptions{})
	require.NoError(t, err)

	assert.Equal(t, path, plan.Path)
	assert.Contains(t, plan.Contents, "rpcuser=new\nserver=1\n")
	require.NotNil(t, plan.Changes.Base)
	assert.Equal(t, bitcoinconf.Config{"rpcuser": "old", "txindex": true}, plan.Changes.Base.Config)
	assert.Equal(t, []string{"rpcuser", "server", "txindex"}, plan.Changes.Diff.Names())

	current, err := afero.ReadFile(memfs, path)
	require.NoError(t, err)
	assert.Equal(t, "rpcuser=old\ntxindex=1", string(current), "plan must not write")
}

func TestPlanUnparsableExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(datadir, "bitcoin.conf")
	store, memfs := newStore(t, map[string]string{path: "this is not a conf file"})

	plan, err := store.Plan(context.Background(), bitcoinconf.Config{"rpcuser": "x"}, WriteOptions{})
	require.NoError(t, err)
	require.NotNil(t, plan.Changes.Base)
	assert.Nil(t, plan.Changes.Base.Config)
	assert.Equal(t, map[string]any{"rpcuser": "x"}, plan.Changes.Diff.Added)

	written, err := store.Write(context.Background(), bitcoinconf.Config{"rpcuser": "x"}, WriteOptions{})
	require.NoError(t, err)
	assert.Len(t, written[0].Checksum, 64)

	backup, err := afero.ReadFile(memfs, path+".bak")
	require.NoError(t, err)
	assert.Equal(t, "this is not a conf file", string(backup))
}

// countingParser wraps the text parser and records the entry files it parses.
type countingParser struct {
	*confrenderer.TextParser
	parsed []string
}

func (p *countingParser) Parse(ctx context.Context, bundle *bitcoinconf.Bundle, opts bitcoinconf.ParseOptions) (*ast.Document, error) {
	if bundle != nil && len(bundle.Packages) > 0 {
		p.parsed = append(p.parsed, bundle.Packages[0].Name)
	}
	return p.TextParser.Parse(ctx, bundle, opts)
}

func TestWithBackend(t *testing.T) {
	t.Parallel()

	path := filepath.Join(datadir, "bitcoin.conf")
	memfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memfs, path, []byte("rpcuser=old"), 0o644))

	parser := &countingParser{TextParser: confrenderer.NewTextParser()}
	store := New(memfs,
		WithEnviron(map[string]string{}),
		WithDefaultDatadir(datadir),
		WithBackend(backend.New(confrenderer.NewPlainTextRenderer(), parser)),
	)

	result, err := store.Read(context.Background(), ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "old", result.Config["rpcuser"])

	_, err = store.Write(context.Background(), bitcoinconf.Config{"rpcuser": "new"}, WriteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{path, path}, parser.parsed)
}
