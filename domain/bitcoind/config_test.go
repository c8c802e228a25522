package bitcoind

import (
	"errors"
	"testing"

	commonv1 "github.com/honeybbq/netjson/gen/go/netjson/common/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
)

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	msg, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return msg
}

func TestFromProto(t *testing.T) {
	t.Parallel()

	cfg, err := FromProto(mustStruct(t, map[string]any{
		"rpcuser":     "alice",
		"rpcport":     8332,
		"blocksonly":  true,
		"rpcauth":     []any{"a", "b"},
		"includeconf": "extra.conf",
		"testnet":     true,
	}))
	require.NoError(t, err)

	assert.Equal(t, bitcoinconf.NetworkTest, cfg.Network)
	assert.Equal(t, bitcoinconf.Config{
		"rpcuser":     "alice",
		"rpcport":     8332.0,
		"blocksonly":  true,
		"rpcauth":     []string{"a", "b"},
		"includeconf": []string{"extra.conf"},
		"testnet":     true,
	}, cfg.Values)
}

func TestFromProtoErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]any
		want   error
	}{
		{"unknown option", map[string]any{"foo": "bar"}, conferr.ErrUnknownOption},
		{"conflicting networks", map[string]any{"regtest": true, "testnet": true}, conferr.ErrConflictingNetworks},
		{"wrong scalar type", map[string]any{"rpcport": "8332"}, nil},
		{"wrong boolean type", map[string]any{"blocksonly": 1}, nil},
		{"wrong list element", map[string]any{"rpcauth": []any{"a", 1}}, nil},
		{"null list", map[string]any{"rpcauth": nil}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromProto(mustStruct(t, tt.fields))
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			} else {
				assert.Equal(t, conferr.KindValidation, conferr.KindOf(err))
			}
		})
	}

	_, err := FromProto(nil)
	require.Error(t, err)
}

func TestToProto(t *testing.T) {
	t.Parallel()

	cfg := &Config{Values: bitcoinconf.Config{
		"rpcauth": []string{"a", "b"},
		"rpcport": 1.0,
		"txindex": false,
	}}
	msg, err := cfg.ToProto()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"rpcauth": []any{"a", "b"},
		"rpcport": 1.0,
		"txindex": false,
	}, msg.AsMap())

	back, err := FromProto(msg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Values, back.Values)
}

func TestToASTMain(t *testing.T) {
	t.Parallel()

	cfg := &Config{Values: bitcoinconf.Config{"rpcport": 1.0, "rpcuser": "u"}}
	doc, err := cfg.ToAST()
	require.NoError(t, err)

	assert.Equal(t, map[ast.Section]ast.Values{
		ast.SectionTop: {"rpcport": 1.0, "rpcuser": "u"},
	}, doc.Sections)
}

func TestToASTNetworkSections(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Network: bitcoinconf.NetworkRegtest,
		Values: bitcoinconf.Config{
			"regtest":  true,
			"rpcport":  18000.0,
			"vbparams": []string{"x:1:2"},
			"rpcuser":  "u",
			"datadir":  "/data",
		},
		Files: []*commonv1.IncludedFile{{Path: "a.conf"}},
	}
	doc, err := cfg.ToAST()
	require.NoError(t, err)

	assert.Equal(t, ast.Values{"regtest": true, "rpcuser": "u", "datadir": "/data"}, doc.Sections[ast.SectionTop])
	assert.Equal(t, ast.Values{"rpcport": 18000.0, "vbparams": []string{"x:1:2"}}, doc.Sections[ast.SectionRegtest])
	require.Len(t, doc.Files, 1)

	// Resolving the laid-out document yields the same configuration.
	back, err := FromAST(doc, false)
	require.NoError(t, err)
	assert.Equal(t, cfg.Values, back.Values)
	assert.Equal(t, bitcoinconf.NetworkRegtest, back.Network)
}

func TestToASTDerivesNetwork(t *testing.T) {
	t.Parallel()

	cfg := &Config{Values: bitcoinconf.Config{"testnet": true, "port": 1.0}}
	doc, err := cfg.ToAST()
	require.NoError(t, err)

	got, ok := doc.Get(ast.SectionTest, "port")
	require.True(t, ok)
	assert.Equal(t, 1.0, got)
}

func TestToASTErrors(t *testing.T) {
	t.Parallel()

	_, err := (&Config{Values: bitcoinconf.Config{"vbparams": []string{"x"}}}).ToAST()
	assert.True(t, errors.Is(err, conferr.ErrNotAllowedInSection), "got %v", err)

	_, err = (&Config{Values: bitcoinconf.Config{"bogus": "x"}}).ToAST()
	assert.True(t, errors.Is(err, conferr.ErrUnknownOption), "got %v", err)

	_, err = (&Config{Values: bitcoinconf.Config{"regtest": true, "testnet": true}}).ToAST()
	assert.True(t, errors.Is(err, conferr.ErrConflictingNetworks), "got %v", err)

	var nilCfg *Config
	_, err = nilCfg.ToAST()
	require.Error(t, err)
}

func TestFromAST(t *testing.T) {
	t.Parallel()

	doc := ast.NewDocument()
	doc.Set(ast.SectionTop, "testnet", true)
	doc.Set(ast.SectionTest, "rpcuser", "t")
	doc.Files = []*commonv1.IncludedFile{{Path: "x.conf"}}

	cfg, err := FromAST(doc, false)
	require.NoError(t, err)
	assert.Equal(t, bitcoinconf.Config{"testnet": true, "rpcuser": "t"}, cfg.Values)
	assert.Len(t, cfg.Files, 1)

	cfg, err = FromAST(doc, true)
	require.NoError(t, err)
	assert.Equal(t, 18332.0, cfg.Values["rpcport"])
	assert.Equal(t, "t", cfg.Values["rpcuser"])

	_, err = FromAST(nil, false)
	require.Error(t, err)
	assert.Equal(t, conferr.KindParse, conferr.KindOf(err))
}
