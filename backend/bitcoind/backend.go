package bitcoind

import (
	"context"
	"errors"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/honeybbq/bitcoinconf/domain/bitcoind"
	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/renderer"
	confrenderer "github.com/honeybbq/bitcoinconf/pkg/renderer/conf"
)

// MetadataNetwork is the Bundle.Metadata.Custom key holding the resolved network.
const MetadataNetwork = "network"

type Backend struct {
	renderer renderer.Renderer[*ast.Document]
	parser   renderer.Parser[*ast.Document]
}

var _ bitcoinconf.Backend = (*Backend)(nil)

func New(r renderer.Renderer[*ast.Document], p renderer.Parser[*ast.Document]) *Backend {
	return &Backend{renderer: r, parser: p}
}

// NewDefault wires the plain text renderer and parser.
func NewDefault() *Backend {
	return New(confrenderer.NewPlainTextRenderer(), confrenderer.NewTextParser())
}

func (b *Backend) Name() string {
	return "bitcoind"
}

func (b *Backend) ToNative(ctx context.Context, cfg proto.Message, opts bitcoinconf.RenderOptions) (*bitcoinconf.Bundle, error) {
	msg, ok := cfg.(*structpb.Struct)
	if !ok {
		return nil, conferr.New(conferr.KindValidation, errors.New("expected Struct payload"))
	}
	domainCfg, err := domain.FromProto(msg)
	if err != nil {
		return nil, err
	}
	return b.Render(ctx, domainCfg, opts)
}

func (b *Backend) ToProto(ctx context.Context, bundle *bitcoinconf.Bundle, opts bitcoinconf.ParseOptions) (proto.Message, error) {
	cfg, err := b.Parse(ctx, bundle, opts)
	if err != nil {
		return nil, err
	}
	return cfg.ToProto()
}

// Render lays cfg out in sections and renders it.
func (b *Backend) Render(ctx context.Context, cfg *domain.Config, opts bitcoinconf.RenderOptions) (*bitcoinconf.Bundle, error) {
	doc, err := cfg.ToAST()
	if err != nil {
		return nil, err
	}
	bundle, err := b.renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	network, err := bitcoinconf.ActiveNetwork(doc)
	if err != nil {
		return nil, err
	}
	bundle.Metadata.Custom[MetadataNetwork] = string(network)
	return bundle, nil
}

// Parse parses bundle and resolves it for its active network.
func (b *Backend) Parse(ctx context.Context, bundle *bitcoinconf.Bundle, opts bitcoinconf.ParseOptions) (*domain.Config, error) {
	doc, err := b.parser.Parse(ctx, bundle, opts)
	if err != nil {
		return nil, err
	}
	return domain.FromAST(doc, opts.WithDefaults)
}
