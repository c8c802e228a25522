package bitcoinconf

import (
	"context"

	"google.golang.org/protobuf/proto"
)

// Backend defines the bidirectional conversion interface between a structured
// configuration message and its native text format.
type Backend interface {
	// Name returns the backend identifier (e.g., "bitcoind").
	Name() string

	// ToNative renders a proto message to native DSL format.
	// This is the forward conversion: structured config → bitcoin.conf text.
	ToNative(ctx context.Context, cfg proto.Message, opts RenderOptions) (*Bundle, error)

	// ToProto parses native DSL back to a proto message.
	// This is the reverse conversion: bitcoin.conf text → structured config.
	ToProto(ctx context.Context, bundle *Bundle, opts ParseOptions) (proto.Message, error)
}
