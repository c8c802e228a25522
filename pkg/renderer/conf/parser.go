package conf

import (
	"context"
	"fmt"
	"io/fs"

	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
)

// TextParser 将 Bundle 中的 bitcoin.conf 文本解析为 AST。
type TextParser struct{}

func NewTextParser() *TextParser {
	return &TextParser{}
}

// Parse reads the first package as the entry file. includeconf targets are
// served from bundle.Files first and from opts.Reader otherwise.
func (p *TextParser) Parse(ctx context.Context, bundle *bitcoinconf.Bundle, opts bitcoinconf.ParseOptions) (*ast.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if bundle == nil || len(bundle.Packages) == 0 {
		return nil, conferr.New(conferr.KindParse, fmt.Errorf("bundle has no bitcoin.conf package"))
	}

	reader := &bundleReader{ctx: ctx, files: bundle.Files, fallback: opts.Reader}
	return bitcoinconf.ParseText(string(bundle.Packages[0].Content), bitcoinconf.ParseTextOptions{
		Reader: reader,
	})
}

type bundleReader struct {
	ctx      context.Context
	files    []bitcoinconf.File
	fallback bitcoinconf.FileReader
}

func (r *bundleReader) ReadFile(path string) (string, error) {
	if err := r.ctx.Err(); err != nil {
		return "", err
	}
	for _, file := range r.files {
		if file.Path == path {
			return string(file.Content), nil
		}
	}
	if r.fallback == nil {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return r.fallback.ReadFile(path)
}
