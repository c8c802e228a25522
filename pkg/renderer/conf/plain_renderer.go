package conf

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

const (
	// Format 是 Bundle 中记录的格式标识。
	Format = "bitcoin.conf"
	// BackendName 是生成 Bundle 的后端名称。
	BackendName = "bitcoind"
	// DefaultPackageName is the entry file name used when RenderOptions leaves it empty.
	DefaultPackageName = "bitcoin.conf"

	writtenBy = "bitcoinconf"
)

// PlainTextRenderer 将 bitcoin.conf AST 渲染为纯文本。
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render 实现 renderer.Renderer。
//
// The output starts with a "written by" comment, then the top section's
// options sorted by name, then one "[name]" block per non-empty network
// section. Array values produce one line per element.
func (r *PlainTextRenderer) Render(ctx context.Context, doc *ast.Document, opts bitcoinconf.RenderOptions) (*bitcoinconf.Bundle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if doc == nil {
		return nil, conferr.New(conferr.KindRender, fmt.Errorf("bitcoin.conf document is nil"))
	}

	timestamp := opts.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# This file was written by %s on %s\n", writtenBy, timestamp.Format(time.RFC3339))
	if opts.GenerationTag != "" {
		fmt.Fprintf(&b, "# %s\n", opts.GenerationTag)
	}

	for _, section := range ast.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values := doc.Sections[section]
		if len(values) == 0 {
			continue
		}
		if section != ast.SectionTop {
			fmt.Fprintf(&b, "\n[%s]\n", section)
		}
		for _, name := range sortedKeys(values) {
			lines, err := formatOption(name, values[name])
			if err != nil {
				return nil, err
			}
			for _, line := range lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	name := opts.PackageName
	if name == "" {
		name = DefaultPackageName
	}

	// 创建 Bundle
	bundle := bitcoinconf.NewBundle(Format, BackendName)
	bundle.Metadata.Generated = timestamp
	bundle.Metadata.Version = opts.GenerationTag
	bundle.Packages = append(bundle.Packages, bitcoinconf.Package{
		Name:    name,
		Content: []byte(b.String()),
	})

	// 处理 includeconf 文件
	for _, file := range doc.Files {
		if file == nil {
			continue
		}
		mode, err := parseFileMode(file.GetMode())
		if err != nil {
			return nil, err
		}
		bundle.Files = append(bundle.Files, bitcoinconf.File{
			Path:    file.GetPath(),
			Mode:    mode,
			Content: []byte(file.GetContents()),
		})
	}

	return bundle, nil
}

// formatOption renders name's value as "name=value" lines.
func formatOption(name string, value any) ([]string, error) {
	if _, err := options.Lookup(name); err != nil {
		return nil, err
	}

	var raw []string
	switch v := value.(type) {
	case string:
		raw = []string{v}
	case []string:
		raw = v
	case bool:
		raw = []string{formatBool(v)}
	case float64:
		raw = []string{strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return nil, conferr.New(conferr.KindRender, fmt.Errorf("option %q: unsupported value type %T", name, value))
	}

	lines := make([]string, 0, len(raw))
	for _, s := range raw {
		if err := checkValue(name, s); err != nil {
			return nil, err
		}
		lines = append(lines, name+"="+s)
	}
	return lines, nil
}

// checkValue rejects values that would not read back unchanged.
func checkValue(name, value string) error {
	switch {
	case strings.ContainsAny(value, "\r\n"):
		return conferr.New(conferr.KindRender, fmt.Errorf("option %q: value contains a line break", name))
	case strings.Contains(value, "#"):
		if name == "rpcpassword" {
			return conferr.New(conferr.KindRender, conferr.ErrRPCPasswordComment)
		}
		return conferr.New(conferr.KindRender, fmt.Errorf("option %q: value contains %q", name, "#"))
	case value != strings.TrimSpace(value):
		return conferr.New(conferr.KindRender, fmt.Errorf("option %q: value has surrounding whitespace", name))
	}
	return nil
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func parseFileMode(value string) (fs.FileMode, error) {
	if value == "" {
		return 0o644, nil
	}
	parsed, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, conferr.New(conferr.KindValidation, fmt.Errorf("invalid file mode %q: %w", value, err))
	}
	return fs.FileMode(parsed), nil
}

func sortedKeys(m ast.Values) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
