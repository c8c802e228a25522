package bitcoind

import (
	"fmt"
	"sort"

	commonv1 "github.com/honeybbq/netjson/gen/go/netjson/common/v1"
	"google.golang.org/protobuf/types/known/structpb"

	common "github.com/honeybbq/bitcoinconf/domain/utils"
	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

// Config 表示 bitcoind 领域模型：已按网络解析的扁平配置。
type Config struct {
	Values  bitcoinconf.Config
	Network bitcoinconf.Network
	// Files 记录解析时读取的 includeconf 文件。
	Files []*commonv1.IncludedFile
}

// FromProto builds a Config from a JSON-like Struct keyed by option name.
//
// Each field is coerced to its option's declared type: strings and booleans
// as-is, numbers to float64, and string arrays from either a list of strings
// or a single string.
func FromProto(msg *structpb.Struct) (*Config, error) {
	if msg == nil {
		return nil, conferr.New(conferr.KindValidation, fmt.Errorf("config is nil"))
	}

	values := make(bitcoinconf.Config, len(msg.GetFields()))
	for _, name := range sortedFields(msg) {
		option, err := options.Lookup(name)
		if err != nil {
			return nil, err
		}
		value, err := coerce(name, option.Type, msg.GetFields()[name])
		if err != nil {
			return nil, err
		}
		values[name] = value
	}

	network, err := values.Network()
	if err != nil {
		return nil, err
	}
	return &Config{Values: values, Network: network}, nil
}

// ToProto 将配置转换为 structpb.Struct。
func (c *Config) ToProto() (*structpb.Struct, error) {
	if c == nil {
		return nil, conferr.New(conferr.KindInternal, fmt.Errorf("config is nil"))
	}
	fields := make(map[string]any, len(c.Values))
	for name, value := range c.Values {
		if list, ok := value.([]string); ok {
			value = common.ToAnySlice(list)
		}
		fields[name] = value
	}
	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, conferr.New(conferr.KindInternal, fmt.Errorf("convert to struct: %w", err))
	}
	return msg, nil
}

// ToAST lays the flat configuration out in sections so that parsing the
// rendered document resolves back to the same values.
//
// On main everything is written at the top level. On test and regtest the
// options that only apply to main, or are not allowed in main, go into the
// network's section; the rest stay at the top level.
func (c *Config) ToAST() (*ast.Document, error) {
	if c == nil {
		return nil, conferr.New(conferr.KindValidation, fmt.Errorf("config is nil"))
	}

	network := c.Network
	if network == "" {
		var err error
		if network, err = c.Values.Network(); err != nil {
			return nil, err
		}
	}

	doc := ast.NewDocument()
	for name, value := range c.Values {
		option, err := options.Lookup(name)
		if err != nil {
			return nil, err
		}
		section, err := sectionFor(name, option, network)
		if err != nil {
			return nil, err
		}
		doc.Set(section, name, common.CopyStrings(value))
	}
	doc.Files = append(doc.Files, c.Files...)
	return doc, nil
}

// FromAST resolves doc for its active network, optionally filling defaults.
func FromAST(doc *ast.Document, withDefaults bool) (*Config, error) {
	if doc == nil {
		return nil, conferr.New(conferr.KindParse, fmt.Errorf("document is nil"))
	}
	values, network, err := bitcoinconf.Resolve(doc)
	if err != nil {
		return nil, err
	}
	if withDefaults {
		values = bitcoinconf.WithDefaults(values, network)
	}
	return &Config{
		Values:  values,
		Network: network,
		Files:   append([]*commonv1.IncludedFile(nil), doc.Files...),
	}, nil
}

func sectionFor(name string, option options.Descriptor, network bitcoinconf.Network) (ast.Section, error) {
	switch {
	case option.OnlyAllowedInTop:
		return ast.SectionTop, nil
	case network == bitcoinconf.NetworkMain && option.NotAllowedInMain:
		return "", conferr.Newf(conferr.KindValidation, conferr.ErrNotAllowedInSection,
			"option %q is not allowed on %q", name, network)
	case network != bitcoinconf.NetworkMain && (option.OnlyAppliesToMain || option.NotAllowedInMain):
		return ast.Section(network), nil
	default:
		return ast.SectionTop, nil
	}
}

func coerce(name string, typ options.TypeName, v *structpb.Value) (any, error) {
	switch typ {
	case options.TypeString:
		if s, ok := v.GetKind().(*structpb.Value_StringValue); ok {
			return s.StringValue, nil
		}
	case options.TypeBoolean:
		if b, ok := v.GetKind().(*structpb.Value_BoolValue); ok {
			return b.BoolValue, nil
		}
	case options.TypeNumber:
		if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
			return n.NumberValue, nil
		}
	case options.TypeStringArray:
		list, index, ok := common.StringList(v)
		if ok {
			return list, nil
		}
		if index >= 0 {
			return nil, conferr.New(conferr.KindValidation,
				fmt.Errorf("option %q: element %d must be a string", name, index))
		}
	}
	return nil, conferr.New(conferr.KindValidation, fmt.Errorf("option %q: expected %s value", name, typ))
}

func sortedFields(msg *structpb.Struct) []string {
	names := make([]string, 0, len(msg.GetFields()))
	for name := range msg.GetFields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
