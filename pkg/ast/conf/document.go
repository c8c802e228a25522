package conf

import commonv1 "github.com/honeybbq/netjson/gen/go/netjson/common/v1"

// Section 表示 bitcoin.conf 中的配置段。
type Section string

const (
	// SectionTop holds assignments made before any "[...]" header.
	SectionTop     Section = "top"
	SectionMain    Section = "main"
	SectionTest    Section = "test"
	SectionRegtest Section = "regtest"
)

// Sections lists every section in the order they are composed and rendered.
var Sections = []Section{SectionTop, SectionMain, SectionTest, SectionRegtest}

// NetworkSections lists the sections that may appear as "[name]" headers.
var NetworkSections = []Section{SectionMain, SectionTest, SectionRegtest}

// Values maps option names to typed values: string, []string, bool or float64.
type Values map[string]any

// Document 是按段组织的完整配置。
type Document struct {
	Sections map[Section]Values
	// Files 记录解析过程中读取的 includeconf 文件。
	Files []*commonv1.IncludedFile
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{Sections: make(map[Section]Values)}
}

// Get returns the value of name in section.
func (d *Document) Get(section Section, name string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.Sections[section][name]
	return v, ok
}

// Set stores value under section/name, creating the section if needed.
func (d *Document) Set(section Section, name string, value any) {
	if d.Sections == nil {
		d.Sections = make(map[Section]Values)
	}
	values, ok := d.Sections[section]
	if !ok {
		values = make(Values)
		d.Sections[section] = values
	}
	values[name] = value
}

// Empty reports whether no section holds a value.
func (d *Document) Empty() bool {
	if d == nil {
		return true
	}
	for _, values := range d.Sections {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy; slices are copied so the clone can be appended to freely.
func (d *Document) Clone() *Document {
	out := NewDocument()
	if d == nil {
		return out
	}
	for section, values := range d.Sections {
		out.Sections[section] = values.Clone()
	}
	out.Files = append(out.Files, d.Files...)
	return out
}

// Clone returns a copy of v with its slices copied.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for name, value := range v {
		if list, ok := value.([]string); ok {
			value = append([]string(nil), list...)
		}
		out[name] = value
	}
	return out
}
