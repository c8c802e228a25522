package bitcoinconf

import (
	"strings"

	commonv1 "github.com/honeybbq/netjson/gen/go/netjson/common/v1"

	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
)

const includeOption = "includeconf"

// ParseTextOptions controls ParseText.
type ParseTextOptions struct {
	// EntrySection is the section active on the first line. Empty means top.
	EntrySection ast.Section
	// NoIncludes rejects any includeconf that would be read with ErrNestedInclude.
	NoIncludes bool
	// Reader loads includeconf targets.
	Reader FileReader
}

type include struct {
	path    string
	section ast.Section
}

// ParseText parses the contents of one bitcoin.conf file (similar to
// bitcoind's ReadConfigStream) into a sectioned document, then reads and
// composes the includeconf targets of the top level and of the active
// network's section. Includes listed under inactive networks stay unread.
//
// Each failing line is reported as a *conferr.ParseError carrying its
// 1-based line number and original text. Included files are parsed in the
// section that listed them and may not include further files. Their values
// are composed beneath the entry file's: the entry file wins for scalar
// options, while array options list the included values first.
func ParseText(text string, opts ParseTextOptions) (*ast.Document, error) {
	entrySection := opts.EntrySection
	if entrySection == "" {
		entrySection = ast.SectionTop
	}

	entry, err := parseLines(text, entrySection)
	if err != nil {
		return nil, err
	}

	included := ast.NewDocument()
	if err := readIncludes(included, includesIn(entry, ast.SectionTop), opts); err != nil {
		return nil, err
	}

	// Network sections only pull in the includes of the network selected by
	// the top level, entry file and top-level includes together.
	if hasIncludes(entry, ast.NetworkSections...) {
		network, err := selectNetwork(topFlag(entry, included, "regtest"), topFlag(entry, included, "testnet"))
		if err != nil {
			return nil, err
		}
		if err := readIncludes(included, includesIn(entry, ast.Section(network)), opts); err != nil {
			return nil, err
		}
	}

	if len(included.Files) == 0 {
		return entry, nil
	}
	overlayInto(included, entry)
	return included, nil
}

// readIncludes parses each include in the section that listed it and folds
// the results into dst in order.
func readIncludes(dst *ast.Document, includes []include, opts ParseTextOptions) error {
	if len(includes) == 0 {
		return nil
	}
	if opts.NoIncludes {
		return conferr.Newf(conferr.KindParse, conferr.ErrNestedInclude, "%s", includes[0].path)
	}
	if opts.Reader == nil {
		return conferr.New(conferr.KindIO, conferr.ErrNoReader)
	}

	for _, inc := range includes {
		content, err := opts.Reader.ReadFile(inc.path)
		if err != nil {
			return err
		}
		nested, err := parseLines(content, inc.section)
		if err != nil {
			return err
		}
		if hasIncludes(nested, ast.Sections...) {
			return conferr.Newf(conferr.KindParse, conferr.ErrNestedInclude, "%s", inc.path)
		}
		foldInto(dst, nested)
		dst.Files = append(dst.Files, &commonv1.IncludedFile{
			Path:     inc.path,
			Contents: content,
		})
	}
	return nil
}

// ParseConfig parses text and resolves it, applying defaults when opts asks for them.
func ParseConfig(text string, opts ParseOptions) (Config, Network, error) {
	doc, err := ParseText(text, ParseTextOptions{Reader: opts.Reader})
	if err != nil {
		return nil, "", err
	}
	cfg, network, err := Resolve(doc)
	if err != nil {
		return nil, "", err
	}
	if opts.WithDefaults {
		cfg = WithDefaults(cfg, network)
	}
	return cfg, network, nil
}

func parseLines(text string, section ast.Section) (*ast.Document, error) {
	doc := ast.NewDocument()
	for index, original := range strings.Split(text, "\n") {
		next, err := parseLineInto(doc, original, section)
		if err != nil {
			return nil, &conferr.ParseError{Line: index + 1, Text: strings.TrimSuffix(original, "\r"), Err: err}
		}
		section = next
	}
	return doc, nil
}

// parseLineInto folds one physical line into doc and returns the section
// active after it.
func parseLineInto(doc *ast.Document, original string, section ast.Section) (ast.Section, error) {
	stripped, err := StripComment(original)
	if err != nil {
		return section, err
	}
	line, err := ParseLine(stripped)
	if err != nil {
		return section, err
	}

	switch line.Kind {
	case LineEmpty:
		return section, nil
	case LineSection:
		return line.Section, nil
	}

	frag, err := Interpret(line, section)
	if err != nil {
		return section, err
	}
	foldInto(doc, frag)
	return section, nil
}

// includesIn lists the includeconf paths of one section in encounter order.
func includesIn(doc *ast.Document, section ast.Section) []include {
	paths, _ := doc.Sections[section][includeOption].([]string)
	out := make([]include, 0, len(paths))
	for _, path := range paths {
		out = append(out, include{path: path, section: section})
	}
	return out
}

func hasIncludes(doc *ast.Document, sections ...ast.Section) bool {
	for _, section := range sections {
		if _, ok := doc.Sections[section][includeOption]; ok {
			return true
		}
	}
	return false
}

// topFlag reads a top-level network flag the way the composed document
// will: the entry file's value wins over the included one.
func topFlag(entry, included *ast.Document, name string) bool {
	if v, ok := entry.Sections[ast.SectionTop][name]; ok {
		b, _ := v.(bool)
		return b
	}
	return flagSet(included.Sections[ast.SectionTop], name)
}
