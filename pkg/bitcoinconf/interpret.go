package bitcoinconf

import (
	"fmt"
	"strings"

	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

// Interpret resolves an assignment line read while active was the current
// section into a single-entry document.
//
// In the top section an option may be qualified with a network
// ("test.rpcuser=x"); the value then lands in that network's section.
func Interpret(line Line, active ast.Section) (*ast.Document, error) {
	if line.Kind != LineAssignment {
		return nil, conferr.New(conferr.KindInternal, fmt.Errorf("line is not an assignment"))
	}

	name := line.Name
	section := active
	if dot := strings.IndexByte(name, '.'); dot != -1 {
		if active != ast.SectionTop {
			return nil, conferr.Newf(conferr.KindParse, conferr.ErrDotNotationOnlyInTop, "%q in [%s]", name, active)
		}
		qualified, err := ParseSection(name[:dot])
		if err != nil {
			return nil, err
		}
		section = qualified
		name = name[dot+1:]
	}

	option, err := options.Lookup(name)
	if err != nil {
		return nil, err
	}
	if option.OnlyAllowedInTop && section != ast.SectionTop {
		return nil, conferr.Newf(conferr.KindValidation, conferr.ErrNotAllowedInSection,
			"option %q must be at the top level", name)
	}
	if section == ast.SectionMain && option.NotAllowedInMain {
		return nil, conferr.Newf(conferr.KindValidation, conferr.ErrNotAllowedInSection,
			"option %q is not allowed in %q section", name, section)
	}

	value, err := Cast(line.Value, option.Type)
	if err != nil {
		return nil, err
	}

	doc := ast.NewDocument()
	doc.Set(section, name, value)
	return doc, nil
}
