package bitcoinconf

import (
	"strings"

	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
	"github.com/honeybbq/bitcoinconf/pkg/conferr"
)

// LineKind classifies a stripped physical line.
type LineKind int

const (
	LineEmpty LineKind = iota
	LineSection
	LineAssignment
)

// Line is one classified line of a bitcoin.conf file.
type Line struct {
	Kind LineKind
	// Section is set for LineSection.
	Section ast.Section
	// Name is the trimmed left-hand side of an assignment, possibly
	// dot-qualified ("test.rpcuser").
	Name string
	// Value is the trimmed right-hand side of an assignment.
	Value string
}

const passwordOption = "rpcpassword"

// StripComment removes everything from the first '#' to the end of line and
// trims the rest. Password characters may contain '#', so an rpcpassword
// line containing '#' anywhere is rejected instead of being truncated.
func StripComment(line string) (string, error) {
	hash := strings.IndexByte(line, '#')
	if hash == -1 {
		return strings.TrimSpace(line), nil
	}
	password, err := isPasswordLine(line, hash)
	if err != nil {
		return "", err
	}
	if password {
		return "", conferr.New(conferr.KindParse, conferr.ErrRPCPasswordComment)
	}
	return strings.TrimSpace(line[:hash]), nil
}

// isPasswordLine reports whether the option named before the first '=' or
// '#' is rpcpassword. A network prefix on it must be valid.
func isPasswordLine(line string, hash int) (bool, error) {
	end := strings.IndexByte(line, '=')
	if end == -1 || hash < end {
		end = hash
	}
	name := strings.TrimSpace(line[:end])
	dot := strings.IndexByte(name, '.')
	if dot == -1 {
		return name == passwordOption, nil
	}
	if name[dot+1:] != passwordOption {
		return false, nil
	}
	if _, err := ParseSection(name[:dot]); err != nil {
		return false, err
	}
	return true, nil
}

// ParseLine classifies a comment-stripped, trimmed line.
func ParseLine(line string) (Line, error) {
	if line == "" {
		return Line{Kind: LineEmpty}, nil
	}

	// [main/test/regtest]
	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		section, err := ParseSection(line[1 : len(line)-1])
		if err != nil {
			return Line{}, err
		}
		return Line{Kind: LineSection, Section: section}, nil
	}

	// name = value
	eq := strings.IndexByte(line, '=')
	if eq == -1 {
		return Line{}, conferr.New(conferr.KindParse, conferr.ErrMissingEquals)
	}
	name := strings.TrimSpace(line[:eq])
	if name == "" {
		return Line{}, conferr.New(conferr.KindParse, conferr.ErrEmptyOptionName)
	}
	return Line{
		Kind:  LineAssignment,
		Name:  name,
		Value: strings.TrimSpace(line[eq+1:]),
	}, nil
}

// ParseSection validates a network section name as written in a header or a
// dot-notation prefix.
func ParseSection(name string) (ast.Section, error) {
	for _, section := range ast.NetworkSections {
		if name == string(section) {
			return section, nil
		}
	}
	return "", conferr.Newf(conferr.KindParse, conferr.ErrInvalidSection, "got %q", name)
}
