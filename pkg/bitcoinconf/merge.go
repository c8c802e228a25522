package bitcoinconf

import (
	ast "github.com/honeybbq/bitcoinconf/pkg/ast/conf"
)

// Merge folds frag into acc and returns the result; neither input is modified.
//
// Merge rules, per (section, option):
//   - string, number, boolean: the first value wins, frag's value is dropped
//     if acc already holds one
//   - string[]: frag's values are appended to acc's in encounter order
//
// includeconf is a string[] option, so repeated includeconf lines accumulate.
func Merge(acc, frag *ast.Document) *ast.Document {
	out := acc.Clone()
	foldInto(out, frag)
	return out
}

// foldInto applies the Merge rules to dst in place. dst must be owned by the caller.
func foldInto(dst, src *ast.Document) {
	if src == nil {
		return
	}
	for _, section := range ast.Sections {
		for name, value := range src.Sections[section] {
			existing, found := dst.Get(section, name)
			dst.Set(section, name, mergeValue(existing, found, value, false))
		}
	}
	dst.Files = append(dst.Files, src.Files...)
}

// overlayInto is foldInto with the scalar rule reversed: src's scalars replace
// dst's. Arrays still append src after dst.
func overlayInto(dst, src *ast.Document) {
	if src == nil {
		return
	}
	for _, section := range ast.Sections {
		for name, value := range src.Sections[section] {
			existing, found := dst.Get(section, name)
			dst.Set(section, name, mergeValue(existing, found, value, true))
		}
	}
	dst.Files = append(dst.Files, src.Files...)
}

// overlayValues overlays src onto dst with overlayInto's rules.
func overlayValues(dst, src ast.Values) {
	for name, value := range src {
		existing, found := dst[name]
		dst[name] = mergeValue(existing, found, value, true)
	}
}

func mergeValue(existing any, found bool, incoming any, override bool) any {
	if list, ok := incoming.([]string); ok {
		prev, _ := existing.([]string)
		merged := make([]string, 0, len(prev)+len(list))
		merged = append(merged, prev...)
		return append(merged, list...)
	}
	if found && !override {
		return existing
	}
	return incoming
}
