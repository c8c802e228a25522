package common

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// ToAnySlice converts a string slice into the []any form structpb.NewValue accepts.
func ToAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

// StringList reads a Struct value as a string list. A single string is a
// one-element list. index reports the first non-string element when ok is false.
func StringList(v *structpb.Value) (values []string, index int, ok bool) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return []string{kind.StringValue}, -1, true
	case *structpb.Value_ListValue:
		out := make([]string, 0, len(kind.ListValue.GetValues()))
		for i, item := range kind.ListValue.GetValues() {
			s, isString := item.GetKind().(*structpb.Value_StringValue)
			if !isString {
				return nil, i, false
			}
			out = append(out, s.StringValue)
		}
		return out, -1, true
	}
	return nil, -1, false
}

// CopyStrings returns v with a []string value copied.
func CopyStrings(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string(nil), list...)
	}
	return v
}
