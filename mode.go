package schemarules

import "reflect"

// RuleKind identifies which declaration entry point produced a rule.
type RuleKind string

const (
	KindValidator       RuleKind = "validator"
	KindFieldValidator  RuleKind = "field_validator"
	KindRootValidator   RuleKind = "root_validator"
	KindModelValidator  RuleKind = "model_validator"
	KindFieldSerializer RuleKind = "field_serializer"
	KindModelSerializer RuleKind = "model_serializer"
)

// Mode places a rule relative to the standard pipeline stage for its target.
//
// Before rules transform the raw input before the standard stage runs. After
// rules see the output of the standard stage. Wrap rules receive a [Handler]
// continuation and decide whether and how to invoke the remainder of the
// pipeline. Plain rules replace the standard stage entirely.
type Mode string

const (
	Before Mode = "before"
	After  Mode = "after"
	Wrap   Mode = "wrap"
	Plain  Mode = "plain"
)

// WhenUsed gates serializer execution by output format and value.
type WhenUsed string

const (
	// WhenAlways runs the serializer for every dump. Zero value default.
	WhenAlways WhenUsed = "always"
	// WhenUnlessNil skips the serializer when the value is nil.
	WhenUnlessNil WhenUsed = "unless-nil"
	// WhenJSON runs the serializer only for JSON-format dumps.
	WhenJSON WhenUsed = "json"
	// WhenJSONUnlessNil runs only for JSON-format dumps of non-nil values.
	WhenJSONUnlessNil WhenUsed = "json-unless-nil"
)

// applies reports whether a serializer gated by w should run for the given
// value and output format.
func (w WhenUsed) applies(value any, format Format) bool {
	switch w {
	case WhenUnlessNil:
		return !isNilValue(value)
	case WhenJSON:
		return format == FormatJSON
	case WhenJSONUnlessNil:
		return format == FormatJSON && !isNilValue(value)
	default:
		return true
	}
}

// Format selects the serialization output flavor.
type Format string

const (
	// FormatNative dumps Go values as-is.
	FormatNative Format = "native"
	// FormatJSON dumps values destined for JSON encoding.
	FormatJSON Format = "json"
)

// JSONType declares the JSON shape a serializer returns, for schema
// generation. The zero value leaves the schema type unspecified.
type JSONType string

const (
	JSONTypeString JSONType = "string"
	JSONTypeInt    JSONType = "int"
	JSONTypeFloat  JSONType = "float"
	JSONTypeBool   JSONType = "bool"
	JSONTypeBytes  JSONType = "bytes"
	JSONTypeList   JSONType = "list"
	JSONTypeMap    JSONType = "map"
	JSONTypeAny    JSONType = "any"
)

// isNilValue reports whether v is nil or a nil pointer, map, slice, or
// interface. Decoded JSON nulls arrive as untyped nil; struct fields as
// typed nils.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
