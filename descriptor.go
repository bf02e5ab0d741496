package schemarules

import "slices"

// Descriptor is the canonical record of one declared rule. Binding the same
// function with the same options always yields an equal Descriptor, whatever
// entry point spelling produced it. Descriptors are plain values; the engine
// and the schema generator read them, nobody writes them after Bind.
type Descriptor struct {
	// Kind is the declaring entry point.
	Kind RuleKind
	// Fields lists target attribute names for field-scoped kinds, in the
	// order declared. "*" targets every declared attribute. Empty for
	// model-scoped kinds.
	Fields []string
	// Mode places the rule relative to the standard stage.
	Mode Mode
	// Convention is the classified calling shape.
	Convention Convention
	// InstanceBound marks conventions whose first parameter is the object
	// being processed; the engine supplies it at call time.
	InstanceBound bool

	// EachItem applies the rule per element of slice, array, and map
	// values instead of to the collection itself.
	EachItem bool
	// Always runs the rule even when the target attribute is absent.
	Always bool
	// CheckFields, when true, makes [Compile] reject targets the
	// definition does not declare.
	CheckFields bool
	// SkipOnFailure records the legacy root-validator gate. Post-stage
	// root validators never see data that failed field validation.
	SkipOnFailure bool

	// WhenUsed gates serializer execution. Serializer kinds only.
	WhenUsed WhenUsed
	// JSONType declares the serializer's JSON output shape for schema
	// generation. Serializer kinds only.
	JSONType JSONType
}

// Equal reports whether two descriptors are identical records.
func (d Descriptor) Equal(o Descriptor) bool {
	return d.Kind == o.Kind &&
		slices.Equal(d.Fields, o.Fields) &&
		d.Mode == o.Mode &&
		d.Convention == o.Convention &&
		d.InstanceBound == o.InstanceBound &&
		d.EachItem == o.EachItem &&
		d.Always == o.Always &&
		d.CheckFields == o.CheckFields &&
		d.SkipOnFailure == o.SkipOnFailure &&
		d.WhenUsed == o.WhenUsed &&
		d.JSONType == o.JSONType
}
