package schemarules

// FieldSerializerBuilder declares a field serializer.
type FieldSerializerBuilder struct {
	fields      []any
	mode        Mode
	whenUsed    WhenUsed
	jsonType    JSONType
	checkFields bool
}

// FieldSerializer starts a serializer declaration for the named attributes.
// The default mode is [Plain] and the default gating is [WhenAlways].
//
//	m, err := schemarules.FieldSerializer("created_at").
//		WhenUsed(schemarules.WhenJSON).
//		JSONType(schemarules.JSONTypeString).
//		Bind(formatTime)
func FieldSerializer(fields ...any) *FieldSerializerBuilder {
	return &FieldSerializerBuilder{fields: fields, mode: Plain, whenUsed: WhenAlways, checkFields: true}
}

// Mode places the serializer: [Plain] replaces the default dump of the
// value, [Wrap] receives the default dump as a continuation.
func (b *FieldSerializerBuilder) Mode(m Mode) *FieldSerializerBuilder {
	b.mode = m
	return b
}

// WhenUsed gates execution by output format and value.
func (b *FieldSerializerBuilder) WhenUsed(w WhenUsed) *FieldSerializerBuilder {
	b.whenUsed = w
	return b
}

// JSONType declares the JSON shape the serializer returns, for schema
// generation.
func (b *FieldSerializerBuilder) JSONType(t JSONType) *FieldSerializerBuilder {
	b.jsonType = t
	return b
}

// CheckFields controls whether [Compile] rejects targets the definition
// does not declare. On by default.
func (b *FieldSerializerBuilder) CheckFields(check bool) *FieldSerializerBuilder {
	b.checkFields = check
	return b
}

// Bind classifies fn under the declared mode and returns the marker.
func (b *FieldSerializerBuilder) Bind(fn any) (*Marker, error) {
	names, err := fieldTargets(KindFieldSerializer, b.fields)
	if err != nil {
		return nil, err
	}
	switch b.mode {
	case Plain, Wrap:
	default:
		return nil, errorf(CodeInvalidMode,
			"field serializer mode must be Plain or Wrap, got %q", b.mode)
	}
	switch b.whenUsed {
	case WhenAlways, WhenUnlessNil, WhenJSON, WhenJSONUnlessNil:
	default:
		return nil, errorf(CodeInvalidMode,
			"WhenUsed must be WhenAlways, WhenUnlessNil, WhenJSON, or WhenJSONUnlessNil, got %q", b.whenUsed)
	}
	conv, err := classifyFieldSerializer(fn, b.mode)
	if err != nil {
		return nil, err
	}
	d := Descriptor{
		Kind:          KindFieldSerializer,
		Fields:        names,
		Mode:          b.mode,
		Convention:    conv,
		InstanceBound: conv.instanceBound(),
		CheckFields:   b.checkFields,
		WhenUsed:      b.whenUsed,
		JSONType:      b.jsonType,
	}
	return newMarker(d, fn, serializeAdapter(conv, fn), nil), nil
}

// MustBind is like [FieldSerializerBuilder.Bind] but panics on declaration
// errors.
func (b *FieldSerializerBuilder) MustBind(fn any) *Marker {
	m, err := b.Bind(fn)
	if err != nil {
		panic(err)
	}
	return m
}
