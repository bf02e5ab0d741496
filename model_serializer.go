package schemarules

// ModelSerializerBuilder declares a whole-object serializer.
type ModelSerializerBuilder struct {
	mode     Mode
	whenUsed WhenUsed
	jsonType JSONType
}

// ModelSerializer starts a whole-object serializer declaration. The default
// mode is [Plain]; with [Wrap] the function receives the default field dump
// as a continuation. Model serializer functions are instance-bound by
// nature and must accept the instance as their first parameter.
func ModelSerializer() *ModelSerializerBuilder {
	return &ModelSerializerBuilder{mode: Plain, whenUsed: WhenAlways}
}

// Mode places the serializer: [Plain] replaces the default dump entirely,
// [Wrap] receives it as a continuation.
func (b *ModelSerializerBuilder) Mode(m Mode) *ModelSerializerBuilder {
	b.mode = m
	return b
}

// WhenUsed gates execution by output format and value.
func (b *ModelSerializerBuilder) WhenUsed(w WhenUsed) *ModelSerializerBuilder {
	b.whenUsed = w
	return b
}

// JSONType declares the JSON shape the serializer returns, for schema
// generation.
func (b *ModelSerializerBuilder) JSONType(t JSONType) *ModelSerializerBuilder {
	b.jsonType = t
	return b
}

// Bind classifies fn under the declared mode and returns the marker.
func (b *ModelSerializerBuilder) Bind(fn any) (*Marker, error) {
	switch b.mode {
	case Plain, Wrap:
	default:
		return nil, errorf(CodeInvalidMode,
			"model serializer mode must be Plain or Wrap, got %q", b.mode)
	}
	switch b.whenUsed {
	case WhenAlways, WhenUnlessNil, WhenJSON, WhenJSONUnlessNil:
	default:
		return nil, errorf(CodeInvalidMode,
			"WhenUsed must be WhenAlways, WhenUnlessNil, WhenJSON, or WhenJSONUnlessNil, got %q", b.whenUsed)
	}
	conv, err := classifyModelSerializer(fn, b.mode)
	if err != nil {
		return nil, err
	}
	d := Descriptor{
		Kind:          KindModelSerializer,
		Mode:          b.mode,
		Convention:    conv,
		InstanceBound: conv.instanceBound(),
		WhenUsed:      b.whenUsed,
		JSONType:      b.jsonType,
	}
	return newMarker(d, fn, serializeAdapter(conv, fn), nil), nil
}

// MustBind is like [ModelSerializerBuilder.Bind] but panics on declaration
// errors.
func (b *ModelSerializerBuilder) MustBind(fn any) *Marker {
	m, err := b.Bind(fn)
	if err != nil {
		panic(err)
	}
	return m
}
