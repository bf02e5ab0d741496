package schemarules

// FieldValidatorBuilder declares a field validator.
type FieldValidatorBuilder struct {
	fields      []any
	mode        Mode
	checkFields bool
}

// FieldValidator starts a validator declaration for the named attributes.
// The default mode is [After]; see [Mode] for the four placements.
//
//	m, err := schemarules.FieldValidator("name", "title").
//		Mode(schemarules.Before).
//		Bind(trimValue)
func FieldValidator(fields ...any) *FieldValidatorBuilder {
	return &FieldValidatorBuilder{fields: fields, mode: After, checkFields: true}
}

// Mode places the validator relative to the standard stage.
func (b *FieldValidatorBuilder) Mode(m Mode) *FieldValidatorBuilder {
	b.mode = m
	return b
}

// CheckFields controls whether [Compile] rejects targets the definition
// does not declare. On by default.
func (b *FieldValidatorBuilder) CheckFields(check bool) *FieldValidatorBuilder {
	b.checkFields = check
	return b
}

// Bind classifies fn under the declared mode and returns the marker.
func (b *FieldValidatorBuilder) Bind(fn any) (*Marker, error) {
	names, err := fieldTargets(KindFieldValidator, b.fields)
	if err != nil {
		return nil, err
	}
	switch b.mode {
	case Before, After, Wrap, Plain:
	default:
		return nil, errorf(CodeInvalidMode,
			"field validator mode must be Before, After, Wrap, or Plain, got %q", b.mode)
	}
	conv, err := classifyFieldValidator(fn, b.mode)
	if err != nil {
		return nil, err
	}
	d := Descriptor{
		Kind:          KindFieldValidator,
		Fields:        names,
		Mode:          b.mode,
		Convention:    conv,
		InstanceBound: conv.instanceBound(),
		CheckFields:   b.checkFields,
	}
	return newMarker(d, fn, validateAdapter(conv, fn), nil), nil
}

// MustBind is like [FieldValidatorBuilder.Bind] but panics on declaration
// errors.
func (b *FieldValidatorBuilder) MustBind(fn any) *Marker {
	m, err := b.Bind(fn)
	if err != nil {
		panic(err)
	}
	return m
}
