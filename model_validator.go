package schemarules

// ModelValidatorBuilder declares a whole-object validator.
type ModelValidatorBuilder struct {
	mode Mode
}

// ModelValidator starts a whole-object validator declaration. The mode is
// required: [Before] sees the raw data map, [Wrap] controls the standard
// field pass through its continuation, [After] sees the validated object.
//
//	m, err := schemarules.ModelValidator(schemarules.After).Bind(checkTotals)
func ModelValidator(mode Mode) *ModelValidatorBuilder {
	return &ModelValidatorBuilder{mode: mode}
}

// Bind classifies fn under the declared mode and returns the marker.
func (b *ModelValidatorBuilder) Bind(fn any) (*Marker, error) {
	switch b.mode {
	case Before, After, Wrap:
	default:
		return nil, errorf(CodeInvalidMode,
			"model validator mode must be Before, After, or Wrap, got %q", b.mode)
	}
	conv, err := classifyModelValidator(fn, b.mode)
	if err != nil {
		return nil, err
	}
	d := Descriptor{
		Kind:          KindModelValidator,
		Mode:          b.mode,
		Convention:    conv,
		InstanceBound: conv.instanceBound(),
	}
	return newMarker(d, fn, validateAdapter(conv, fn), nil), nil
}

// MustBind is like [ModelValidatorBuilder.Bind] but panics on declaration
// errors.
func (b *ModelValidatorBuilder) MustBind(fn any) *Marker {
	m, err := b.Bind(fn)
	if err != nil {
		panic(err)
	}
	return m
}
