package schemarules

// RootValidatorBuilder declares a legacy whole-object validator. New code
// should use [ModelValidator]; markers built here carry a deprecation
// warning.
type RootValidatorBuilder struct {
	pre           bool
	skipOnFailure bool
	allowReuse    bool
}

// RootValidator starts a legacy whole-object validator declaration.
//
// Post-stage root validators never see data that failed field validation,
// so declaring one without [RootValidatorBuilder.SkipOnFailure] is an
// error; acknowledge the skip, or use [RootValidatorBuilder.Pre] to run
// before field validation instead.
func RootValidator() *RootValidatorBuilder {
	return &RootValidatorBuilder{}
}

// Pre runs the validator on the raw data map before field validation.
func (b *RootValidatorBuilder) Pre() *RootValidatorBuilder {
	b.pre = true
	return b
}

// SkipOnFailure acknowledges that a post-stage root validator is skipped
// when field validation failed.
func (b *RootValidatorBuilder) SkipOnFailure() *RootValidatorBuilder {
	b.skipOnFailure = true
	return b
}

// AllowReuse is accepted for compatibility and ignored. Adds a warning.
func (b *RootValidatorBuilder) AllowReuse() *RootValidatorBuilder {
	b.allowReuse = true
	return b
}

// Bind checks the pre/skip-on-failure gate, classifies fn, and returns the
// marker. The gate is evaluated before classification: a misdeclared root
// validator is reported as such even when the function would not classify.
func (b *RootValidatorBuilder) Bind(fn any) (*Marker, error) {
	if !b.pre && !b.skipOnFailure {
		return nil, errorf(CodeRootPreSkip,
			"root validators run after field validation and are skipped when it failed; declare SkipOnFailure, or Pre to run before")
	}
	conv, err := classifyRootValidator(fn)
	if err != nil {
		return nil, err
	}
	mode := After
	if b.pre {
		mode = Before
	}
	d := Descriptor{
		Kind:          KindRootValidator,
		Mode:          mode,
		Convention:    conv,
		SkipOnFailure: b.skipOnFailure,
	}
	warnings := []Warning{warnDeprecatedRootValidator()}
	if b.allowReuse {
		warnings = append(warnings, warnAllowReuse())
	}
	return newMarker(d, fn, validateAdapter(conv, fn), warnings), nil
}

// MustBind is like [RootValidatorBuilder.Bind] but panics on declaration
// errors.
func (b *RootValidatorBuilder) MustBind(fn any) *Marker {
	m, err := b.Bind(fn)
	if err != nil {
		panic(err)
	}
	return m
}
