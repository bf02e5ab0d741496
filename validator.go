package schemarules

// ValidatorBuilder declares a legacy field validator. Legacy validators
// accept the values-map calling conventions; new code should use
// [FieldValidator], and every marker built here carries a deprecation
// warning saying so.
type ValidatorBuilder struct {
	fields      []any
	pre         bool
	eachItem    bool
	always      bool
	checkFields bool
	allowReuse  bool
}

// Validator starts a legacy validator declaration for the named attributes.
//
//	m, err := schemarules.Validator("email").Pre().Bind(normalizeEmail)
func Validator(fields ...any) *ValidatorBuilder {
	return &ValidatorBuilder{fields: fields, checkFields: true}
}

// Pre runs the validator before the standard stage instead of after it.
func (b *ValidatorBuilder) Pre() *ValidatorBuilder {
	b.pre = true
	return b
}

// EachItem applies the validator to the elements of slice, array, and map
// values rather than to the collection itself.
func (b *ValidatorBuilder) EachItem() *ValidatorBuilder {
	b.eachItem = true
	return b
}

// Always runs the validator even when the attribute is absent from the
// input. The function receives a nil value and info.Present == false.
func (b *ValidatorBuilder) Always() *ValidatorBuilder {
	b.always = true
	return b
}

// CheckFields controls whether [Compile] rejects targets the definition
// does not declare. On by default.
func (b *ValidatorBuilder) CheckFields(check bool) *ValidatorBuilder {
	b.checkFields = check
	return b
}

// AllowReuse is accepted for compatibility and ignored; binding one
// function to several declarations is always allowed. Adds a warning.
func (b *ValidatorBuilder) AllowReuse() *ValidatorBuilder {
	b.allowReuse = true
	return b
}

// Bind classifies fn, builds the canonical descriptor and adapter, and
// returns the marker. fn itself is never called during Bind.
func (b *ValidatorBuilder) Bind(fn any) (*Marker, error) {
	names, err := fieldTargets(KindValidator, b.fields)
	if err != nil {
		return nil, err
	}
	conv, err := classifyValidator(fn)
	if err != nil {
		return nil, err
	}
	mode := After
	if b.pre {
		mode = Before
	}
	d := Descriptor{
		Kind:          KindValidator,
		Fields:        names,
		Mode:          mode,
		Convention:    conv,
		InstanceBound: conv.instanceBound(),
		EachItem:      b.eachItem,
		Always:        b.always,
		CheckFields:   b.checkFields,
	}
	warnings := []Warning{warnDeprecatedValidator()}
	if b.allowReuse {
		warnings = append(warnings, warnAllowReuse())
	}
	return newMarker(d, fn, validateAdapter(conv, fn), warnings), nil
}

// MustBind is like [ValidatorBuilder.Bind] but panics on declaration errors.
func (b *ValidatorBuilder) MustBind(fn any) *Marker {
	m, err := b.Bind(fn)
	if err != nil {
		panic(err)
	}
	return m
}
