package schemarules

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// planField is one attribute's compiled pipeline: standard rules plus
// validator markers grouped by phase, declaration order kept within each.
type planField struct {
	name       string
	hidden     bool
	rules      []validation.Rule
	befores    []*Marker
	afters     []*Marker
	wraps      []*Marker
	plains     []*Marker
	all        []*Marker
	serializer *Marker
}

// Plan is a compiled definition: per-attribute pipelines plus the
// model-level stages, ready to validate and serialize data. Plans are
// immutable after [Compile] and safe for concurrent use.
type Plan struct {
	name      string
	prototype any
	fields    []*planField
	index     map[string]*planField

	// modelPre holds root pre and model before markers, declaration order.
	modelPre   []*Marker
	modelWraps []*Marker
	// rootPost runs on the validated map; modelAfter runs on the populated
	// instance when unmarshalling.
	rootPost   []*Marker
	modelAfter []*Marker

	modelSerializer *Marker

	warnings []Warning
}

// Compile checks the definition's markers against its attributes and groups
// them into execution order. Unknown targets are rejected unless the marker
// opted out with CheckFields(false); duplicate serializers are rejected
// outright. Marker warnings are collected onto the plan.
func Compile(def Definition) (*Plan, error) {
	p := &Plan{
		name:      def.Name,
		prototype: def.Prototype,
		index:     make(map[string]*planField),
	}
	for _, fr := range def.Fields {
		if fr.name == "" {
			return nil, fmt.Errorf("definition %s has an unnamed attribute; use NamedField or Field", def.Name)
		}
		f := p.index[fr.name]
		if f == nil {
			f = &planField{name: fr.name, hidden: fr.hidden}
			p.fields = append(p.fields, f)
			p.index[fr.name] = f
		}
		f.rules = append(f.rules, fr.rules...)
	}

	for _, m := range def.Markers {
		if m == nil {
			return nil, errorf(CodeNilFunction, "definition %s contains a nil marker", def.Name)
		}
		d := m.Descriptor()
		p.warnings = append(p.warnings, m.Warnings()...)
		switch d.Kind {
		case KindValidator, KindFieldValidator:
			if err := p.attachValidator(m, d, def.Name); err != nil {
				return nil, err
			}
		case KindRootValidator:
			if d.Mode == Before {
				p.modelPre = append(p.modelPre, m)
			} else {
				p.rootPost = append(p.rootPost, m)
			}
		case KindModelValidator:
			switch d.Mode {
			case Before:
				p.modelPre = append(p.modelPre, m)
			case Wrap:
				p.modelWraps = append(p.modelWraps, m)
			default:
				p.modelAfter = append(p.modelAfter, m)
			}
		case KindFieldSerializer:
			if err := p.attachSerializer(m, d, def.Name); err != nil {
				return nil, err
			}
		case KindModelSerializer:
			if p.modelSerializer != nil {
				return nil, errorf(CodeDuplicateSerializer,
					"definition %s declares more than one model serializer", def.Name)
			}
			p.modelSerializer = m
		}
	}
	return p, nil
}

// MustCompile is like [Compile] but panics on error.
func MustCompile(def Definition) *Plan {
	p, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return p
}

// PlanFor builds and compiles the definition of a struct type in one step.
func PlanFor(structPtr any) (*Plan, error) {
	def, err := DefinitionOf(structPtr)
	if err != nil {
		return nil, err
	}
	return Compile(def)
}

// MustPlanFor is like [PlanFor] but panics on error.
func MustPlanFor(structPtr any) *Plan {
	p, err := PlanFor(structPtr)
	if err != nil {
		panic(err)
	}
	return p
}

// targets resolves a marker's declared targets to plan fields. "*" selects
// every attribute; duplicates collapse so a marker never attaches to the
// same attribute twice. The fan-out sees only attributes known at the moment
// the marker attaches: a field rule, or an earlier CheckFields(false) marker
// naming a fresh attribute, introduces it for later markers but not for "*"
// markers that already attached.
func (p *Plan) targets(d Descriptor, defName string) ([]*planField, error) {
	var out []*planField
	seen := make(map[*planField]bool)
	add := func(f *planField) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, name := range d.Fields {
		if name == "*" {
			for _, f := range p.fields {
				add(f)
			}
			continue
		}
		f := p.index[name]
		if f == nil {
			if d.CheckFields {
				return nil, errorf(CodeUnknownField,
					"%s targets unknown attribute %q in %s", builderName(d.Kind), name, defName)
			}
			// Checking was waived; the key may still show up in the data.
			f = &planField{name: name}
			p.fields = append(p.fields, f)
			p.index[name] = f
		}
		add(f)
	}
	return out, nil
}

func (p *Plan) attachValidator(m *Marker, d Descriptor, defName string) error {
	targets, err := p.targets(d, defName)
	if err != nil {
		return err
	}
	for _, f := range targets {
		f.all = append(f.all, m)
		switch d.Mode {
		case Before:
			f.befores = append(f.befores, m)
		case Wrap:
			f.wraps = append(f.wraps, m)
		case Plain:
			f.plains = append(f.plains, m)
		default:
			f.afters = append(f.afters, m)
		}
	}
	return nil
}

func (p *Plan) attachSerializer(m *Marker, d Descriptor, defName string) error {
	targets, err := p.targets(d, defName)
	if err != nil {
		return err
	}
	for _, f := range targets {
		if f.serializer != nil {
			return errorf(CodeDuplicateSerializer,
				"attribute %q in %s has more than one serializer", f.name, defName)
		}
		f.serializer = m
	}
	return nil
}

// Name returns the definition name.
func (p *Plan) Name() string { return p.name }

// Prototype returns the struct pointer the definition was built from, or
// nil for hand-assembled definitions.
func (p *Plan) Prototype() any { return p.prototype }

// FieldNames returns attribute names in declaration order.
func (p *Plan) FieldNames() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.name
	}
	return names
}

// Hidden reports whether the attribute validates but stays out of generated
// schemas (docs:"skip").
func (p *Plan) Hidden(name string) bool {
	f := p.index[name]
	return f != nil && f.hidden
}

// StandardRules returns the attribute's standard-stage rules.
func (p *Plan) StandardRules(name string) []validation.Rule {
	if f := p.index[name]; f != nil {
		return f.rules
	}
	return nil
}

// ValidatorsFor returns the attribute's validator markers in declaration
// order.
func (p *Plan) ValidatorsFor(name string) []*Marker {
	if f := p.index[name]; f != nil {
		return f.all
	}
	return nil
}

// SerializerFor returns the attribute's serializer marker, or nil.
func (p *Plan) SerializerFor(name string) *Marker {
	if f := p.index[name]; f != nil {
		return f.serializer
	}
	return nil
}

// ModelSerializer returns the whole-object serializer marker, or nil.
func (p *Plan) ModelSerializer() *Marker { return p.modelSerializer }

// Warnings returns deprecation diagnostics from every bound marker, in
// declaration order.
func (p *Plan) Warnings() []Warning { return p.warnings }
