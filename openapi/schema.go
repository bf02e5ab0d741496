package openapi

import (
	"errors"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	sr "github.com/Gobd/schemarules"
)

// SchemaForPlan generates an OpenAPI object schema from a compiled plan.
//
// When the plan was built from a struct type, openapi3gen derives property
// types from the struct fields; otherwise every attribute starts from an
// untyped property. Either way the result is reshaped to the plan:
// attributes the plan does not declare are dropped, hidden attributes are
// dropped, required entries come from [schemarules.Required] and plain ozzo
// Required rules, [schemarules.Describer] rules annotate their properties,
// and a serializer's declared JSONType overrides the property type.
func SchemaForPlan(p *sr.Plan) (*openapi3.SchemaRef, error) {
	if p == nil {
		return nil, errors.New("nil plan")
	}
	if proto := p.Prototype(); proto != nil {
		g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(planDoc(p)))
		return g.NewSchemaRefForValue(proto, nil)
	}
	schema := openapi3.NewObjectSchema()
	if err := decorate(p, schema); err != nil {
		return nil, err
	}
	return &openapi3.SchemaRef{Value: schema}, nil
}

// SchemaForPlanMust is like [SchemaForPlan] but panics on error.
func SchemaForPlanMust(p *sr.Plan) *openapi3.SchemaRef {
	ref, err := SchemaForPlan(p)
	if err != nil {
		panic(err)
	}
	return ref
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value.
// A *[schemarules.Plan] is rendered through [SchemaForPlan]; any other value
// goes through openapi3gen, with plan decoration applied to every struct
// type encountered that declares rules or markers.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	if p, ok := value.(*sr.Plan); ok {
		return SchemaForPlan(p)
	}
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(planDoc(nil)))
	return g.NewSchemaRefForValue(value, nil)
}

// planDoc returns a SchemaCustomizer that decorates generated schemas from
// compiled plans. The supplied plan, when non-nil, is used for its own
// prototype type; every other struct type that declares rules or markers is
// compiled on the fly.
func planDoc(root *sr.Plan) openapi3gen.SchemaCustomizerFn {
	var rootType reflect.Type
	if root != nil {
		rootType = reflect.TypeOf(root.Prototype())
		for rootType != nil && rootType.Kind() == reflect.Ptr {
			rootType = rootType.Elem()
		}
	}
	return func(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		if t.Kind() != reflect.Struct {
			return nil
		}
		if t == rootType {
			return decorate(root, schema)
		}
		inst := reflect.New(t).Interface()
		if !declared(inst) {
			return nil
		}
		p, err := sr.PlanFor(inst)
		if err != nil {
			return err
		}
		return decorate(p, schema)
	}
}

// declared reports whether the type carries its own rules or markers.
func declared(inst any) bool {
	switch inst.(type) {
	case sr.Ruler, sr.ContextRuler, sr.Declarer:
		return true
	}
	return false
}

// decorate reshapes a generated object schema to match the plan.
func decorate(p *sr.Plan, schema *openapi3.Schema) error {
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}

	known := make(map[string]bool)
	for _, name := range p.FieldNames() {
		known[name] = true
	}
	for key := range schema.Properties {
		if !known[key] || p.Hidden(key) {
			delete(schema.Properties, key)
		}
	}

	for _, name := range p.FieldNames() {
		if p.Hidden(name) {
			continue
		}
		ref := schema.Properties[name]
		if ref == nil {
			ref = &openapi3.SchemaRef{Value: openapi3.NewSchema()}
			schema.Properties[name] = ref
		}

		if m := p.SerializerFor(name); m != nil {
			overrideType(ref, m.Descriptor().JSONType)
		}

		for _, rule := range p.StandardRules(name) {
			if _, ok := rule.(validation.RequiredRule); ok {
				schema.Required = append(schema.Required, name)
			}
			if d, ok := rule.(sr.Describer); ok {
				if err := d.Describe(name, schema, ref); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// overrideType replaces a property schema with the serializer's declared
// output shape. Struct-derived constraints no longer apply once a serializer
// rewrites the value, so the schema is rebuilt rather than patched.
func overrideType(ref *openapi3.SchemaRef, jt sr.JSONType) {
	switch jt {
	case sr.JSONTypeString:
		ref.Value = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}
	case sr.JSONTypeInt:
		ref.Value = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeInteger}}
	case sr.JSONTypeFloat:
		ref.Value = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
	case sr.JSONTypeBool:
		ref.Value = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeBoolean}}
	case sr.JSONTypeBytes:
		ref.Value = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Format: "byte"}
	case sr.JSONTypeList:
		ref.Value = &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: &openapi3.SchemaRef{Value: openapi3.NewSchema()},
		}
	case sr.JSONTypeMap:
		ref.Value = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeObject}}
	}
}
