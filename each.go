package schemarules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Each returns a validation rule that applies the given rules to every
// element of a slice, array, or map. Element rules implementing [Describer]
// annotate the schema's items when the property is an array, otherwise the
// property itself.
func Each(rules ...validation.Rule) validation.Rule {
	return &eachRule{
		validation.Each(rules...),
		rules,
	}
}

type eachRule struct {
	validation.EachRule
	rules []validation.Rule
}

func (r *eachRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	target := ref
	if ref.Value.Items != nil {
		target = ref.Value.Items
	}
	for i := range r.rules {
		d, ok := r.rules[i].(Describer)
		if !ok {
			continue
		}
		if err := d.Describe(name, schema, target); err != nil {
			return err
		}
	}
	return nil
}
