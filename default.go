package schemarules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type defaulter struct {
	a any
}

// Default returns a documentation-only rule that sets the schema default
// value. It never fails validation.
func Default(a any) validation.Rule {
	return defaulter{a: a}
}

func (r defaulter) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.a
	return nil
}

func (r defaulter) Validate(_ any) error {
	return nil
}
