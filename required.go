package schemarules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Required checks that a value is present and not empty. In generated
// schemas the attribute lands in the object's required list.
var Required = requiredRule{validation.Required}

type requiredRule struct {
	validation.RequiredRule
}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	return nil
}
