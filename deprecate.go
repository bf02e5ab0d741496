package schemarules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type deprecate struct{}

// Deprecate returns a documentation-only rule that marks the attribute as
// deprecated in the schema. It never fails validation.
func Deprecate() validation.Rule {
	return &deprecate{}
}

func (r *deprecate) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Deprecated = true
	return nil
}

func (r *deprecate) Validate(_ any) error {
	return nil
}
