package schemarules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Nil is a standard rule that checks if a value is nil. The schema
// description notes the attribute must be null.
var Nil = absentRule{validation.Nil, "must be null"}

// Empty checks that a non-nil value is empty. The schema description notes
// the attribute must be empty.
var Empty = absentRule{validation.Empty, "must be empty"}

type absentRule struct {
	validation.Rule
	desc string
}

func (r absentRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
