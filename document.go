package schemarules

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Ruler declares standard per-field rules for a struct type. Standard rules
// run as the pipeline's standard stage, between before- and after-markers.
//
//	func (o *Order) Rules() []*schemarules.FieldRules {
//		return []*schemarules.FieldRules{
//			schemarules.Field(&o.Name, validation.Required),
//			schemarules.Field(&o.Qty, schemarules.Min(1)),
//		}
//	}
type Ruler interface {
	Rules() []*FieldRules
}

// ContextRuler is like [Ruler] for types whose rules need a context to
// build. [DefinitionOfCtx] passes its context through.
type ContextRuler interface {
	Rules(ctx context.Context) []*FieldRules
}

// Declarer attaches rule markers to a struct type. [DefinitionOf] collects
// them in declaration order.
//
//	func (o *Order) Declarations() []*schemarules.Marker {
//		return []*schemarules.Marker{
//			schemarules.FieldValidator("name").Mode(schemarules.Before).MustBind(trimValue),
//			schemarules.ModelValidator(schemarules.After).MustBind(checkTotals),
//		}
//	}
type Declarer interface {
	Declarations() []*Marker
}

// Describer lets a standard rule annotate the OpenAPI schema of the
// attribute it validates. Plain ozzo rules only validate; rules that also
// implement Describer enrich generated documents. See [Min], [Length], [In].
type Describer interface {
	Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
}

// FieldRules binds one attribute to its standard rules, either by struct
// field pointer ([Field]) or by name ([NamedField]).
type FieldRules struct {
	fieldPtr any
	name     string
	hidden   bool
	rules    []validation.Rule
}

// Field binds a struct field pointer to standard rules. The attribute name
// is resolved from the json tag when the definition is built.
func Field[T any](fieldPtr *T, rules ...validation.Rule) *FieldRules {
	return &FieldRules{fieldPtr: fieldPtr, rules: rules}
}

// NamedField binds an attribute name directly to standard rules, for
// definitions assembled without a struct type.
func NamedField(name string, rules ...validation.Rule) *FieldRules {
	return &FieldRules{name: name, rules: rules}
}
