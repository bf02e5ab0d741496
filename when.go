package schemarules

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WhenRule is a standard rule that validates conditionally: it applies one
// set of rules when the condition is true, and an optional alternative set
// (via [WhenRule.Else]) when false. Use [When] to create one.
type WhenRule struct {
	validation.WhenRule
	desc      string
	whenRules []validation.Rule
	elseRules []validation.Rule
}

// When returns a conditional standard rule that applies rules only when
// condition is true. desc describes the condition in generated schemas.
func When(condition bool, desc string, rules ...validation.Rule) *WhenRule {
	return &WhenRule{
		WhenRule:  validation.When(condition, rules...),
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies alternative rules to apply when the [When] condition is
// false.
func (r *WhenRule) Else(rules ...validation.Rule) *WhenRule {
	r.WhenRule = r.WhenRule.Else(rules...)
	r.elseRules = rules
	return r
}

// Describe appends a human-readable summary of the conditional rules to the
// schema description.
func (r *WhenRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if desc, err := summarizeRules(name, r.whenRules); err != nil {
		return err
	} else if desc != "" {
		if r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		appendDescription(ref, desc)
	}

	if desc, err := summarizeRules(name, r.elseRules); err != nil {
		return err
	} else if desc != "" {
		appendDescription(ref, "else: "+desc)
	}
	return nil
}

// summarizeRules runs the Describe hooks of the given rules against a
// throwaway schema and condenses the mutations into one line.
func summarizeRules(name string, rules []validation.Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	for _, r := range rules {
		d, ok := r.(Describer)
		if !ok {
			continue
		}
		if err := d.Describe(name, schema, ref); err != nil {
			return "", err
		}
	}

	var parts []string
	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if len(schema.Required) > 0 {
		parts = append(parts, "required")
	}
	if ref.Value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *ref.Value.Min))
	}
	if ref.Value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *ref.Value.Max))
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}
	return strings.Join(parts, ", "), nil
}
