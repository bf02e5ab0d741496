package schemarules

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateRule validates that a string value matches the given date layout.
// Use [Date] to create one, then chain [DateRule.Min] and [DateRule.Max] to
// constrain the date range.
type DateRule struct {
	validation.DateRule
	layout   string
	min, max time.Time
}

// Date creates a date validation rule with the given layout format.
func Date(layout string) *DateRule {
	return &DateRule{
		DateRule: validation.Date(layout),
		layout:   layout,
	}
}

// Min sets the minimum allowed date, enforced and documented.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.DateRule = r.DateRule.Min(t)
	r.min = t
	return r
}

// Max sets the maximum allowed date, enforced and documented.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.DateRule = r.DateRule.Max(t)
	r.max = t
	return r
}

// Describe sets the format and date range on the schema.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.layout
	if !r.min.IsZero() {
		appendDescription(ref, "> "+r.min.String())
	}
	if !r.max.IsZero() {
		appendDescription(ref, "< "+r.max.String())
	}
	return nil
}
