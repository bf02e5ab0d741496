package schemarules

import (
	"errors"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Unique returns a standard rule that checks if all elements of a slice are
// unique by the key that key extracts for each index. Generated schemas get
// uniqueItems set.
func Unique(key func(i int) any, desc string) validation.Rule {
	return uniqueRule{key: key, desc: desc}
}

type uniqueRule struct {
	key  func(i int) any
	desc string
}

func (r uniqueRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	if r.desc != "" {
		appendDescription(ref, r.desc)
	}
	return nil
}

func (r uniqueRule) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}
	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seen := make(map[any]struct{}, rv.Len())
		for i := range rv.Len() {
			seen[r.key(i)] = struct{}{}
		}
		if len(seen) != rv.Len() {
			if r.desc != "" {
				return errors.New(r.desc)
			}
			return errors.New("elements must be unique")
		}
	default:
		return errors.New("must be a slice")
	}
	return nil
}
