package schemarules

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	json "github.com/goccy/go-json"
)

// KeyIn returns a standard rule that checks if the keys of a map are among
// the allowed values. Decoded JSON objects are checked directly; other
// values are round tripped through their JSON form first.
func KeyIn(keys ...string) validation.Rule {
	return &keyInRule{keys}
}

type keyInRule struct {
	keys []string
}

func (r *keyInRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, fmt.Sprintf("keys must be in (%s)", strings.Join(r.keys, ",")))
	return nil
}

func (r *keyInRule) Validate(value any) error {
	allowed := make(map[string]bool, len(r.keys))
	for _, k := range r.keys {
		allowed[k] = true
	}

	m, ok := value.(map[string]any)
	if !ok {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &m); err != nil {
			return err
		}
	}

	for k := range m {
		if !allowed[k] {
			return fmt.Errorf("key '%s' not allowed", k)
		}
	}
	return nil
}
