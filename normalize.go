package schemarules

import "strings"

// Normalizer lets a destination type adjust itself after [Plan.Unmarshal]
// populates it and before model after validators run.
type Normalizer interface {
	Normalize()
}

// MapStrings rewrites every string in a decoded JSON map with f, recursing
// through nested maps and slices. The input map is not modified. Meant for
// model pre validators that canonicalize text before field rules run:
//
//	schemarules.ModelValidator(schemarules.Before).MustBind(func(data any) (any, error) {
//		return schemarules.TrimStrings(data.(map[string]any)), nil
//	})
func MapStrings(data map[string]any, f func(string) string) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = mapStringValue(v, f)
	}
	return out
}

func mapStringValue(v any, f func(string) string) any {
	switch vv := v.(type) {
	case string:
		return f(vv)
	case map[string]any:
		return MapStrings(vv, f)
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			out[i] = mapStringValue(item, f)
		}
		return out
	}
	return v
}

// TrimStrings trims surrounding whitespace from every string in a decoded
// JSON map.
func TrimStrings(data map[string]any) map[string]any {
	return MapStrings(data, strings.TrimSpace)
}

// LowerStrings lowercases every string in a decoded JSON map.
func LowerStrings(data map[string]any) map[string]any {
	return MapStrings(data, strings.ToLower)
}
