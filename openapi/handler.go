package openapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the OpenAPI document as YAML. The document is round
// tripped through its JSON form so the output matches MarshalJSON key for
// key.
func MarshalYAML(s *openapi3.T) ([]byte, error) {
	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(specJSON, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Handler returns an http.Handler that serves the OpenAPI document as JSON
// at docs.json and as YAML at docs.yaml. The document is validated and
// rendered once. The prefix is stripped automatically, so just mount it:
//
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
func Handler(prefix string, s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	specYAML, err := MarshalYAML(s)
	if err != nil {
		return nil, err
	}

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// StripPrefix leaves no leading slash when the prefix ends in one.
		switch strings.TrimPrefix(r.URL.Path, "/") {
		case "", "docs.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		case "docs.yaml", "docs.yml":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(specYAML)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// HandlerMust is like [Handler] but panics on error.
func HandlerMust(prefix string, s *openapi3.T) http.Handler {
	h, err := Handler(prefix, s)
	if err != nil {
		panic(err)
	}
	return h
}
