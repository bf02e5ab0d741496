// Command example demonstrates schemarules with an HTTP server serving
// OpenAPI docs and a validated JSON endpoint.
//
// Run:
//
//	go run ./_example
//
// Then fetch http://localhost:8080/docs/docs.json or docs.yaml.
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	sr "github.com/Gobd/schemarules"
	"github.com/Gobd/schemarules/is"
	"github.com/Gobd/schemarules/openapi"
)

// Order is a sample request/response type.
type Order struct {
	CustomerName string   `json:"customer_name"`
	Email        string   `json:"email"`
	ItemCount    int      `json:"item_count"`
	Total        float64  `json:"total"`
	Tags         []string `json:"tags"`
}

func (o *Order) Rules() []*sr.FieldRules {
	return []*sr.FieldRules{
		sr.Field(&o.CustomerName, sr.Required, sr.Length(1, 200)),
		sr.Field(&o.Email, sr.Required, is.Email),
		sr.Field(&o.ItemCount, sr.Required, sr.Min(1)),
		sr.Field(&o.Total, sr.Required, sr.Min(0.01), sr.Example(19.99)),
		sr.Field(&o.Tags, sr.Each(sr.Length(1, 32))),
	}
}

func (o *Order) Declarations() []*sr.Marker {
	return []*sr.Marker{
		// Trim the name before the standard rules see it.
		sr.FieldValidator("customer_name").Mode(sr.Before).MustBind(func(v any) (any, error) {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s), nil
			}
			return v, nil
		}),
		// Whole-object check once every field passed.
		sr.ModelValidator(sr.After).MustBind(func(data any) (any, error) {
			m := data.(map[string]any)
			if total, ok := m["total"].(float64); ok && total > 1_000_000 {
				return nil, errors.New("total exceeds the order limit")
			}
			return m, nil
		}),
		// Lowercase the email on every dump.
		sr.FieldSerializer("email").JSONType(sr.JSONTypeString).MustBind(func(v any) (any, error) {
			if s, ok := v.(string); ok {
				return strings.ToLower(s), nil
			}
			return v, nil
		}),
	}
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	plan := sr.MustPlanFor(&Order{})

	// Build the OpenAPI document from the compiled plan.
	doc := openapi.DocBase("Example API", "Demonstrates schemarules", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary: "Create an order",
		Request: plan,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Created order", Bodies: []any{plan}},
			"400": {Desc: "Validation error", Bodies: []any{ErrorResponse{}}},
		},
	})

	// Rendered document, JSON and YAML.
	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))

	// API endpoint
	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var order Order
		if err := plan.Decode(r.Body, &order); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		body, err := plan.Marshal(&order)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("OpenAPI docs: http://localhost:8080/docs/docs.json")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
