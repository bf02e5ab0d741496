// Command gorilla demonstrates schemarules with a gorilla/mux router.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then fetch http://localhost:8080/docs/docs.json.
package main

import (
	"fmt"
	"log"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	sr "github.com/Gobd/schemarules"
	"github.com/Gobd/schemarules/openapi"
)

type Order struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func (o *Order) Rules() []*sr.FieldRules {
	return []*sr.FieldRules{
		sr.Field(&o.CustomerName, sr.Required, sr.Length(1, 200)),
		sr.Field(&o.ItemCount, sr.Required, sr.Min(1)),
		sr.Field(&o.Total, sr.Required, sr.Min(0.01)),
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	plan := sr.MustPlanFor(&Order{})

	doc := openapi.DocBase("Example API (gorilla)", "Demonstrates schemarules with gorilla/mux", "0.1.0")

	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  plan,
		Response: plan,
	})

	r := mux.NewRouter()

	r.PathPrefix("/docs/").Handler(openapi.HandlerMust("/docs/", doc))

	r.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		var order Order
		if err := plan.Decode(r.Body, &order); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(order)
	}).Methods(http.MethodPost)

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("OpenAPI docs: http://localhost:8080/docs/docs.json")
	log.Fatal(http.ListenAndServe(":8080", r))
}
