// Package openapi generates OpenAPI 3 documents from compiled
// [schemarules.Plan] values. It also provides helpers for registering
// endpoints and serving the rendered document.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve the document with
// [HandlerMust]:
//
//	plan := schemarules.MustPlanFor(&Order{})
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  plan,
//	    Response: plan,
//	})
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
package openapi
