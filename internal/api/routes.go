// Package api serves the catalog over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"demo/catalog/internal/model"
	"demo/catalog/internal/service"
)

// Catalog is the set of operations the HTTP layer exposes.
type Catalog interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, error)
	GetOrderWithProducts(ctx context.Context, id string) (model.OrderProducts, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	Insert(ctx context.Context, c model.Collection, payload map[string]any) (service.Inserted, error)
}

// writeRoutes maps the POST path segment to the collection it writes.
var writeRoutes = map[string]model.Collection{
	"orders":   model.CollectionOrders,
	"products": model.CollectionProducts,
}

// CheckTables fails when a write route has no backing table name.
func CheckTables(tableName func(model.Collection) string) error {
	for route, c := range writeRoutes {
		if tableName(c) == "" {
			return fmt.Errorf("route /%s: no table configured for %s", route, c)
		}
	}
	return nil
}

type handlers struct {
	catalog Catalog
	log     *slog.Logger
}

func NewHandler(catalog Catalog, logger *slog.Logger) http.Handler {
	h := &handlers{catalog: catalog, log: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders", h.listOrders)
	mux.HandleFunc("GET /order/{id}", h.getOrder)
	mux.HandleFunc("GET /order/{id}/products", h.getOrderProducts)
	mux.HandleFunc("GET /products", h.listProducts)
	mux.HandleFunc("GET /product/{id}", h.getProduct)
	mux.HandleFunc("POST /{collection}", h.insert)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return Chain(mux, RequestLogger(logger), Recovery(logger))
}
