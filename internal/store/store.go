package store

import (
	"context"

	"demo/catalog/internal/model"
)

// Documents is the document-store side of the catalog: orders and products
// addressed by table and primary key.
type Documents interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, bool, error)
	PutOrder(ctx context.Context, o model.Order) error

	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, bool, error)
	PutProduct(ctx context.Context, p model.Product) error

	TableName(c model.Collection) string
}

// HistoryReader reads order history rows from the relational store.
type HistoryReader interface {
	FindHistory(ctx context.Context, orderReference string, productIDs []string) ([]model.HistoryRow, error)
}
