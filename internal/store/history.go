package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"demo/catalog/internal/model"
)

// PgxIface is satisfied by *pgxpool.Pool. Query acquires a pooled connection
// that is handed back when the returned rows are closed.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type HistoryRepo struct {
	Pool    PgxIface
	Timeout time.Duration
}

var _ HistoryReader = (*HistoryRepo)(nil)

func NewHistoryRepo(pool PgxIface, timeout time.Duration) *HistoryRepo {
	return &HistoryRepo{Pool: pool, Timeout: timeout}
}

const historyQuery = `
	SELECT product_id, order_reference, order_picked, order_shipped, return_requested, return_received
	FROM order_history
	WHERE order_reference = $1 AND product_id = ANY($2)`

// FindHistory loads every row for the order reference whose product id is in
// productIDs, in one round trip. No match is an empty slice, not an error.
func (r *HistoryRepo) FindHistory(ctx context.Context, orderReference string, productIDs []string) ([]model.HistoryRow, error) {
	if len(productIDs) == 0 {
		return []model.HistoryRow{}, nil
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	rows, err := r.Pool.Query(ctx, historyQuery, orderReference, productIDs)
	if err != nil {
		return nil, fmt.Errorf("query order history: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.HistoryRow])
	if err != nil {
		return nil, fmt.Errorf("scan order history: %w", err)
	}
	return out, nil
}
