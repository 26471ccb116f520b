package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"

	"petstore-tools/internal/fakes"
	"petstore-tools/internal/populate"
	"petstore-tools/internal/registry"
)

// ProductWorker inserts product batches over its own connection. Every new
// product id is published to the registry immediately so the order
// generator can reference it without waiting for the next poll.
type ProductWorker struct {
	conn *pgx.Conn
	ins  *populate.Inserter
	reg  *registry.Registry
}

func NewProductWorker(conn *pgx.Conn, f *fakes.Fakes, reg *registry.Registry) *ProductWorker {
	return &ProductWorker{conn: conn, ins: populate.NewInserter(f, reg), reg: reg}
}

// Ready gates product generation on the supplier list being non-empty.
func (w *ProductWorker) Ready() bool {
	return w.reg.Len(registry.Suppliers) > 0
}

// Batch inserts n products inside one transaction.
func (w *ProductWorker) Batch(n int) BatchFunc {
	return func(ctx context.Context) (int, error) {
		tx, err := w.conn.Begin(ctx)
		if err != nil {
			return 0, fmt.Errorf("begin product batch: %w", err)
		}
		defer tx.Rollback(ctx)

		inserted := 0
		for i := 0; i < n; i++ {
			id, err := w.ins.InsertProduct(ctx, tx, "", 0)
			if errors.Is(err, populate.ErrNoSuppliers) {
				color.Yellow("No suppliers available to generate a product.")
				continue
			}
			if err != nil {
				return 0, err
			}
			w.reg.Append(registry.Products, id)
			inserted++
		}

		if err := tx.Commit(ctx); err != nil {
			return 0, fmt.Errorf("commit product batch: %w", err)
		}
		return inserted, nil
	}
}
