package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"posapi/src/purchase/domain/entity"
	"posapi/src/purchase/domain/port"

	"github.com/google/uuid"
)

// PurchasePostgresRepository implementa PurchaseRepository usando PostgreSQL.
// Sin lógica de negocio, solo insert y select
type PurchasePostgresRepository struct {
	db *sql.DB
}

// NewPurchasePostgresRepository crea una nueva instancia del repositorio
func NewPurchasePostgresRepository(db *sql.DB) port.PurchaseRepository {
	return &PurchasePostgresRepository{
		db: db,
	}
}

// Create persiste una compra con sus items en una transacción
func (r *PurchasePostgresRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	queryPurchase := `
		INSERT INTO purchases (
			id, reference, total_amount, alert_count, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err = tx.ExecContext(ctx, queryPurchase,
		purchase.ID,
		purchase.Reference,
		purchase.TotalAmount,
		purchase.AlertCount,
		purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating purchase: %w", err)
	}

	queryItem := `
		INSERT INTO purchase_items (
			id, purchase_id, product_id, product_name,
			quantity, unit_price, subtotal
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	for _, item := range purchase.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			item.PurchaseID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error creating purchase_item for product %s: %w", item.ProductID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// List devuelve las compras con sus items, ordenadas por fecha descendente
func (r *PurchasePostgresRepository) List(ctx context.Context) ([]entity.Purchase, error) {
	queryPurchases := `
		SELECT id, reference, total_amount, alert_count, created_at
		FROM purchases
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, queryPurchases)
	if err != nil {
		return nil, fmt.Errorf("error listing purchases: %w", err)
	}
	defer rows.Close()

	purchases := []entity.Purchase{}
	index := map[uuid.UUID]int{}

	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.Reference, &p.TotalAmount, &p.AlertCount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning purchase: %w", err)
		}
		p.Items = []entity.PurchaseItem{}
		index[p.ID] = len(purchases)
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}

	queryItems := `
		SELECT id, purchase_id, product_id, product_name, quantity, unit_price, subtotal
		FROM purchase_items
	`

	itemRows, err := r.db.QueryContext(ctx, queryItems)
	if err != nil {
		return nil, fmt.Errorf("error listing purchase items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item entity.PurchaseItem
		if err := itemRows.Scan(&item.ID, &item.PurchaseID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("error scanning purchase item: %w", err)
		}
		if i, ok := index[item.PurchaseID]; ok {
			purchases[i].Items = append(purchases[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase items: %w", err)
	}

	return purchases, nil
}
