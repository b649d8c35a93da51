package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem es un par (producto, cantidad) dentro de una compra
type LineItem struct {
	ProductID string
	Quantity  int
}

// PurchaseOutcome es el resultado agregado de una compra completa
type PurchaseOutcome struct {
	Confirmed bool
	Alerts    []string
}

// Purchase representa una compra confirmada que se persiste como historial.
// El registro es informativo: la copia autoritativa del stock vive en el CMS
type Purchase struct {
	ID          uuid.UUID       `json:"id"`
	Reference   string          `json:"reference"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AlertCount  int             `json:"alert_count"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []PurchaseItem  `json:"items"`
}

// PurchaseItem es una línea de la compra con el snapshot de producto usado
type PurchaseItem struct {
	ID          uuid.UUID       `json:"id"`
	PurchaseID  uuid.UUID       `json:"purchase_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// NewPurchase crea el registro de una compra confirmada con sus items
func NewPurchase(reference string, items []PurchaseItem, alertCount int) (*Purchase, error) {
	if len(items) == 0 {
		return nil, ErrPurchaseMustHaveItems
	}

	purchaseID := uuid.New()

	totalAmount := decimal.Zero
	for i := range items {
		items[i].ID = uuid.New()
		items[i].PurchaseID = purchaseID
		items[i].Subtotal = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		totalAmount = totalAmount.Add(items[i].Subtotal)
	}

	return &Purchase{
		ID:          purchaseID,
		Reference:   reference,
		TotalAmount: totalAmount,
		AlertCount:  alertCount,
		CreatedAt:   time.Now().UTC(),
		Items:       items,
	}, nil
}
