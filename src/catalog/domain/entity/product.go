package entity

import "github.com/shopspring/decimal"

// Product representa un producto tal como lo expone Strapi.
// La copia autoritativa vive en el CMS; este servicio solo lee y
// escribe condicionalmente el campo stock
type Product struct {
	ID                  int             `json:"id"`
	DocumentID          string          `json:"documentId,omitempty"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	Price               decimal.Decimal `json:"price"`
	Barcode             string          `json:"barcode,omitempty"`
	Stock               int             `json:"stock"`
	InventoryAlert      bool            `json:"inventoryAlert"`
	InventoryAlertCount int             `json:"inventoryAlertCount"`
}
