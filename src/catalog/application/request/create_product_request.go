package request

// CreateProductData contiene los campos del producto a crear en Strapi
type CreateProductData struct {
	Name                string      `json:"name" validate:"required"`
	Description         string      `json:"description"`
	Price               float64     `json:"price"`
	Barcode             string      `json:"barcode"`
	Stock               int         `json:"stock" validate:"min=0"`
	InventoryAlert      bool        `json:"inventoryAlert"`
	InventoryAlertCount int         `json:"inventoryAlertCount" validate:"min=0"`
	Category            interface{} `json:"category,omitempty"`
	CustomFeatures      interface{} `json:"customFeatures,omitempty"`
}

// CreateProductRequest representa el body de POST /api/products
// Mantiene el sobre {data: {...}} que usa el frontend
type CreateProductRequest struct {
	Data CreateProductData `json:"data" validate:"required"`
}
