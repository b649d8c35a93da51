package request

// BuyProductsItem es una línea de la compra en el body del request
type BuyProductsItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// BuyProductsRequest representa el body de POST /api/products/buyProducts
type BuyProductsRequest struct {
	Products []BuyProductsItem `json:"products" validate:"required,min=1,dive"`
}
