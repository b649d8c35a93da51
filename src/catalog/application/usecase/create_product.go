package usecase

import (
	"encoding/json"
	"fmt"

	"posapi/src/catalog/application/request"
	"posapi/src/catalog/infrastructure/client"
)

// CreateProductUseCase caso de uso para crear un producto en Strapi
type CreateProductUseCase struct {
	strapiClient *client.StrapiClient
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(strapiClient *client.StrapiClient) *CreateProductUseCase {
	return &CreateProductUseCase{
		strapiClient: strapiClient,
	}
}

// Execute arma el payload con el formato de Strapi y crea el producto.
// El usuario dueño sale del token, no del body
func (uc *CreateProductUseCase) Execute(userID, authToken string, req *request.CreateProductRequest) (json.RawMessage, error) {
	productData := map[string]interface{}{
		"name":                req.Data.Name,
		"description":         req.Data.Description,
		"price":               req.Data.Price,
		"barcode":             req.Data.Barcode,
		"stock":               req.Data.Stock,
		"inventoryAlert":      req.Data.InventoryAlert,
		"inventoryAlertCount": req.Data.InventoryAlertCount,
		"user":                userID,
	}

	if req.Data.Category != nil {
		productData["category"] = map[string]interface{}{"connect": req.Data.Category}
	}
	if req.Data.CustomFeatures != nil {
		productData["customFeatures"] = req.Data.CustomFeatures
	}

	created, err := uc.strapiClient.CreateProduct(authToken, productData)
	if err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	return created, nil
}
