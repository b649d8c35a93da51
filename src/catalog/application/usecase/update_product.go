package usecase

import (
	"encoding/json"
	"fmt"

	"posapi/src/catalog/infrastructure/client"
)

// UpdateProductUseCase caso de uso para actualizar un producto en Strapi
type UpdateProductUseCase struct {
	strapiClient *client.StrapiClient
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(strapiClient *client.StrapiClient) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		strapiClient: strapiClient,
	}
}

// Execute actualiza el producto por id. Las relaciones store y category
// se reducen a {id} si vienen en el body, como espera Strapi
func (uc *UpdateProductUseCase) Execute(productID, authToken string, updatedData map[string]interface{}) (json.RawMessage, error) {
	productData := make(map[string]interface{}, len(updatedData))
	for k, v := range updatedData {
		productData[k] = v
	}

	if store, ok := updatedData["store"].(map[string]interface{}); ok {
		if id, ok := store["id"]; ok {
			productData["store"] = map[string]interface{}{"id": id}
		}
	}
	if category, ok := updatedData["category"].(map[string]interface{}); ok {
		if id, ok := category["id"]; ok {
			productData["category"] = map[string]interface{}{"id": id}
		}
	}

	updated, err := uc.strapiClient.UpdateProduct(productID, authToken, productData)
	if err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}
	return updated, nil
}
