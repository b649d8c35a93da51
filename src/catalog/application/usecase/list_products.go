package usecase

import (
	"encoding/json"
	"fmt"

	"posapi/src/catalog/infrastructure/client"
)

// ListProductsUseCase caso de uso para listar los productos de un usuario
type ListProductsUseCase struct {
	strapiClient *client.StrapiClient
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(strapiClient *client.StrapiClient) *ListProductsUseCase {
	return &ListProductsUseCase{
		strapiClient: strapiClient,
	}
}

// Execute obtiene los productos del usuario desde Strapi (passthrough)
func (uc *ListProductsUseCase) Execute(userID string) (json.RawMessage, error) {
	products, err := uc.strapiClient.ListProducts(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching products: %w", err)
	}
	return products, nil
}
