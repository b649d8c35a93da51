package usecase

import (
	"encoding/json"
	"fmt"

	"posapi/src/catalog/infrastructure/client"
)

// GetProductUseCase caso de uso para obtener un producto del usuario
type GetProductUseCase struct {
	strapiClient *client.StrapiClient
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(strapiClient *client.StrapiClient) *GetProductUseCase {
	return &GetProductUseCase{
		strapiClient: strapiClient,
	}
}

// Execute busca el producto por documentId filtrando por usuario
func (uc *GetProductUseCase) Execute(userID, productID string) (json.RawMessage, error) {
	product, err := uc.strapiClient.FindProductByDocumentID(userID, productID)
	if err != nil {
		return nil, fmt.Errorf("error fetching product: %w", err)
	}
	return product, nil
}
