package usecase

import (
	"fmt"

	catalog "posapi/src/catalog/domain/entity"
	"posapi/src/catalog/infrastructure/client"
)

// StockCheckResult es el veredicto de la validación junto con el snapshot del
// producto al momento del chequeo. El snapshot alimenta la fase de reducción
type StockCheckResult struct {
	Satisfiable bool
	Product     *catalog.Product
}

// ValidateStockUseCase caso de uso para validar stock de un producto
type ValidateStockUseCase struct {
	strapiClient *client.StrapiClient
}

// NewValidateStockUseCase crea una nueva instancia del caso de uso
func NewValidateStockUseCase(strapiClient *client.StrapiClient) *ValidateStockUseCase {
	return &ValidateStockUseCase{
		strapiClient: strapiClient,
	}
}

// Execute obtiene el producto y decide si la cantidad pedida es satisfacible.
// Un error de Strapi se propaga: nunca se interpreta como falta de stock
func (uc *ValidateStockUseCase) Execute(productID string, quantity int) (*StockCheckResult, error) {
	product, err := uc.strapiClient.GetProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("error validating stock for product %s: %w", productID, err)
	}

	return &StockCheckResult{
		Satisfiable: product.Stock >= quantity,
		Product:     product,
	}, nil
}
