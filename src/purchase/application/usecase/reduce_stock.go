package usecase

import (
	"fmt"

	"posapi/src/catalog/infrastructure/client"
)

// ReduceStockUseCase caso de uso para descontar stock de un producto
type ReduceStockUseCase struct {
	strapiClient *client.StrapiClient
}

// NewReduceStockUseCase crea una nueva instancia del caso de uso
func NewReduceStockUseCase(strapiClient *client.StrapiClient) *ReduceStockUseCase {
	return &ReduceStockUseCase{
		strapiClient: strapiClient,
	}
}

// Execute escribe newStock = currentStock - quantity usando el snapshot
// validado por el caller. No vuelve a leer ni recorta valores negativos
func (uc *ReduceStockUseCase) Execute(productID string, quantity, currentStock int) error {
	newStock := currentStock - quantity

	if err := uc.strapiClient.UpdateStock(productID, newStock); err != nil {
		return fmt.Errorf("error reducing stock for product %s: %w", productID, err)
	}
	return nil
}

// Restore reescribe el stock snapshot de un producto (compensación del modo rollback)
func (uc *ReduceStockUseCase) Restore(productID string, snapshotStock int) error {
	if err := uc.strapiClient.UpdateStock(productID, snapshotStock); err != nil {
		return fmt.Errorf("error restoring stock for product %s: %w", productID, err)
	}
	return nil
}
