package usecase

import (
	"context"

	"posapi/src/purchase/domain/entity"
	"posapi/src/purchase/domain/port"
)

// ListPurchasesUseCase caso de uso para listar el historial de compras
type ListPurchasesUseCase struct {
	purchaseRepo port.PurchaseRepository
}

// NewListPurchasesUseCase crea una nueva instancia del caso de uso
func NewListPurchasesUseCase(purchaseRepo port.PurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute devuelve las compras confirmadas, de la más reciente a la más vieja
func (uc *ListPurchasesUseCase) Execute(ctx context.Context) ([]entity.Purchase, error) {
	return uc.purchaseRepo.List(ctx)
}
