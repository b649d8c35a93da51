package port

import (
	"context"

	"posapi/src/purchase/domain/entity"
)

// PurchaseRepository define la persistencia del historial de compras
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	List(ctx context.Context) ([]entity.Purchase, error)
}
