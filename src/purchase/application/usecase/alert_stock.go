package usecase

import (
	"fmt"

	"posapi/src/catalog/infrastructure/client"
	"posapi/src/purchase/domain/entity"
)

// AlertResult describe una alerta de bajo inventario producida para un producto
type AlertResult struct {
	ProductID   string
	ProductName string
	Stock       int
	Message     string
}

// AlertStockUseCase caso de uso para chequear la alerta de inventario de un producto
type AlertStockUseCase struct {
	strapiClient *client.StrapiClient
}

// NewAlertStockUseCase crea una nueva instancia del caso de uso
func NewAlertStockUseCase(strapiClient *client.StrapiClient) *AlertStockUseCase {
	return &AlertStockUseCase{
		strapiClient: strapiClient,
	}
}

// Execute relee el producto (post reducción) y devuelve la alerta si aplica,
// o nil si el producto no tiene la alerta activada o el stock alcanza
func (uc *AlertStockUseCase) Execute(productID string) (*AlertResult, error) {
	product, err := uc.strapiClient.GetProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrAlertCheckFailed, err)
	}

	if product.InventoryAlert && product.Stock <= product.InventoryAlertCount {
		return &AlertResult{
			ProductID:   productID,
			ProductName: product.Name,
			Stock:       product.Stock,
			Message:     fmt.Sprintf("El producto %s tiene bajo inventario. Solo quedan %d unidades.", product.Name, product.Stock),
		}, nil
	}

	return nil, nil
}
