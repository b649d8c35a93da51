package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"posapi/src/purchase/domain/entity"
	"posapi/src/purchase/domain/port"
	"posapi/src/purchase/infrastructure/broker"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BuyProductsUseCase orquesta la compra en tres fases sobre el CMS:
// validar todo, reducir todo, alertar todo. Cada fase hace fan-out por item
// y espera a que terminen todos antes de avanzar.
//
// No hay lock ni token optimista entre la validación y la escritura: una
// compra concurrente sobre el mismo producto puede pisar el stock. El modo
// rollback acota la ventana pero no la cierra
type BuyProductsUseCase struct {
	validateStockUC *ValidateStockUseCase
	reduceStockUC   *ReduceStockUseCase
	alertStockUC    *AlertStockUseCase
	purchaseRepo    port.PurchaseRepository // opcional, historial de compras
	alertPublisher  *broker.AlertPublisher  // opcional, eventos de alerta
	rollbackEnabled bool
}

// NewBuyProductsUseCase crea una nueva instancia del caso de uso.
// purchaseRepo y alertPublisher pueden ser nil (se omiten esos pasos)
func NewBuyProductsUseCase(
	validateStockUC *ValidateStockUseCase,
	reduceStockUC *ReduceStockUseCase,
	alertStockUC *AlertStockUseCase,
	purchaseRepo port.PurchaseRepository,
	alertPublisher *broker.AlertPublisher,
	rollbackEnabled bool,
) *BuyProductsUseCase {
	return &BuyProductsUseCase{
		validateStockUC: validateStockUC,
		reduceStockUC:   reduceStockUC,
		alertStockUC:    alertStockUC,
		purchaseRepo:    purchaseRepo,
		alertPublisher:  alertPublisher,
		rollbackEnabled: rollbackEnabled,
	}
}

// Execute confirma una compra multi-item.
// La compra se confirma solo si TODOS los items validan; ninguna escritura
// ocurre antes de que el set completo haya validado
func (uc *BuyProductsUseCase) Execute(ctx context.Context, items []entity.LineItem) (*entity.PurchaseOutcome, error) {
	if len(items) == 0 {
		return nil, entity.ErrPurchaseMustHaveItems
	}

	// Fase 1: validar stock de todos los items
	checks, err := uc.validateAll(ctx, items)
	if err != nil {
		return nil, err
	}

	// Fase 2: reducir stock usando los snapshots de la fase 1
	if uc.rollbackEnabled {
		if err := uc.reduceAllWithRollback(items, checks); err != nil {
			return nil, err
		}
	} else {
		uc.reduceAllBestEffort(items, checks)
	}

	// Fase 3: chequear alertas de inventario releyendo cada producto
	alerts, err := uc.alertAll(ctx, items)
	if err != nil {
		return nil, err
	}

	messages := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		messages = append(messages, alert.Message)
	}

	outcome := &entity.PurchaseOutcome{
		Confirmed: true,
		Alerts:    messages,
	}

	// Pasos best-effort post confirmación: historial y eventos.
	// Un fallo acá no cambia el resultado de la compra
	uc.recordPurchase(ctx, items, checks, alerts)

	return outcome, nil
}

// validateAll ejecuta la validación de cada item en paralelo y corta ante el
// primer item insatisfacible o el primer error remoto
func (uc *BuyProductsUseCase) validateAll(ctx context.Context, items []entity.LineItem) ([]*StockCheckResult, error) {
	checks := make([]*StockCheckResult, len(items))

	g, _ := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			check, err := uc.validateStockUC.Execute(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !check.Satisfiable {
				return &entity.StockInsufficientError{ProductName: check.Product.Name}
			}
			checks[i] = check
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return checks, nil
}

// reduceAllBestEffort emite todas las escrituras en paralelo. Un fallo se
// loguea y no frena a los hermanos ni revierte lo ya aplicado: la compra
// puede quedar parcialmente aplicada
func (uc *BuyProductsUseCase) reduceAllBestEffort(items []entity.LineItem, checks []*StockCheckResult) {
	var wg sync.WaitGroup
	for i, item := range items {
		i, item := i, item
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := uc.reduceStockUC.Execute(item.ProductID, item.Quantity, checks[i].Product.Stock); err != nil {
				log.Printf("Error al actualizar el stock en Strapi: %v", err)
			}
		}()
	}
	wg.Wait()
}

// reduceAllWithRollback emite todas las escrituras y, si alguna falla,
// restaura el snapshot de las que sí se aplicaron y falla la compra
func (uc *BuyProductsUseCase) reduceAllWithRollback(items []entity.LineItem, checks []*StockCheckResult) error {
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		i, item := i, item
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = uc.reduceStockUC.Execute(item.ProductID, item.Quantity, checks[i].Product.Stock)
		}()
	}
	wg.Wait()

	var firstErr error
	for _, err := range errs {
		if err != nil {
			firstErr = err
			break
		}
	}
	if firstErr == nil {
		return nil
	}

	// Compensación: reescribir el snapshot de cada item que sí redujo
	for i, item := range items {
		if errs[i] != nil {
			continue
		}
		if err := uc.reduceStockUC.Restore(item.ProductID, checks[i].Product.Stock); err != nil {
			log.Printf("WARNING: No se pudo restaurar el stock del producto %s: %v", item.ProductID, err)
		}
	}

	return fmt.Errorf("error reducing stock, purchase rolled back: %w", firstErr)
}

// alertAll chequea alertas de todos los items en paralelo preservando el
// orden de los items; las alertas ausentes se filtran
func (uc *BuyProductsUseCase) alertAll(ctx context.Context, items []entity.LineItem) ([]*AlertResult, error) {
	results := make([]*AlertResult, len(items))

	g, _ := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			alert, err := uc.alertStockUC.Execute(item.ProductID)
			if err != nil {
				return err
			}
			results[i] = alert
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	alerts := make([]*AlertResult, 0, len(items))
	for _, alert := range results {
		if alert != nil {
			alerts = append(alerts, alert)
		}
	}
	return alerts, nil
}

// recordPurchase persiste el historial y publica eventos de alerta si los
// colaboradores opcionales están configurados
func (uc *BuyProductsUseCase) recordPurchase(ctx context.Context, items []entity.LineItem, checks []*StockCheckResult, alerts []*AlertResult) {
	reference := uuid.New().String()

	if uc.purchaseRepo != nil {
		purchaseItems := make([]entity.PurchaseItem, 0, len(items))
		for i, item := range items {
			purchaseItems = append(purchaseItems, entity.PurchaseItem{
				ProductID:   item.ProductID,
				ProductName: checks[i].Product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   checks[i].Product.Price,
			})
		}

		purchase, err := entity.NewPurchase(reference, purchaseItems, len(alerts))
		if err != nil {
			log.Printf("WARNING: No se pudo armar el registro de la compra: %v", err)
		} else if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
			log.Printf("WARNING: No se pudo persistir la compra %s: %v", purchase.ID, err)
		}
	}

	if uc.alertPublisher != nil {
		for _, alert := range alerts {
			event := broker.InventoryAlertEvent{
				Reference:   reference,
				ProductID:   alert.ProductID,
				ProductName: alert.ProductName,
				Stock:       alert.Stock,
				Message:     alert.Message,
				OccurredAt:  time.Now().UTC().Format(time.RFC3339),
			}
			if err := uc.alertPublisher.PublishInventoryAlert(event); err != nil {
				log.Printf("WARNING: Failed to publish inventory alert for product %s: %v", alert.ProductID, err)
			}
		}
	}
}
