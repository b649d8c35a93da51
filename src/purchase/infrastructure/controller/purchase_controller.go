package controller

import (
	"errors"
	"log"
	"net/http"

	"posapi/src/purchase/application/request"
	"posapi/src/purchase/application/usecase"
	"posapi/src/purchase/domain/entity"
	"posapi/src/shared/infrastructure/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	purchasesConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_purchases_confirmed_total",
		Help: "Compras confirmadas",
	})
	purchasesFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_purchases_failed_total",
		Help: "Compras rechazadas o fallidas",
	})
)

// PurchaseController maneja las peticiones HTTP de compras
type PurchaseController struct {
	buyProductsUC   *usecase.BuyProductsUseCase
	listPurchasesUC *usecase.ListPurchasesUseCase
	validator       *validatorv10.Validate
}

// NewPurchaseController crea una nueva instancia del controlador
func NewPurchaseController(
	buyProductsUC *usecase.BuyProductsUseCase,
	listPurchasesUC *usecase.ListPurchasesUseCase,
	validator *validatorv10.Validate,
) *PurchaseController {
	return &PurchaseController{
		buyProductsUC:   buyProductsUC,
		listPurchasesUC: listPurchasesUC,
		validator:       validator,
	}
}

// RegisterRoutes registra las rutas del controlador.
// buyProducts no lleva token, igual que en el router original
func (c *PurchaseController) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.POST("/products/buyProducts", c.BuyProducts)
	router.GET("/purchases", authMW, c.ListPurchases)

	log.Println("Rutas Purchase disponibles:")
	log.Println("  POST   /api/products/buyProducts")
	log.Println("  GET    /api/purchases")
}

// BuyProducts confirma una compra multi-item contra el CMS
func (c *PurchaseController) BuyProducts(ctx *gin.Context) {
	// 1. Validar body
	var req request.BuyProductsRequest
	if err := validation.BindAndValidate(ctx, &req, c.validator); err != nil {
		return
	}

	// 2. Mapear a line items del dominio
	items := make([]entity.LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, entity.LineItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}

	// 3. Ejecutar la orquestación de compra
	outcome, err := c.buyProductsUC.Execute(ctx.Request.Context(), items)
	if err != nil {
		log.Printf("Error al confirmar la compra: %v", err)
		purchasesFailedTotal.Inc()

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al confirmar la compra",
			"error":   purchaseErrorMessage(err),
		})
		return
	}

	purchasesConfirmedTotal.Inc()

	// 4. Responder con las alertas solo si existen
	resp := gin.H{"message": "Compra confirmada"}
	if len(outcome.Alerts) > 0 {
		resp["alerts"] = outcome.Alerts
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListPurchases lista el historial de compras confirmadas
func (c *PurchaseController) ListPurchases(ctx *gin.Context) {
	if c.listPurchasesUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Purchase history not available (database not configured)",
		})
		return
	}

	purchases, err := c.listPurchasesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing purchases: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       purchases,
		"total_count": len(purchases),
	})
}

// purchaseErrorMessage mapea el error de la orquestación al mensaje plano que
// espera el cliente: los fallos de la fase de alertas siempre salen con el
// mensaje genérico aunque el stock ya se haya reducido
func purchaseErrorMessage(err error) string {
	var insufficient *entity.StockInsufficientError
	if errors.As(err, &insufficient) {
		return insufficient.Error()
	}
	if errors.Is(err, entity.ErrAlertCheckFailed) {
		return entity.ErrAlertCheckFailed.Error()
	}
	return err.Error()
}
