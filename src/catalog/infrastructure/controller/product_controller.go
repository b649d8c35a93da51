package controller

import (
	"errors"
	"log"
	"net/http"

	"posapi/src/catalog/application/request"
	"posapi/src/catalog/application/usecase"
	"posapi/src/catalog/domain/entity"
	"posapi/src/shared/infrastructure/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// ProductController maneja las peticiones HTTP del catálogo de productos
type ProductController struct {
	listProductsUC  *usecase.ListProductsUseCase
	getProductUC    *usecase.GetProductUseCase
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	validator       *validatorv10.Validate
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	listProductsUC *usecase.ListProductsUseCase,
	getProductUC *usecase.GetProductUseCase,
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	validator *validatorv10.Validate,
) *ProductController {
	return &ProductController{
		listProductsUC:  listProductsUC,
		getProductUC:    getProductUC,
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		validator:       validator,
	}
}

// RegisterRoutes registra las rutas del controlador.
// authMW replica el router original: lista, detalle y alta exigen token,
// la actualización por id no
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", authMW, c.ListProducts)
		products.GET("/:productId", authMW, c.GetProduct)
		products.POST("", authMW, c.CreateProduct)
		products.PUT("/:productId", c.UpdateProduct)
	}

	log.Println("Rutas Product disponibles:")
	log.Println("  GET    /api/products")
	log.Println("  GET    /api/products/:productId")
	log.Println("  POST   /api/products")
	log.Println("  PUT    /api/products/:productId")
}

// ListProducts lista los productos del usuario autenticado
func (c *ProductController) ListProducts(ctx *gin.Context) {
	userID := ctx.GetString("userId")

	products, err := c.listProductsUC.Execute(userID)
	if err != nil {
		log.Printf("Error fetching products from Strapi: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching products",
			"error":   err.Error(),
		})
		return
	}

	ctx.Data(http.StatusOK, "application/json", products)
}

// GetProduct obtiene un producto del usuario por documentId
func (c *ProductController) GetProduct(ctx *gin.Context) {
	userID := ctx.GetString("userId")
	productID := ctx.Param("productId")

	product, err := c.getProductUC.Execute(userID, productID)
	if err != nil {
		log.Printf("Error al obtener el producto de Strapi: %v", err)

		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"message": "Producto no encontrado en Strapi",
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al obtener el producto de Strapi",
		})
		return
	}

	ctx.Data(http.StatusOK, "application/json", product)
}

// CreateProduct crea un producto en Strapi para el usuario autenticado
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	userID := ctx.GetString("userId")

	// 1. El token es obligatorio para crear (se reenvía a Strapi)
	authToken := ctx.GetHeader("Authorization")
	if authToken == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Token de autenticación requerido",
		})
		return
	}

	// 2. Validar body
	var req request.CreateProductRequest
	if err := validation.BindAndValidate(ctx, &req, c.validator); err != nil {
		return
	}

	// 3. Ejecutar use case
	created, err := c.createProductUC.Execute(userID, authToken, &req)
	if err != nil {
		log.Printf("Error al crear producto en Strapi: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error al crear el producto en Strapi",
		})
		return
	}

	// 4. Responder con 201 Created
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Producto creado en Strapi con éxito",
		"data":    created,
	})
}

// UpdateProduct actualiza un producto por id
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID := ctx.Param("productId")
	authToken := ctx.GetHeader("Authorization")

	var updatedData map[string]interface{}
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request_body",
			"details": err.Error(),
		})
		return
	}

	updated, err := c.updateProductUC.Execute(productID, authToken, updatedData)
	if err != nil {
		log.Printf("Error al actualizar el producto en Strapi: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al actualizar el producto en Strapi",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Producto actualizado con éxito",
		"data":    updated,
	})
}
