package main

import (
	"database/sql"
	"log"
	"net/http"

	authUseCase "posapi/src/auth/application/usecase"
	authClient "posapi/src/auth/infrastructure/client"
	authController "posapi/src/auth/infrastructure/controller"
	authMiddleware "posapi/src/auth/infrastructure/middleware"
	catalogUseCase "posapi/src/catalog/application/usecase"
	catalogClient "posapi/src/catalog/infrastructure/client"
	catalogController "posapi/src/catalog/infrastructure/controller"
	purchaseUseCase "posapi/src/purchase/application/usecase"
	purchasePort "posapi/src/purchase/domain/port"
	purchaseBroker "posapi/src/purchase/infrastructure/broker"
	purchaseController "posapi/src/purchase/infrastructure/controller"
	purchasePersistence "posapi/src/purchase/infrastructure/persistence"
	sharedConfig "posapi/src/shared/infrastructure/config"
	"posapi/src/shared/infrastructure/validation"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 POS Backend API - Iniciando...")

	cfg := sharedConfig.LoadConfig()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Health checks
	healthHandler := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)

	// Conectar a la base de datos del historial (opcional)
	var db *sql.DB
	connStr := cfg.DatabaseURL()
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (historial de compras deshabilitado)")
		db = nil
	} else {
		defer db.Close()
		if err = db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (historial de compras deshabilitado)")
			db = nil
		} else {
			log.Println("✅ Conexión a la base de datos establecida con éxito")
		}
	}

	// Conectar al broker de alertas (opcional)
	var alertPublisher *purchaseBroker.AlertPublisher
	if cfg.RabbitMQURL != "" {
		alertPublisher, err = purchaseBroker.NewAlertPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al conectar a RabbitMQ: %v", err)
			log.Println("⚠️  Continuando sin eventos de alerta")
			alertPublisher = nil
		} else {
			defer alertPublisher.Close()
			log.Println("✅ Conexión a RabbitMQ establecida con éxito")
		}
	} else {
		log.Println("⚠️  Eventos de alerta deshabilitados (RABBITMQ_URL no configurado)")
	}

	// API grupo de rutas
	api := router.Group("/api")
	api.GET("/v1/health", healthHandler)

	setupModules(api, cfg, db, alertPublisher)

	// Iniciar el servidor
	log.Printf("✅ Servidor POS Backend iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupModules configura los módulos auth, catálogo y compras
func setupModules(router *gin.RouterGroup, cfg *sharedConfig.AppConfig, db *sql.DB, alertPublisher *purchaseBroker.AlertPublisher) {
	log.Println("Configurando módulos...")

	validator := validation.New()

	// Clientes hacia Strapi
	strapiClient := catalogClient.NewStrapiClient()
	strapiAuthClient := authClient.NewStrapiAuthClient()

	// Middleware de autenticación
	authMW := authMiddleware.UserFromToken(cfg.JWTSecret)

	// Módulo Auth
	loginUC := authUseCase.NewLoginUseCase(strapiAuthClient)
	authCtrl := authController.NewAuthController(loginUC, validator)
	authCtrl.RegisterRoutes(router)

	// Módulo Catálogo
	listProductsUC := catalogUseCase.NewListProductsUseCase(strapiClient)
	getProductUC := catalogUseCase.NewGetProductUseCase(strapiClient)
	createProductUC := catalogUseCase.NewCreateProductUseCase(strapiClient)
	updateProductUC := catalogUseCase.NewUpdateProductUseCase(strapiClient)
	productCtrl := catalogController.NewProductController(listProductsUC, getProductUC, createProductUC, updateProductUC, validator)
	productCtrl.RegisterRoutes(router, authMW)

	// Módulo Compras
	var purchaseRepo purchasePort.PurchaseRepository
	var listPurchasesUC *purchaseUseCase.ListPurchasesUseCase
	if db != nil {
		purchaseRepo = purchasePersistence.NewPurchasePostgresRepository(db)
		listPurchasesUC = purchaseUseCase.NewListPurchasesUseCase(purchaseRepo)
	} else {
		log.Println("⚠️  Historial de compras deshabilitado (sin conexión a DB)")
	}

	validateStockUC := purchaseUseCase.NewValidateStockUseCase(strapiClient)
	reduceStockUC := purchaseUseCase.NewReduceStockUseCase(strapiClient)
	alertStockUC := purchaseUseCase.NewAlertStockUseCase(strapiClient)

	if cfg.PurchaseRollback {
		log.Println("Modo rollback de compras habilitado")
	}
	buyProductsUC := purchaseUseCase.NewBuyProductsUseCase(
		validateStockUC,
		reduceStockUC,
		alertStockUC,
		purchaseRepo,
		alertPublisher,
		cfg.PurchaseRollback,
	)

	purchaseCtrl := purchaseController.NewPurchaseController(buyProductsUC, listPurchasesUC, validator)
	purchaseCtrl.RegisterRoutes(router, authMW)
}
