package controller

import (
	"log"
	"net/http"

	"posapi/src/auth/application/request"
	"posapi/src/auth/application/usecase"
	"posapi/src/shared/infrastructure/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// AuthController maneja las peticiones HTTP de autenticación
type AuthController struct {
	loginUC   *usecase.LoginUseCase
	validator *validatorv10.Validate
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(loginUC *usecase.LoginUseCase, validator *validatorv10.Validate) *AuthController {
	return &AuthController{
		loginUC:   loginUC,
		validator: validator,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
	}

	log.Println("Rutas Auth disponibles:")
	log.Println("  POST   /api/auth/login")
}

// Login delega la autenticación en Strapi
func (c *AuthController) Login(ctx *gin.Context) {
	// 1. Validar body
	var req request.LoginRequest
	if err := validation.BindAndValidate(ctx, &req, c.validator); err != nil {
		return
	}

	// 2. Ejecutar use case
	token, err := c.loginUC.Execute(&req)
	if err != nil {
		log.Printf("Error al iniciar sesión: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": "Credenciales incorrectas",
		})
		return
	}

	// 3. Responder con el token emitido por Strapi
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
	})
}
