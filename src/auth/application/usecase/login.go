package usecase

import (
	"posapi/src/auth/application/request"
	"posapi/src/auth/infrastructure/client"
)

// LoginUseCase caso de uso para iniciar sesión contra Strapi
type LoginUseCase struct {
	authClient *client.StrapiAuthClient
}

// NewLoginUseCase crea una nueva instancia del caso de uso
func NewLoginUseCase(authClient *client.StrapiAuthClient) *LoginUseCase {
	return &LoginUseCase{
		authClient: authClient,
	}
}

// Execute delega la autenticación en Strapi y devuelve el token emitido
func (uc *LoginUseCase) Execute(req *request.LoginRequest) (string, error) {
	return uc.authClient.Login(req.Identifier, req.Password)
}
