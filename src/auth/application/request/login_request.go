package request

// LoginRequest representa el body de POST /api/auth/login
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}
