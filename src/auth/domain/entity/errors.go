package entity

import "errors"

// ErrInvalidCredentials indica que Strapi rechazó el login
var ErrInvalidCredentials = errors.New("invalid credentials")
