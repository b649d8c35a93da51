package entity

import "errors"

var (
	// ErrProductNotFound indica que Strapi no conoce el producto (404)
	ErrProductNotFound = errors.New("product not found in strapi")
	// ErrStrapiUnavailable indica un error de transporte o un status no exitoso de Strapi
	ErrStrapiUnavailable = errors.New("strapi unavailable")
)
