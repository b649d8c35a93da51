package entity

import (
	"errors"
	"fmt"
)

var (
	ErrPurchaseMustHaveItems = errors.New("purchase must have at least one item")

	// ErrAlertCheckFailed indica que no se pudo releer el producto en la fase de
	// alertas. El mensaje es el que llega al cliente, no cambiarlo
	ErrAlertCheckFailed = errors.New("Error al obtener el stock del producto.")
)

// StockInsufficientError indica que un producto no tiene stock suficiente.
// El mensaje llega tal cual al cliente en el campo error de la respuesta
type StockInsufficientError struct {
	ProductName string
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("Stock insuficiente del producto %s", e.ProductName)
}
