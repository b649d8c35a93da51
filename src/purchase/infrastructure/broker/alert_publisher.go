package broker

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

const inventoryAlertExchange = "inventory_alert_exchange"

// InventoryAlertEvent es el evento publicado cuando una compra deja un
// producto en bajo inventario
type InventoryAlertEvent struct {
	Reference   string `json:"reference"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	Message     string `json:"message"`
	OccurredAt  string `json:"occurred_at"`
}

// AlertPublisher publica eventos de alerta de inventario en RabbitMQ
type AlertPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAlertPublisher conecta a RabbitMQ y declara el exchange de alertas
func NewAlertPublisher(amqpURL string) (*AlertPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		inventoryAlertExchange, // name
		"fanout",               // type
		true,                   // durable
		false,                  // auto-deleted
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &AlertPublisher{conn: conn, channel: channel}, nil
}

// PublishInventoryAlert publica un evento de alerta en el exchange
func (p *AlertPublisher) PublishInventoryAlert(event InventoryAlertEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.Publish(
		inventoryAlertExchange, // exchange
		"",                     // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf("✅ Published InventoryAlert event for product %s (stock: %d)", event.ProductID, event.Stock)
	return nil
}

// Close cierra el canal y la conexión
func (p *AlertPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
