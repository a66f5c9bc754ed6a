package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationEvent é o que trafega na fila quando algo relevante acontece
// com uma venda. O worker transforma isso em Notification persistida + e-mail.
type NotificationEvent struct {
	Type string `json:"type"` // sale.created | sale.stage_moved

	SaleID      string `json:"sale_id"`
	CompanyName string `json:"company_name"`
	Stage       string `json:"stage"`
	// PreviousStage só vem preenchido em sale.stage_moved.
	PreviousStage string `json:"previous_stage,omitempty"`

	// VendedorID é o destinatário da notificação.
	VendedorID string    `json:"vendedor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, event NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
