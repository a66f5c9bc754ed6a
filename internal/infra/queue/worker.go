package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gestorx/vendas-api/internal/entity"
)

// NotificationMailer envia o e-mail correspondente à notificação.
type NotificationMailer interface {
	SendNotification(to, name, title, message string) error
}

type Worker struct {
	Channel   *amqp.Channel
	Notifs    entity.NotificationRepositoryInterface
	Users     entity.UserRepositoryInterface
	Mailer    NotificationMailer
	OnMailErr func() // hook de métrica, pode ser nil
}

func NewWorker(ch *amqp.Channel, notifs entity.NotificationRepositoryInterface, users entity.UserRepositoryInterface, mailer NotificationMailer) *Worker {
	return &Worker{
		Channel: ch,
		Notifs:  notifs,
		Users:   users,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event NotificationEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(context.Background(), event); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar %s da venda %s: %s", event.Type, event.SaleID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de notificações rodando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, event NotificationEvent) error {
	title, message := renderNotification(event)

	notification := entity.NewNotification(event.VendedorID, event.Type, title, message, event.SaleID)
	if err := w.Notifs.Create(ctx, notification); err != nil {
		return fmt.Errorf("falha ao persistir notificação: %w", err)
	}

	// E-mail é melhor esforço: a notificação já está gravada, então falha de
	// SMTP não volta a mensagem para a fila.
	if w.Mailer != nil && event.VendedorID != "" {
		user, err := w.Users.FindByID(ctx, event.VendedorID)
		if err != nil {
			log.Printf("⚠️ [WORKER] Vendedor %s não encontrado, e-mail não enviado", event.VendedorID)
			return nil
		}
		if err := w.Mailer.SendNotification(user.Email, user.Name, title, message); err != nil {
			log.Printf("⚠️ [WORKER] Falha no envio de e-mail para %s: %v", user.Email, err)
			if w.OnMailErr != nil {
				w.OnMailErr()
			}
		}
	}

	return nil
}

func renderNotification(event NotificationEvent) (string, string) {
	switch event.Type {
	case entity.NotificationStageMoved:
		return "Venda mudou de estágio",
			fmt.Sprintf("%s: %s → %s", event.CompanyName, event.PreviousStage, event.Stage)
	case entity.NotificationSaleCreated:
		return "Nova venda cadastrada",
			fmt.Sprintf("%s entrou no pipeline em %s", event.CompanyName, event.Stage)
	default:
		return "Atualização no pipeline", event.CompanyName
	}
}
