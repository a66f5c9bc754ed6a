package usecase

import (
	"context"

	"github.com/gestorx/vendas-api/internal/infra/queue"
)

// NotificationPublisherInterface publica eventos de notificação na fila.
type NotificationPublisherInterface interface {
	PublishNotification(ctx context.Context, event queue.NotificationEvent) error
}

type SaleInput struct {
	Date          string `json:"date"`
	CompanyName   string `json:"companyName"`
	ContactName   string `json:"contactName"`
	ContactMethod string `json:"contactMethod"`
	Stage         string `json:"stage"`
	ProductType   string `json:"productType"`
	Type          string `json:"type"`
	SalesPerson   string `json:"salesPerson"`
	Vendedor      string `json:"vendedor"`
	Comments      string `json:"comments"`
	Lifes         int    `json:"lifes"`
	CNPJ          string `json:"cnpj"`
	StatusFechado bool   `json:"statusFechado"`
}

type SaleOutput struct {
	ID    string `json:"id"`
	Stage string `json:"stage"`
	Msg   string `json:"msg"`
}

type ProspectionInput struct {
	CompanyName   string `json:"companyName"`
	ContactName   string `json:"contactName"`
	ContactMethod string `json:"contactMethod"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ProductType   string `json:"productType"`
	Notes         string `json:"notes"`
}

type ProspectionOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}
