package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notificação não encontrada")

const (
	NotificationSaleCreated = "sale.created"
	NotificationStageMoved  = "sale.stage_moved"
)

type Notification struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	SaleID    string    `bson:"sale_id,omitempty" json:"saleId,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func NewNotification(userID, typ, title, message, saleID string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		SaleID:    saleID,
		CreatedAt: time.Now(),
	}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *Notification) error
	FindByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
