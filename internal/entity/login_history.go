package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LoginHistory é só trilha de auditoria. A autenticação em si (token, sessão)
// fica fora deste serviço.
type LoginHistory struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	UserAgent string    `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	IP        string    `bson:"ip,omitempty" json:"ip,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func NewLoginHistory(userID, userAgent, ip string) *LoginHistory {
	return &LoginHistory{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		CreatedAt: time.Now(),
	}
}

type LoginHistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *LoginHistory) error
	FindByUser(ctx context.Context, userID string) ([]LoginHistory, error)
}
