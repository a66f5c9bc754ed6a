package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

const (
	RoleVendedor = "vendedor"
	RoleAdmin    = "admin"
)

type User struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func NewUser(name, email, role string) (*User, error) {
	if name == "" {
		return nil, errors.New("name é obrigatório")
	}
	if email == "" {
		return nil, errors.New("email é obrigatório")
	}
	if role == "" {
		role = RoleVendedor
	}
	if role != RoleVendedor && role != RoleAdmin {
		return nil, errors.New("role deve ser vendedor ou admin")
	}
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	// Deactivate é o soft-delete: o usuário some das listagens de vendedores
	// ativos mas os IDs referenciados em vendas antigas continuam resolvendo.
	Deactivate(ctx context.Context, id string) error
}
