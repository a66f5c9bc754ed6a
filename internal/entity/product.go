package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("produto não encontrado")

type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	PriceCents  int       `bson:"price_cents,omitempty" json:"price_cents,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

func NewProduct(name, category, description string, priceCents int) (*Product, error) {
	if name == "" {
		return nil, errors.New("name é obrigatório")
	}
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		PriceCents:  priceCents,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

type ProductRepositoryInterface interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
