package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProspectionNotFound = errors.New("prospecção não encontrada")

// Status de uma prospecção (lead) antes de virar venda.
const (
	ProspectionPendente   = "pendente"
	ProspectionConvertida = "convertida"
	ProspectionDescartada = "descartada"
)

type Prospection struct {
	ID            string `bson:"_id" json:"id"`
	CompanyName   string `bson:"company_name" json:"companyName"`
	ContactName   string `bson:"contact_name" json:"contactName"`
	ContactMethod string `bson:"contact_method,omitempty" json:"contactMethod,omitempty"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty"`
	ProductType   string `bson:"product_type,omitempty" json:"productType,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string `bson:"status" json:"status"`
	// SaleID é preenchido quando a prospecção vira venda.
	SaleID    string    `bson:"sale_id,omitempty" json:"saleId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func NewProspection(companyName, contactName, contactMethod, phone, email, productType, notes string) (*Prospection, error) {
	if companyName == "" {
		return nil, errors.New("companyName é obrigatório")
	}
	if contactName == "" {
		return nil, errors.New("contactName é obrigatório")
	}
	return &Prospection{
		ID:            uuid.New().String(),
		CompanyName:   companyName,
		ContactName:   contactName,
		ContactMethod: contactMethod,
		Phone:         phone,
		Email:         email,
		ProductType:   productType,
		Notes:         notes,
		Status:        ProspectionPendente,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

type ProspectionRepositoryInterface interface {
	Create(ctx context.Context, p *Prospection) error
	FindByID(ctx context.Context, id string) (*Prospection, error)
	FindAll(ctx context.Context) ([]Prospection, error)
	Update(ctx context.Context, p *Prospection) error
	Delete(ctx context.Context, id string) error
	MarkConverted(ctx context.Context, id, saleID string) error
}
