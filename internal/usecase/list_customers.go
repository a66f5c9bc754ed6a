package usecase

import (
	"context"
	"log"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/insights"
)

type ListCustomersUseCase struct {
	Sales    entity.SaleRepositoryInterface
	Users    entity.UserRepositoryInterface
	Products entity.ProductRepositoryInterface
}

func NewListCustomersUseCase(
	sales entity.SaleRepositoryInterface,
	users entity.UserRepositoryInterface,
	products entity.ProductRepositoryInterface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		Sales:    sales,
		Users:    users,
		Products: products,
	}
}

// Execute materializa a visão de clientes: uma linha por venda, com status
// derivado e FKs frouxas resolvidas. Usuários/produtos indisponíveis não
// derrubam a listagem — os IDs brutos são exibidos no lugar.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]insights.Customer, error) {
	sales, err := uc.Sales.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load sales: " + err.Error(),
		}
	}

	users, err := uc.Users.FindAll(ctx)
	if err != nil {
		log.Printf("⚠️ Falha ao carregar usuários para a listagem de clientes: %v", err)
		users = nil
	}

	products, err := uc.Products.FindAll(ctx)
	if err != nil {
		log.Printf("⚠️ Falha ao carregar produtos para a listagem de clientes: %v", err)
		products = nil
	}

	return insights.DeriveCustomers(sales, users, products), nil
}
