package usecase

import (
	"context"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/insights"
)

type ListSalesUseCase struct {
	Sales entity.SaleRepositoryInterface
}

func NewListSalesUseCase(sales entity.SaleRepositoryInterface) *ListSalesUseCase {
	return &ListSalesUseCase{Sales: sales}
}

// Execute lista as vendas aplicando os filtros sobre o snapshot em memória.
// Lista vazia é resultado válido, nunca erro.
func (uc *ListSalesUseCase) Execute(ctx context.Context, filters insights.Filters) ([]entity.Sale, error) {
	sales, err := uc.Sales.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load sales: " + err.Error(),
		}
	}

	if filters.Empty() {
		return sales, nil
	}
	return insights.ApplyFilters(sales, filters), nil
}
