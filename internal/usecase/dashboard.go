package usecase

import (
	"context"
	"time"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/insights"
)

// DashboardUseCase busca o snapshot de vendas uma vez e roda as agregações
// puras por cima. Now é injetável para os testes fixarem o mês de referência.
type DashboardUseCase struct {
	Sales entity.SaleRepositoryInterface
	Now   func() time.Time
}

func NewDashboardUseCase(sales entity.SaleRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{
		Sales: sales,
		Now:   time.Now,
	}
}

func (uc *DashboardUseCase) Metrics(ctx context.Context) (*insights.Metrics, error) {
	sales, err := uc.Sales.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load sales: " + err.Error(),
		}
	}

	m := insights.ComputeMetrics(sales, uc.Now())
	return &m, nil
}

func (uc *DashboardUseCase) Series(ctx context.Context) ([]insights.MonthBucket, error) {
	sales, err := uc.Sales.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load sales: " + err.Error(),
		}
	}

	return insights.BuildMonthlySeries(sales, uc.Now()), nil
}
