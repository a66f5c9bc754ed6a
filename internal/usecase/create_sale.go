package usecase

import (
	"context"
	"log"
	"time"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/infra/queue"
)

type CreateSaleUseCase struct {
	Repo  entity.SaleRepositoryInterface
	Queue NotificationPublisherInterface
}

func NewCreateSaleUseCase(repo entity.SaleRepositoryInterface, publisher NotificationPublisherInterface) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		Repo:  repo,
		Queue: publisher,
	}
}

func (uc *CreateSaleUseCase) Execute(ctx context.Context, input SaleInput) (*SaleOutput, error) {
	validationErrors := ValidateSaleInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	sale, err := entity.NewSale(
		input.Date,
		input.CompanyName,
		input.ContactName,
		input.ContactMethod,
		entity.NormalizeStage(input.Stage),
		input.ProductType,
		input.Vendedor,
		input.SalesPerson,
	)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_SALE", Message: err.Error()}
	}

	sale.Type = input.Type
	sale.Comments = input.Comments
	sale.Lifes = input.Lifes
	sale.CNPJ = input.CNPJ
	sale.StatusFechado = input.StatusFechado

	if err := uc.Repo.Create(ctx, sale); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist sale: " + err.Error(),
		}
	}

	// A venda já está gravada: falha na fila não derruba o cadastro.
	if uc.Queue != nil {
		event := queue.NotificationEvent{
			Type:        entity.NotificationSaleCreated,
			SaleID:      sale.ID,
			CompanyName: sale.CompanyName,
			Stage:       string(sale.Stage),
			VendedorID:  sale.Vendedor,
			OccurredAt:  time.Now(),
		}
		if err := uc.Queue.PublishNotification(ctx, event); err != nil {
			log.Printf("⚠️ Venda %s gravada, mas falha ao publicar notificação: %v", sale.ID, err)
		}
	}

	return &SaleOutput{
		ID:    sale.ID,
		Stage: string(sale.Stage),
		Msg:   "Venda cadastrada com sucesso!",
	}, nil
}
