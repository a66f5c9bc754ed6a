package usecase

import (
	"context"
	"log"
	"time"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/infra/queue"
)

type UpdateSaleUseCase struct {
	Repo  entity.SaleRepositoryInterface
	Queue NotificationPublisherInterface
}

func NewUpdateSaleUseCase(repo entity.SaleRepositoryInterface, publisher NotificationPublisherInterface) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		Repo:  repo,
		Queue: publisher,
	}
}

// Execute regrava a venda inteira a partir do formulário reenviado. Não há
// patch parcial: o formulário sempre carrega todos os campos editáveis.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, id string, input SaleInput) (*SaleOutput, error) {
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

	sale, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &DomainError{Code: "SALE_NOT_FOUND", Message: "venda inválida: " + err.Error()}
	}

	previousStage := sale.Stage

	sale.Date = input.Date
	sale.CompanyName = input.CompanyName
	sale.ContactName = input.ContactName
	sale.ContactMethod = input.ContactMethod
	sale.Stage = entity.NormalizeStage(input.Stage)
	sale.ProductType = input.ProductType
	sale.Type = input.Type
	sale.SalesPerson = input.SalesPerson
	sale.Vendedor = input.Vendedor
	sale.Comments = input.Comments
	sale.Lifes = input.Lifes
	sale.CNPJ = input.CNPJ
	sale.StatusFechado = input.StatusFechado
	sale.UpdatedAt = time.Now()
	sale.Normalize()

	if err := uc.Repo.Update(ctx, sale); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update sale: " + err.Error(),
		}
	}

	if uc.Queue != nil && sale.Stage != previousStage {
		event := queue.NotificationEvent{
			Type:          entity.NotificationStageMoved,
			SaleID:        sale.ID,
			CompanyName:   sale.CompanyName,
			Stage:         string(sale.Stage),
			PreviousStage: string(previousStage),
			VendedorID:    sale.Vendedor,
			OccurredAt:    time.Now(),
		}
		if err := uc.Queue.PublishNotification(ctx, event); err != nil {
			log.Printf("⚠️ Venda %s atualizada, mas falha ao publicar notificação: %v", sale.ID, err)
		}
	}

	return &SaleOutput{
		ID:    sale.ID,
		Stage: string(sale.Stage),
		Msg:   "Venda atualizada com sucesso!",
	}, nil
}
