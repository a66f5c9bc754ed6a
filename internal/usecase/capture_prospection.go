package usecase

import (
	"context"

	"github.com/gestorx/vendas-api/internal/entity"
)

type CaptureProspectionUseCase struct {
	Repo entity.ProspectionRepositoryInterface
}

func NewCaptureProspectionUseCase(repo entity.ProspectionRepositoryInterface) *CaptureProspectionUseCase {
	return &CaptureProspectionUseCase{Repo: repo}
}

func (uc *CaptureProspectionUseCase) Execute(ctx context.Context, input ProspectionInput) (*ProspectionOutput, error) {
	validationErrors := ValidateProspectionInput(input)
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

	prospection, err := entity.NewProspection(
		input.CompanyName,
		input.ContactName,
		input.ContactMethod,
		input.Phone,
		input.Email,
		input.ProductType,
		input.Notes,
	)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_PROSPECTION", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, prospection); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist prospection: " + err.Error(),
		}
	}

	return &ProspectionOutput{
		ID:     prospection.ID,
		Status: prospection.Status,
		Msg:    "Prospecção registrada com sucesso!",
	}, nil
}
