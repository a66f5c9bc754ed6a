package usecase

import (
	"context"
	"strings"

	"github.com/gestorx/vendas-api/internal/entity"
)

type RecordLoginUseCase struct {
	History entity.LoginHistoryRepositoryInterface
}

func NewRecordLoginUseCase(history entity.LoginHistoryRepositoryInterface) *RecordLoginUseCase {
	return &RecordLoginUseCase{History: history}
}

func (uc *RecordLoginUseCase) Execute(ctx context.Context, userID, userAgent, ip string) error {
	if strings.TrimSpace(userID) == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "userId is required"}
	}

	entry := entity.NewLoginHistory(userID, userAgent, ip)
	if err := uc.History.Create(ctx, entry); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to record login: " + err.Error(),
		}
	}
	return nil
}
