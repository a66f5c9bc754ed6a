package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/infra/queue"
	"github.com/gestorx/vendas-api/internal/usecase"
)

func validSaleInput() usecase.SaleInput {
	return usecase.SaleInput{
		Date:          "15/03/2025",
		CompanyName:   "Acme Ltda",
		ContactName:   "João Silva",
		ContactMethod: "whatsapp",
		Stage:         "negociar",
		ProductType:   "Plano Ouro",
		Vendedor:      "user-1",
		SalesPerson:   "user-2",
		Lifes:         12,
		CNPJ:          "12.345.678/0001-95",
	}
}

func TestCreateSaleSuccess(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)
	mockQueue := new(MockNotificationPublisher)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateSaleUseCase(mockRepo, mockQueue)

	output, err := uc.Execute(ctx, validSaleInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, "negociar", output.Stage)

	mockRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(s *entity.Sale) bool {
		return s.CompanyName == "Acme Ltda" && s.Stage == entity.StageNegociar
	}))
	mockQueue.AssertCalled(t, "PublishNotification", ctx, mock.MatchedBy(func(e queue.NotificationEvent) bool {
		return e.Type == entity.NotificationSaleCreated && e.VendedorID == "user-1"
	}))
}

func TestCreateSaleNormalizesLegacyStage(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateSaleUseCase(mockRepo, nil)

	input := validSaleInput()
	input.Stage = "fechado" // sinônimo legado

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, "finalizado", output.Stage)
}

func TestCreateSaleValidationFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)

	uc := usecase.NewCreateSaleUseCase(mockRepo, nil)

	input := validSaleInput()
	input.CompanyName = "   "
	input.Date = "2025-03-15" // formato errado

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSaleDatabaseFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	uc := usecase.NewCreateSaleUseCase(mockRepo, nil)

	output, err := uc.Execute(ctx, validSaleInput())

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
}

func TestCreateSaleQueueFailureDoesNotFailCreation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)
	mockQueue := new(MockNotificationPublisher)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := usecase.NewCreateSaleUseCase(mockRepo, mockQueue)

	output, err := uc.Execute(ctx, validSaleInput())

	// A venda já foi gravada: falha na fila só é logada.
	assert.NoError(t, err)
	assert.NotNil(t, output)
}

func TestUpdateSalePublishesStageMove(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)
	mockQueue := new(MockNotificationPublisher)

	existing := &entity.Sale{
		ID:          "sale-1",
		CompanyName: "Acme Ltda",
		ContactName: "João Silva",
		Stage:       entity.StageNegociar,
		Vendedor:    "user-1",
	}
	mockRepo.On("FindByID", ctx, "sale-1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := usecase.NewUpdateSaleUseCase(mockRepo, mockQueue)

	input := validSaleInput()
	input.Stage = "finalizado"

	output, err := uc.Execute(ctx, "sale-1", input)

	assert.NoError(t, err)
	assert.Equal(t, "finalizado", output.Stage)
	mockQueue.AssertCalled(t, "PublishNotification", ctx, mock.MatchedBy(func(e queue.NotificationEvent) bool {
		return e.Type == entity.NotificationStageMoved &&
			e.PreviousStage == "negociar" &&
			e.Stage == "finalizado"
	}))
}

func TestUpdateSaleNoEventWithoutStageChange(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockSaleRepository)
	mockQueue := new(MockNotificationPublisher)

	existing := &entity.Sale{
		ID:          "sale-1",
		CompanyName: "Acme Ltda",
		ContactName: "João Silva",
		Stage:       entity.StageNegociar,
		Vendedor:    "user-1",
	}
	mockRepo.On("FindByID", ctx, "sale-1").Return(existing, nil)
	mockRepo.On("Update", ctx, mock.Anything).Return(nil)

	uc := usecase.NewUpdateSaleUseCase(mockRepo, mockQueue)

	_, err := uc.Execute(ctx, "sale-1", validSaleInput()) // continua "negociar"

	assert.NoError(t, err)
	mockQueue.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}
