package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/usecase"
)

func TestConvertProspectionSuccess(t *testing.T) {
	ctx := context.Background()
	mockProspections := new(MockProspectionRepository)
	mockSales := new(MockSaleRepository)

	prospection := &entity.Prospection{
		ID:          "prosp-1",
		CompanyName: "Acme Ltda",
		ContactName: "João Silva",
		Status:      entity.ProspectionPendente,
		ProductType: "Plano Ouro",
	}
	mockProspections.On("FindByID", ctx, "prosp-1").Return(prospection, nil)
	mockProspections.On("MarkConverted", ctx, "prosp-1", mock.Anything).Return(nil)
	mockSales.On("Create", ctx, mock.Anything).Return(nil)

	createSale := usecase.NewCreateSaleUseCase(mockSales, nil)
	uc := usecase.NewConvertProspectionUseCase(mockProspections, createSale)

	output, err := uc.Execute(ctx, usecase.ConvertProspectionInput{
		ProspectionID: "prosp-1",
		Date:          "10/03/2025",
		Vendedor:      "user-1",
		SalesPerson:   "user-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "prospecção", output.Stage)

	// A venda nasce no estágio inicial do pipeline, herdando os dados do lead.
	mockSales.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(s *entity.Sale) bool {
		return s.CompanyName == "Acme Ltda" && s.Stage == entity.StageProspeccao
	}))
	mockProspections.AssertCalled(t, "MarkConverted", ctx, "prosp-1", mock.Anything)
}

func TestConvertProspectionAlreadyConverted(t *testing.T) {
	ctx := context.Background()
	mockProspections := new(MockProspectionRepository)

	prospection := &entity.Prospection{
		ID:          "prosp-1",
		CompanyName: "Acme Ltda",
		ContactName: "João Silva",
		Status:      entity.ProspectionConvertida,
		SaleID:      "sale-9",
	}
	mockProspections.On("FindByID", ctx, "prosp-1").Return(prospection, nil)

	uc := usecase.NewConvertProspectionUseCase(mockProspections, usecase.NewCreateSaleUseCase(new(MockSaleRepository), nil))

	output, err := uc.Execute(ctx, usecase.ConvertProspectionInput{ProspectionID: "prosp-1"})

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
}

func TestConvertProspectionNotFound(t *testing.T) {
	ctx := context.Background()
	mockProspections := new(MockProspectionRepository)
	mockProspections.On("FindByID", ctx, "missing").Return(nil, entity.ErrProspectionNotFound)

	uc := usecase.NewConvertProspectionUseCase(mockProspections, usecase.NewCreateSaleUseCase(new(MockSaleRepository), nil))

	output, err := uc.Execute(ctx, usecase.ConvertProspectionInput{ProspectionID: "missing"})

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
}

func TestCaptureProspection(t *testing.T) {
	ctx := context.Background()
	mockProspections := new(MockProspectionRepository)
	mockProspections.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCaptureProspectionUseCase(mockProspections)

	output, err := uc.Execute(ctx, usecase.ProspectionInput{
		CompanyName: "Beta SA",
		ContactName: "Maria",
		Phone:       "(11) 99999-9999",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ProspectionPendente, output.Status)
}

func TestCaptureProspectionValidation(t *testing.T) {
	uc := usecase.NewCaptureProspectionUseCase(new(MockProspectionRepository))

	output, err := uc.Execute(context.Background(), usecase.ProspectionInput{
		CompanyName: "Beta SA",
		// ContactName ausente
		Phone: "123",
	})

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
}
