package usecase

import (
	"context"
	"log"

	"github.com/gestorx/vendas-api/internal/entity"
)

// ConvertProspectionUseCase transforma uma prospecção pendente em venda no
// estágio inicial do pipeline.
type ConvertProspectionUseCase struct {
	Prospections entity.ProspectionRepositoryInterface
	CreateSale   *CreateSaleUseCase
}

func NewConvertProspectionUseCase(prospections entity.ProspectionRepositoryInterface, createSale *CreateSaleUseCase) *ConvertProspectionUseCase {
	return &ConvertProspectionUseCase{
		Prospections: prospections,
		CreateSale:   createSale,
	}
}

type ConvertProspectionInput struct {
	ProspectionID string `json:"prospectionId"`
	Date          string `json:"date"` // DD/MM/YYYY
	Vendedor      string `json:"vendedor"`
	SalesPerson   string `json:"salesPerson"`
}

func (uc *ConvertProspectionUseCase) Execute(ctx context.Context, input ConvertProspectionInput) (*SaleOutput, error) {
	prospection, err := uc.Prospections.FindByID(ctx, input.ProspectionID)
	if err != nil {
		return nil, &DomainError{Code: "PROSPECTION_NOT_FOUND", Message: "prospecção inválida: " + err.Error()}
	}

	if prospection.Status == entity.ProspectionConvertida {
		return nil, &DomainError{Code: "ALREADY_CONVERTED", Message: "prospecção já foi convertida em venda"}
	}

	output, err := uc.CreateSale.Execute(ctx, SaleInput{
		Date:          input.Date,
		CompanyName:   prospection.CompanyName,
		ContactName:   prospection.ContactName,
		ContactMethod: prospection.ContactMethod,
		Stage:         string(entity.StageProspeccao),
		ProductType:   prospection.ProductType,
		Vendedor:      input.Vendedor,
		SalesPerson:   input.SalesPerson,
		Comments:      prospection.Notes,
	})
	if err != nil {
		return nil, err
	}

	// A venda já existe neste ponto. Falha na marcação não desfaz a venda:
	// fica logado para acerto manual.
	if err := uc.Prospections.MarkConverted(ctx, prospection.ID, output.ID); err != nil {
		log.Printf("⚠️ Venda %s criada, mas falha ao marcar prospecção %s como convertida: %v", output.ID, prospection.ID, err)
	}

	return output, nil
}
