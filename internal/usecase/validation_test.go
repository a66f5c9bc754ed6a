package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestorx/vendas-api/internal/usecase"
)

func fields(errs []usecase.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateSaleInputValid(t *testing.T) {
	errs := usecase.ValidateSaleInput(validSaleInput())
	assert.Empty(t, errs)
}

func TestValidateSaleInputRequiredFields(t *testing.T) {
	errs := usecase.ValidateSaleInput(usecase.SaleInput{})

	assert.Contains(t, fields(errs), "companyName")
	assert.Contains(t, fields(errs), "contactName")
}

func TestValidateSaleInputContactMethod(t *testing.T) {
	input := validSaleInput()
	input.ContactMethod = "fax"

	errs := usecase.ValidateSaleInput(input)

	assert.Contains(t, fields(errs), "contactMethod")
}

func TestValidateSaleInputDateFormat(t *testing.T) {
	input := validSaleInput()
	input.Date = "2025-03-15"

	errs := usecase.ValidateSaleInput(input)

	assert.Contains(t, fields(errs), "date")
}

func TestValidateSaleInputDateOptional(t *testing.T) {
	input := validSaleInput()
	input.Date = ""

	errs := usecase.ValidateSaleInput(input)

	assert.NotContains(t, fields(errs), "date")
}

func TestValidateSaleInputLegacyStageAccepted(t *testing.T) {
	input := validSaleInput()
	input.Stage = "fechado"

	errs := usecase.ValidateSaleInput(input)

	assert.NotContains(t, fields(errs), "stage")
}

func TestValidateSaleInputUnknownStage(t *testing.T) {
	input := validSaleInput()
	input.Stage = "em análise"

	errs := usecase.ValidateSaleInput(input)

	assert.Contains(t, fields(errs), "stage")
}

func TestValidateSaleInputCNPJ(t *testing.T) {
	input := validSaleInput()

	input.CNPJ = "123"
	assert.Contains(t, fields(usecase.ValidateSaleInput(input)), "cnpj")

	input.CNPJ = "11111111111111"
	assert.Contains(t, fields(usecase.ValidateSaleInput(input)), "cnpj")

	input.CNPJ = "12.345.678/0001-95"
	assert.NotContains(t, fields(usecase.ValidateSaleInput(input)), "cnpj")

	input.CNPJ = ""
	assert.NotContains(t, fields(usecase.ValidateSaleInput(input)), "cnpj")
}

func TestValidateSaleInputNegativeLifes(t *testing.T) {
	input := validSaleInput()
	input.Lifes = -1

	errs := usecase.ValidateSaleInput(input)

	assert.Contains(t, fields(errs), "lifes")
}

func TestValidateProspectionInputPhone(t *testing.T) {
	input := usecase.ProspectionInput{
		CompanyName: "Beta SA",
		ContactName: "Maria",
		Phone:       "123",
	}

	errs := usecase.ValidateProspectionInput(input)
	assert.Contains(t, fields(errs), "phone")

	input.Phone = "(11) 98888-7766"
	assert.Empty(t, usecase.ValidateProspectionInput(input))
}
