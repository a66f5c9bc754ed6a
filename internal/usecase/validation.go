package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/insights"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSaleInput(input SaleInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyName) == "" {
		errors = append(errors, ValidationError{"companyName", "is required"})
	} else if len(input.CompanyName) > 200 {
		errors = append(errors, ValidationError{"companyName", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.ContactName) == "" {
		errors = append(errors, ValidationError{"contactName", "is required"})
	}

	if input.ContactMethod != "" && !entity.ValidContactMethod(input.ContactMethod) {
		errors = append(errors, ValidationError{"contactMethod", "must be presencial, telefone, email or whatsapp"})
	}

	if input.Stage != "" && !entity.NormalizeStage(input.Stage).Known() {
		errors = append(errors, ValidationError{"stage", "is not a known pipeline stage"})
	}

	// Data é opcional no formulário, mas quando vem tem que ser DD/MM/AAAA,
	// senão a venda nunca entraria em nenhum bucket do dashboard.
	if input.Date != "" {
		if _, ok := insights.ParseDate(input.Date); !ok {
			errors = append(errors, ValidationError{"date", "must be a valid date (DD/MM/YYYY)"})
		}
	}

	if input.CNPJ != "" && !isValidCNPJ(input.CNPJ) {
		errors = append(errors, ValidationError{"cnpj", "is invalid"})
	}

	if input.Lifes < 0 {
		errors = append(errors, ValidationError{"lifes", "must not be negative"})
	}

	return errors
}

func ValidateProspectionInput(input ProspectionInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyName) == "" {
		errors = append(errors, ValidationError{"companyName", "is required"})
	}
	if strings.TrimSpace(input.ContactName) == "" {
		errors = append(errors, ValidationError{"contactName", "is required"})
	}
	if input.ContactMethod != "" && !entity.ValidContactMethod(input.ContactMethod) {
		errors = append(errors, ValidationError{"contactMethod", "must be presencial, telefone, email or whatsapp"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

func isValidCNPJ(cnpj string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(cnpj, "")

	if len(cleaned) != 14 {
		return false
	}

	// CNPJ com todos os dígitos iguais passa no cálculo mas é inválido.
	firstDigit := cleaned[0]
	allEqual := true
	for i := 1; i < len(cleaned); i++ {
		if cleaned[i] != firstDigit {
			allEqual = false
			break
		}
	}
	return !allEqual
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 11
}
