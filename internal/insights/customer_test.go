package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestorx/vendas-api/internal/entity"
)

func TestDeriveCustomersOneRowPerSale(t *testing.T) {
	sales := []entity.Sale{
		{ID: "s1", CompanyName: "Acme", Stage: entity.StageFinalizado, Vendedor: "u1", ProductType: "Plano Ouro", Date: "10/01/2025"},
		{ID: "s2", CompanyName: "Beta", Stage: entity.StagePerdida, Vendedor: "u2", ProductType: "Plano Prata", Date: "12/01/2025"},
		{ID: "s3", CompanyName: "Gama", Stage: entity.StageNegociar, Vendedor: "u1", ProductType: "Plano Ouro", Date: "15/01/2025"},
	}
	users := []entity.User{
		{ID: "u1", Name: "Maria"},
	}
	products := []entity.Product{
		{ID: "p1", Name: "Plano Ouro", Category: "saúde"},
	}

	customers := DeriveCustomers(sales, users, products)

	assert.Len(t, customers, 3)

	assert.Equal(t, CustomerActive, customers[0].Status)
	assert.Equal(t, "Ativo", customers[0].StatusLabel)
	assert.Equal(t, "Maria", customers[0].Vendedor)
	assert.Equal(t, "saúde", customers[0].ProductCategory)

	// FK frouxa sem correspondência: exibe o valor bruto.
	assert.Equal(t, CustomerInactive, customers[1].Status)
	assert.Equal(t, "u2", customers[1].Vendedor)
	assert.Equal(t, "Plano Prata", customers[1].Product)
	assert.Equal(t, "", customers[1].ProductCategory)

	assert.Equal(t, CustomerPending, customers[2].Status)
}

func TestDeriveCustomersStatusFechadoOverride(t *testing.T) {
	sales := []entity.Sale{
		{ID: "s1", CompanyName: "Acme", Stage: entity.StagePerdida, StatusFechado: true},
	}

	customers := DeriveCustomers(sales, nil, nil)

	assert.Equal(t, CustomerActive, customers[0].Status)
}

func TestDeriveCustomersEmptyInput(t *testing.T) {
	customers := DeriveCustomers(nil, nil, nil)

	assert.NotNil(t, customers)
	assert.Len(t, customers, 0)
}
