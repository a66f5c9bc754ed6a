package insights

import "github.com/gestorx/vendas-api/internal/entity"

// Customer não é persistido: é a visão derivada de uma venda na tela de
// clientes (uma venda → uma linha de cliente).
type Customer struct {
	SaleID        string         `json:"saleId"`
	CompanyName   string         `json:"companyName"`
	ContactName   string         `json:"contactName"`
	Status        CustomerStatus `json:"status"`
	StatusLabel   string         `json:"statusLabel"`
	StageLabel    string         `json:"stageLabel"`
	Vendedor      string         `json:"vendedor"`
	Product       string         `json:"product"`
	ProductCategory string       `json:"productCategory,omitempty"`
	Since         string         `json:"since"` // data da venda, como gravada
	CNPJ          string         `json:"cnpj,omitempty"`
	Lifes         int            `json:"lifes,omitempty"`
	ContactMethod string         `json:"contactMethod,omitempty"`
}

// DeriveCustomers materializa a listagem de clientes. As chaves estrangeiras
// frouxas (vendedor por ID, produto por nome) são resolvidas por mapas
// montados uma vez por chamada; quando não resolvem, o valor bruto é exibido.
func DeriveCustomers(sales []entity.Sale, users []entity.User, products []entity.Product) []Customer {
	usersByID := make(map[string]string, len(users))
	for _, u := range users {
		usersByID[u.ID] = u.Name
	}
	productsByName := make(map[string]entity.Product, len(products))
	for _, p := range products {
		productsByName[p.Name] = p
	}

	customers := make([]Customer, 0, len(sales))
	for _, s := range sales {
		status := ClassifyCustomerStatus(s.Stage, s.StatusFechado)

		vendedor := s.Vendedor
		if name, ok := usersByID[vendedor]; ok {
			vendedor = name
		}
		// ProductType é FK frouxa pelo nome do produto; quando não resolve,
		// o nome bruto gravado na venda é exibido do mesmo jeito.
		category := ""
		if p, ok := productsByName[s.ProductType]; ok {
			category = p.Category
		}

		customers = append(customers, Customer{
			SaleID:          s.ID,
			CompanyName:     s.CompanyName,
			ContactName:     s.ContactName,
			Status:          status,
			StatusLabel:     status.Label(),
			StageLabel:      s.Stage.Label(),
			Vendedor:        vendedor,
			Product:         s.ProductType,
			ProductCategory: category,
			Since:         s.Date,
			CNPJ:          s.CNPJ,
			Lifes:         s.Lifes,
			ContactMethod: s.ContactMethod,
		})
	}
	return customers
}
