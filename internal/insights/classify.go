package insights

import "github.com/gestorx/vendas-api/internal/entity"

// CustomerStatus é o status derivado do cliente na listagem de clientes.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerPending  CustomerStatus = "pending"
)

var customerStatusLabels = map[CustomerStatus]string{
	CustomerActive:   "Ativo",
	CustomerInactive: "Inativo",
	CustomerPending:  "Pendente",
}

func (s CustomerStatus) Label() string {
	if label, ok := customerStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ClassifyCustomerStatus deriva o status do cliente a partir do estágio da
// venda. A ordem importa: statusFechado é um override manual e vence mesmo
// quando o estágio indicaria inativo ou pendente.
func ClassifyCustomerStatus(stage entity.Stage, statusFechado bool) CustomerStatus {
	if statusFechado {
		return CustomerActive
	}
	switch stage {
	case entity.StageFinalizado, entity.StagePosVenda:
		return CustomerActive
	case entity.StagePerdida:
		return CustomerInactive
	}
	return CustomerPending
}
