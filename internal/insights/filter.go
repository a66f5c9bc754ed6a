package insights

import "github.com/gestorx/vendas-api/internal/entity"

// Filters são predicados independentes combinados com AND. Campo vazio não
// exclui nenhum registro.
type Filters struct {
	Stage         string
	Vendedor      string
	ProductType   string
	ContactMethod string
	Type          string
	StartDate     string // DD/MM/YYYY, inclusivo
	EndDate       string // DD/MM/YYYY, inclusivo
}

func (f Filters) Empty() bool {
	return f == Filters{}
}

// ApplyFilters filtra um snapshot de vendas. Função pura: a slice de entrada
// não é alterada e a ordem relativa dos registros é preservada.
func ApplyFilters(sales []entity.Sale, f Filters) []entity.Sale {
	startKey, hasStart := rangeBound(f.StartDate)
	endKey, hasEnd := rangeBound(f.EndDate)

	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if f.Stage != "" && string(s.Stage) != f.Stage {
			continue
		}
		if f.Vendedor != "" && s.Vendedor != f.Vendedor {
			continue
		}
		if f.ProductType != "" && s.ProductType != f.ProductType {
			continue
		}
		if f.ContactMethod != "" && s.ContactMethod != f.ContactMethod {
			continue
		}
		if f.Type != "" && s.Type != f.Type {
			continue
		}

		if hasStart || hasEnd {
			d, ok := ParseDate(s.Date)
			if !ok {
				// Data malformada não casa com filtro de período.
				continue
			}
			key := d.SortKey()
			if hasStart && key < startKey {
				continue
			}
			if hasEnd && key > endKey {
				continue
			}
		}

		out = append(out, s)
	}
	return out
}

// rangeBound trata o limite do intervalo: vazio ou malformado vira ausente
// (não exclui nada).
func rangeBound(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	d, ok := ParseDate(s)
	if !ok {
		return 0, false
	}
	return d.SortKey(), true
}
