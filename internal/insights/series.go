package insights

import (
	"fmt"
	"time"

	"github.com/gestorx/vendas-api/internal/entity"
)

// MonthBucket é um ponto do gráfico de vendas fechadas por mês.
type MonthBucket struct {
	Label string `json:"label"` // ex: "jan/25"
	Count int    `json:"count"`
}

var monthAbbr = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// BuildMonthlySeries monta a série dos últimos 6 meses, do mais antigo para
// o mais recente (o mês de referência fecha a série). Sempre devolve 6
// entradas, mesmo com entrada vazia. Determinística para a mesma entrada.
func BuildMonthlySeries(sales []entity.Sale, referenceDate time.Time) []MonthBucket {
	closed := closedSales(sales)

	refMonth := int(referenceDate.Month())
	refYear := referenceDate.Year()

	series := make([]MonthBucket, 0, rollingWindowMonths)
	for i := rollingWindowMonths - 1; i >= 0; i-- {
		m, y := monthsBack(refMonth, refYear, i)
		series = append(series, MonthBucket{
			Label: monthLabel(m, y),
			Count: countInMonth(closed, m, y),
		})
	}
	return series
}

func monthLabel(month, year int) string {
	return fmt.Sprintf("%s/%02d", monthAbbr[month-1], year%100)
}
