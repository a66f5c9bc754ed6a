package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorx/vendas-api/internal/entity"
)

// Metrics são os KPIs do topo do dashboard.
type Metrics struct {
	TotalClosed     int     `json:"totalClosed"`
	ClosedThisMonth int     `json:"closedThisMonth"`
	ClosedPrevMonth int     `json:"closedPrevMonth"`
	AvgMonthly6     float64 `json:"avgMonthly6"`
	GrowthPct       float64 `json:"growthPct"`
}

// rollingWindowMonths é a janela do gráfico e da média móvel.
const rollingWindowMonths = 6

// ComputeMetrics agrega as vendas fechadas em torno de referenceDate.
// Função pura: não toca na slice de entrada nem em estado de processo, então
// pode ser chamada de vários pontos sem coordenação.
func ComputeMetrics(sales []entity.Sale, referenceDate time.Time) Metrics {
	closed := closedSales(sales)

	refMonth := int(referenceDate.Month())
	refYear := referenceDate.Year()

	current := countInMonth(closed, refMonth, refYear)

	prevMonth, prevYear := monthsBack(refMonth, refYear, 1)
	previous := countInMonth(closed, prevMonth, prevYear)

	var sum int
	for i := 0; i < rollingWindowMonths; i++ {
		m, y := monthsBack(refMonth, refYear, i)
		sum += countInMonth(closed, m, y)
	}

	return Metrics{
		TotalClosed:     len(closed),
		ClosedThisMonth: current,
		ClosedPrevMonth: previous,
		AvgMonthly6:     round1(float64(sum) / rollingWindowMonths),
		GrowthPct:       growthPct(current, previous),
	}
}

func closedSales(sales []entity.Sale) []entity.Sale {
	var closed []entity.Sale
	for _, s := range sales {
		if s.Closed() {
			closed = append(closed, s)
		}
	}
	return closed
}

// countInMonth conta vendas cuja data parseada cai em (month, year).
// Datas malformadas ficam fora da contagem, sem erro.
func countInMonth(sales []entity.Sale, month, year int) int {
	count := 0
	for _, s := range sales {
		d, ok := ParseDate(s.Date)
		if ok && d.InMonth(month, year) {
			count++
		}
	}
	return count
}

// monthsBack volta n meses a partir de (month, year), com rollover de ano.
func monthsBack(month, year, n int) (int, int) {
	m := month - n
	y := year
	for m < 1 {
		m += 12
		y--
	}
	return m, y
}

// growthPct é a variação percentual mês contra mês. Divisão por zero é
// tratada pelas regras do produto: crescimento "infinito" vira 100, e
// zero-sobre-zero vira 0.
func growthPct(current, previous int) float64 {
	if previous > 0 {
		return round1(float64(current-previous) / float64(previous) * 100)
	}
	if current > 0 {
		return 100
	}
	return 0
}

// round1 arredonda para uma casa decimal (half-up). decimal evita as
// surpresas de float64 em valores tipo 0.15.
func round1(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(1).Float64()
	return f
}
