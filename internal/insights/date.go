package insights

import (
	"strconv"
	"strings"
)

// Date é o resultado do parse de uma data DD/MM/YYYY. Não é validada contra
// o calendário: só serve para comparação de mês/ano e de intervalo, nunca
// para aritmética de datas.
type Date struct {
	Day   int
	Month int
	Year  int
}

// ParseDate quebra uma string DD/MM/YYYY. Um registro com data malformada
// não é erro: ele simplesmente não casa com nenhum filtro de período, e o
// restante do conjunto continua sendo agregado.
func ParseDate(s string) (Date, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, false
	}

	return Date{Day: day, Month: month, Year: year}, true
}

// InMonth compara só (mês, ano).
func (d Date) InMonth(month, year int) bool {
	return d.Month == month && d.Year == year
}

// SortKey devolve um inteiro comparável (AAAAMMDD) para comparação de
// intervalo inclusiva.
func (d Date) SortKey() int {
	return d.Year*10000 + d.Month*100 + d.Day
}
