package analytics

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders v as Brazilian reais, e.g. "R$ 2.847.500,00"
func FormatCurrency(v float64) string {
	return "R$ " + ptBR.Sprintf("%.2f", v)
}

// FormatNumber renders v with pt-BR grouping and up to three decimals, e.g. "1.842"
func FormatNumber(v float64) string {
	return ptBR.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatPercent renders v with one decimal and an explicit sign, e.g. "+12.3%"
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64) + "%"
	if v >= 0 {
		return "+" + s
	}
	return s
}

// plain renders a number the way a spreadsheet cell expects it: no grouping, shortest form
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDecimal renders v with pt-BR separators and exactly digits decimals, e.g. "31,2"
func FormatDecimal(v float64, digits int) string {
	return ptBR.Sprint(number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}
