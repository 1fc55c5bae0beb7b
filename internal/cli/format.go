package cli

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats an amount with thousands separators and two decimal places.
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercent formats a percentage. Undefined percentages are shown as "n/a".
func FormatPercent(p decimal.NullDecimal) string {
	if !p.Valid {
		return "n/a"
	}

	f, _ := p.Decimal.Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2))) + "%"
}

// FormatRate formats a ratio like 0.25 as a percentage.
func FormatRate(d decimal.Decimal) string {
	return FormatPercent(decimal.NewNullDecimal(d.Mul(decimal.NewFromInt(100))))
}

// FormatDays formats a day count.
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return printer.Sprintf("%d days", n)
}
