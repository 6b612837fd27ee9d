package internal

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountFormatter prints full-precision dollar amounts with locale digit grouping,
// for tables where the compact axis format would hide differences.
type AmountFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewAmountFormatter returns a formatter for the given locale
func NewAmountFormatter(tag language.Tag) AmountFormatter {
	p := message.NewPrinter(tag)
	return AmountFormatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(currency.USD)),
	}
}

// Format renders amount with no decimals, e.g. "$1,234,567" for en-US.
// Negative amounts keep the sign in front of the symbol.
func (f AmountFormatter) Format(amount float64) string {
	if f.printer == nil {
		f = NewAmountFormatter(language.AmericanEnglish)
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + f.symbol + f.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}
