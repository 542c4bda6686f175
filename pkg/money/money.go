// Package money formatea montos para presentación según moneda ISO 4217 y locale.
// Es el único punto del servicio donde un monto se convierte en texto con símbolo.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea montos en una moneda y locale fijos.
type Formatter struct {
	unit    currency.Unit
	tag     language.Tag
	printer *message.Printer
	scale   int
}

// NewFormatter valida el código de moneda y el locale (ej: "COP", "es-CO").
func NewFormatter(currencyCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("moneda %q inválida: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q inválido: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{unit: unit, tag: tag, printer: message.NewPrinter(tag), scale: scale}, nil
}

// Currency código ISO de la moneda.
func (f *Formatter) Currency() string { return f.unit.String() }

// Symbol símbolo local de la moneda, ej: "$" o "US$".
func (f *Formatter) Symbol() string { return f.printer.Sprint(currency.Symbol(f.unit)) }

// Format devuelve el monto con símbolo, separadores del locale y los decimales
// estándar de la moneda.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(int32(f.scale))
	n := f.printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(f.scale)))
	return f.Symbol() + " " + n
}

// FormatNumber formatea un número sin símbolo con los separadores del locale.
func (f *Formatter) FormatNumber(v decimal.Decimal, decimals int) string {
	return f.printer.Sprint(number.Decimal(v.Round(int32(decimals)).InexactFloat64(), number.Scale(decimals)))
}

// FormatCurrency atajo para formatear un solo monto.
func FormatCurrency(amount decimal.Decimal, currencyCode, locale string) (string, error) {
	f, err := NewFormatter(currencyCode, locale)
	if err != nil {
		return "", err
	}
	return f.Format(amount), nil
}
