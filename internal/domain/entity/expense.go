package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo (arriendo, servicios, nómina...). Nunca forma parte del COGS.
type Expense struct {
	ID          string
	Amount      decimal.Decimal
	Description string
	CategoryID  string
	Category    *Category
	PaymentDate time.Time
}

// InitialInvestment capital invertido en el negocio; denominador del ROI y del punto de equilibrio.
type InitialInvestment struct {
	ID             string
	Amount         decimal.Decimal
	Description    string
	InvestmentDate time.Time
}

// Settings fila única de configuración global del negocio.
type Settings struct {
	Currency string // código ISO 4217, ej. "COP"
}
