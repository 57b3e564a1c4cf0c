package entity

import "github.com/shopspring/decimal"

// Product representa um produto do catálogo.
// A margem de lucro é derivada (ver pricing.ProfitMargin) e nunca persistida.
type Product struct {
	ID          string
	Name        string
	Category    string
	Description string
	CostPrice   decimal.Decimal
	SellPrice   decimal.Decimal
}
