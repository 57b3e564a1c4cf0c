// Package pricing centraliza a derivação de valores do orçamento.
// Todas as funções são puras e operam em aritmética decimal exata
// (shopspring/decimal); arredondamento é responsabilidade da formatação.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
)

// Subtotal soma quantidade × preço unitário de todos os itens.
func Subtotal(items []entity.QuoteItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		sum = sum.Add(it.UnitPrice.Mul(qty))
	}
	return sum
}

// Total devolve Subtotal(items) + frete. Frete zero-value conta como 0.
func Total(items []entity.QuoteItem, shippingFee decimal.Decimal) decimal.Decimal {
	return Subtotal(items).Add(shippingFee)
}

// ProfitMargin margem de lucro percentual: (venda - custo) / venda × 100.
// Valor apenas para exibição; devolve 0 quando venda <= 0 ou custo <= 0.
func ProfitMargin(costPrice, sellPrice decimal.Decimal) decimal.Decimal {
	if sellPrice.LessThanOrEqual(decimal.Zero) || costPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return sellPrice.Sub(costPrice).Div(sellPrice).Mul(decimal.NewFromInt(100))
}
