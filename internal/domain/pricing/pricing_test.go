package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/pricing"
)

func item(productID string, qty int, price string) entity.QuoteItem {
	return entity.QuoteItem{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal / Total
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_SomaItensMaisFrete(t *testing.T) {
	items := []entity.QuoteItem{
		item("p1", 2, "350.00"),
		item("p3", 1, "450.00"),
	}
	frete := decimal.RequireFromString("25.00")

	total := pricing.Total(items, frete)

	assert.True(t, decimal.RequireFromString("1175.00").Equal(total),
		"total deve ser 2×350 + 1×450 + 25 = 1175, obtido %s", total)
}

func TestTotal_ListaVaziaEhSomenteFrete(t *testing.T) {
	total := pricing.Total(nil, decimal.RequireFromString("10"))
	assert.True(t, decimal.NewFromInt(10).Equal(total))
}

func TestTotal_FreteZeroValue(t *testing.T) {
	// Frete não informado (zero value do decimal) conta como 0.
	total := pricing.Total([]entity.QuoteItem{item("p1", 3, "38")}, decimal.Decimal{})
	assert.True(t, decimal.NewFromInt(114).Equal(total))
}

func TestSubtotal_IndependenteDaOrdem(t *testing.T) {
	a := []entity.QuoteItem{item("p1", 2, "350"), item("p2", 100, "38"), item("p3", 1, "450")}
	b := []entity.QuoteItem{item("p3", 1, "450"), item("p1", 2, "350"), item("p2", 100, "38")}

	assert.True(t, pricing.Subtotal(a).Equal(pricing.Subtotal(b)),
		"a ordem dos itens não pode alterar o subtotal")
}

func TestSubtotal_AritmeticaDecimalExata(t *testing.T) {
	// 0.1 + 0.2 clássico: em float64 daria 0.30000000000000004.
	items := []entity.QuoteItem{
		item("p1", 1, "0.1"),
		item("p2", 1, "0.2"),
	}
	require.Equal(t, "0.3", pricing.Subtotal(items).String())
}

func TestSubtotal_QuantidadeZeroNaoContribui(t *testing.T) {
	items := []entity.QuoteItem{item("p1", 0, "999.99"), item("p2", 1, "38")}
	assert.True(t, decimal.NewFromInt(38).Equal(pricing.Subtotal(items)))
}

// ──────────────────────────────────────────────────────────────────────────────
// ProfitMargin
// ──────────────────────────────────────────────────────────────────────────────

func TestProfitMargin(t *testing.T) {
	cases := []struct {
		name string
		cost string
		sell string
		want string
	}{
		{"margem positiva", "250", "350", "28.57"},
		{"margem cheia", "25", "100", "75"},
		{"venda zero", "250", "0", "0"},
		{"custo zero", "0", "350", "0"},
		{"venda negativa", "10", "-5", "0"},
		{"sem lucro", "100", "100", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ProfitMargin(
				decimal.RequireFromString(tc.cost),
				decimal.RequireFromString(tc.sell),
			).Round(2)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got),
				"esperado %s, obtido %s", tc.want, got)
		})
	}
}
