package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/h1brindes/orcamento-pro/pkg/format"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"38", "R$ 38,00"},
		{"1175", "R$ 1.175,00"},
		{"4050.5", "R$ 4.050,50"},
		{"1234567.89", "R$ 1.234.567,89"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, format.Currency(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.July, 20, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "20/07/2024", format.Date(d))
}

func TestDateISO(t *testing.T) {
	assert.Equal(t, "10/08/2024", format.DateISO("2024-08-10"))
	assert.Equal(t, "N/A", format.DateISO(""))
	assert.Equal(t, "amanhã", format.DateISO("amanhã"), "entrada fora do padrão passa direto")
}

func TestDoc(t *testing.T) {
	assert.Equal(t, "123.456.789-00", format.Doc("12345678900"), "CPF")
	assert.Equal(t, "12.345.678/0001-99", format.Doc("12345678000199"), "CNPJ")
	assert.Equal(t, "123.456.789-00", format.Doc("123.456.789-00"), "já mascarado")
	assert.Equal(t, "12345", format.Doc("12345"), "comprimento desconhecido passa direto")
	assert.Equal(t, "", format.Doc(""))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", format.Phone("11987654321"))
	assert.Equal(t, "(11) 1234-5678", format.Phone("1112345678"))
	assert.Equal(t, "123", format.Phone("123"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "01001000", format.Digits("01001-000"))
	assert.Equal(t, "5511987654321", format.Digits("+55 (11) 98765-4321"))
}
