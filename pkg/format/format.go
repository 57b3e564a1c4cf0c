// Package format concentra a formatação de valores para exibição
// (moeda, data, CPF/CNPJ, telefone). Funções puras, locale pt-BR.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Currency formata um valor monetário em reais: "R$ 1.175,00".
func Currency(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

// Date formata uma data no padrão brasileiro dd/mm/aaaa.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateISO formata uma data "YYYY-MM-DD" como dd/mm/aaaa sem efeitos de fuso
// (a string é interpretada como data de calendário, não instante).
// Entrada fora do padrão é devolvida como veio; vazio vira "N/A".
func DateISO(iso string) string {
	if iso == "" {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return Date(t)
}

// Doc aplica a máscara de CPF (11 dígitos) ou CNPJ (14 dígitos).
// Qualquer outro comprimento é devolvido como veio.
func Doc(doc string) string {
	d := Digits(doc)
	switch len(d) {
	case 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case 14:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	default:
		return doc
	}
}

// Phone aplica a máscara de telefone brasileiro com DDD: (11) 91234-5678
// para 11 dígitos, (11) 1234-5678 para 10. Outros comprimentos passam direto.
func Phone(phone string) string {
	d := Digits(phone)
	switch len(d) {
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	default:
		return phone
	}
}

// Digits remove tudo que não for dígito.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
