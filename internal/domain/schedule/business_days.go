// Package schedule calcula o piso da data de envio de um orçamento:
// hoje + 15 dias úteis, pulando fins de semana e os oito feriados nacionais
// de data fixa. Feriados móveis (Carnaval, Corpus Christi) ficam de fora.
package schedule

import "time"

// MinShippingBusinessDays prazo mínimo de produção/envio em dias úteis.
const MinShippingBusinessDays = 15

// Feriados nacionais de data fixa (MM-DD).
var holidays = map[string]struct{}{
	"01-01": {}, // Confraternização Universal
	"04-21": {}, // Tiradentes
	"05-01": {}, // Dia do Trabalho
	"09-07": {}, // Independência do Brasil
	"10-12": {}, // Nossa Senhora Aparecida
	"11-02": {}, // Finados
	"11-15": {}, // Proclamação da República
	"12-25": {}, // Natal
}

// IsHoliday informa se a data cai em um dos feriados fixos.
func IsHoliday(d time.Time) bool {
	_, ok := holidays[d.Format("01-02")]
	return ok
}

// IsBusinessDay dia útil: não é sábado, domingo nem feriado fixo.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !IsHoliday(d)
}

// MinShippingDate devolve a primeira data de envio permitida a partir de
// `today`: avança um dia de calendário por vez, a partir de amanhã,
// decrementando o contador apenas em dias úteis. O resultado é um piso
// inclusivo.
func MinShippingDate(today time.Time) time.Time {
	d := today
	remaining := MinShippingBusinessDays
	for remaining > 0 {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d) {
			remaining--
		}
	}
	return d
}

// MinShippingDateISO formato YYYY-MM-DD, usado como atributo mínimo do campo
// de data no formulário e na validação de commit.
func MinShippingDateISO(today time.Time) string {
	return MinShippingDate(today).Format("2006-01-02")
}
