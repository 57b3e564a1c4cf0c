package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus estado do orçamento. Todas as transições são reversíveis;
// não existe estado terminal.
type QuoteStatus string

const (
	StatusAberto    QuoteStatus = "Aberto"
	StatusAprovado  QuoteStatus = "Aprovado"
	StatusCancelado QuoteStatus = "Cancelado"
)

// Valid informa se o status é um dos três valores conhecidos.
func (s QuoteStatus) Valid() bool {
	return s == StatusAberto || s == StatusAprovado || s == StatusCancelado
}

// QuoteItem linha de um orçamento. UnitPrice é um retrato do preço de venda
// do produto no momento em que o item foi adicionado: alterações posteriores
// no catálogo nunca alteram itens já gravados. ProductID pode ficar órfão se
// o produto for excluído; a apresentação exibe "Produto removido".
type QuoteItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Quote representa um orçamento emitido para um cliente.
// Total é derivado (soma dos itens + frete) e gravado no momento do commit;
// CreatedAt é imutável após a criação.
type Quote struct {
	ID            string
	ClientID      string
	Items         []QuoteItem
	ShippingFee   decimal.Decimal
	Total         decimal.Decimal
	ShippingDate  string // YYYY-MM-DD
	PaymentMethod string
	Observations  string
	Status        QuoteStatus
	CreatedAt     time.Time
}

// Ref devolve a referência curta do orçamento (6 primeiros caracteres do ID),
// usada no documento impresso e na mensagem de compartilhamento.
func (q Quote) Ref() string {
	if len(q.ID) <= 6 {
		return q.ID
	}
	return q.ID[:6]
}
