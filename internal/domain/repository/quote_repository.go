package repository

import "github.com/h1brindes/orcamento-pro/internal/domain/entity"

// QuoteRepository port de acesso à coleção de orçamentos.
// A lista é mantida do mais recente para o mais antigo: AddQuote sempre
// insere no início (invariante observável da coleção).
type QuoteRepository interface {
	ListQuotes() []entity.Quote
	GetQuote(id string) (entity.Quote, bool)
	AddQuote(q entity.Quote)
	UpdateQuote(q entity.Quote)
	DeleteQuote(id string)
	// SetQuoteStatus altera somente o campo status; os demais campos e o
	// total gravado permanecem intocados. Aplicar o status vigente é no-op.
	SetQuoteStatus(id string, status entity.QuoteStatus)
}
