package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/pricing"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
	"github.com/h1brindes/orcamento-pro/internal/domain/schedule"
)

// Rótulos de degradação quando uma referência está órfã.
const (
	LabelProdutoRemovido      = "Produto removido"
	LabelClienteNaoEncontrado = "Cliente não encontrado"
)

// QuoteUseCase leitura, exclusão e transição de status de orçamentos.
// A escrita passa pelo workspace de rascunho (commit), nunca por aqui.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
}

// NewQuoteUseCase constrói o caso de uso.
func NewQuoteUseCase(
	quotes repository.QuoteRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, clients: clients, products: products}
}

// List devolve a coleção confirmada, do mais recente para o mais antigo.
func (uc *QuoteUseCase) List() []dto.QuoteResponse {
	list := uc.quotes.ListQuotes()
	out := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, *uc.toQuoteResponse(q))
	}
	return out
}

// GetByID devolve o orçamento resolvido para exibição, ou nil.
func (uc *QuoteUseCase) GetByID(id string) *dto.QuoteResponse {
	q, ok := uc.quotes.GetQuote(id)
	if !ok {
		return nil
	}
	return uc.toQuoteResponse(q)
}

// Delete remove o orçamento da coleção.
func (uc *QuoteUseCase) Delete(id string) {
	uc.quotes.DeleteQuote(id)
}

// SetStatus aplica a transição de status. Todas as transições entre os três
// estados são válidas e reversíveis; repetir o status vigente é aceito e
// idempotente. Status desconhecido é rejeitado antes de tocar o store.
func (uc *QuoteUseCase) SetStatus(id string, status string) (*dto.QuoteResponse, error) {
	st := entity.QuoteStatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrEntradaInvalida, status)
	}
	if _, ok := uc.quotes.GetQuote(id); !ok {
		return nil, fmt.Errorf("%w: orçamento %s", domain.ErrNaoEncontrado, id)
	}
	uc.quotes.SetQuoteStatus(id, st)
	q, _ := uc.quotes.GetQuote(id)
	return uc.toQuoteResponse(q), nil
}

// MinShippingDate piso corrente da data de envio (hoje + 15 dias úteis).
func (uc *QuoteUseCase) MinShippingDate(now time.Time) dto.MinShippingDateResponse {
	return dto.MinShippingDateResponse{MinDate: schedule.MinShippingDateISO(now)}
}

// ResolveItems resolve as linhas contra o catálogo corrente, degradando o
// nome para LabelProdutoRemovido quando a referência está órfã.
func (uc *QuoteUseCase) ResolveItems(items []entity.QuoteItem) []dto.QuoteItemResponse {
	out := make([]dto.QuoteItemResponse, 0, len(items))
	for _, it := range items {
		name := LabelProdutoRemovido
		removed := true
		if p, ok := uc.products.GetProduct(it.ProductID); ok {
			name = p.Name
			removed = false
		}
		out = append(out, dto.QuoteItemResponse{
			ProductID:   it.ProductID,
			ProductName: name,
			Removed:     removed,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return out
}

func (uc *QuoteUseCase) toQuoteResponse(q entity.Quote) *dto.QuoteResponse {
	clientName := LabelClienteNaoEncontrado
	if c, ok := uc.clients.GetClient(q.ClientID); ok {
		clientName = c.Name
	}
	return &dto.QuoteResponse{
		ID:            q.ID,
		Ref:           q.Ref(),
		ClientID:      q.ClientID,
		ClientName:    clientName,
		Items:         uc.ResolveItems(q.Items),
		ShippingFee:   q.ShippingFee,
		Subtotal:      pricing.Subtotal(q.Items),
		Total:         q.Total,
		ShippingDate:  q.ShippingDate,
		PaymentMethod: q.PaymentMethod,
		Observations:  q.Observations,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
}
