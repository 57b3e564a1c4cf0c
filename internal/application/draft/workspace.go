// Package draft implementa o rascunho de orçamento: a cópia de trabalho
// mutável que vive fora da coleção confirmada até o commit. Existe no máximo
// um rascunho por vez; ele é reconciliado a cada entrada na tela de edição e
// descartado no commit bem-sucedido.
package draft

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/pricing"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
	"github.com/h1brindes/orcamento-pro/internal/domain/schedule"
)

// Draft espelho parcial e possivelmente incompleto de um Quote.
// ID vazio significa criação; preenchido, edição do orçamento correspondente.
type Draft struct {
	ID            string
	ClientID      string
	Items         []entity.QuoteItem
	ShippingFee   decimal.Decimal
	ShippingDate  string
	PaymentMethod string
	Observations  string
	Status        entity.QuoteStatus
}

// Mode intenção de edição ao entrar no formulário.
type Mode struct {
	Editing bool
	QuoteID string
}

// ModeCreate modo de criação de um novo orçamento.
func ModeCreate() Mode { return Mode{} }

// ModeEdit modo de edição do orçamento com o id dado.
func ModeEdit(quoteID string) Mode { return Mode{Editing: true, QuoteID: quoteID} }

// FieldPatch alteração campo a campo do rascunho (merge raso; nil = mantém).
type FieldPatch struct {
	ClientID      *string
	ShippingFee   *decimal.Decimal
	ShippingDate  *string
	PaymentMethod *string
	Observations  *string
}

func emptyDraft() *Draft {
	return &Draft{Status: entity.StatusAberto}
}

// Reconcile decide o rascunho vigente ao entrar no formulário. Função pura:
//   - criação com rascunho ausente ou pertencente a outra edição → rascunho vazio;
//   - criação com rascunho de criação em andamento → mantém (retomada);
//   - edição de X com rascunho de X → mantém;
//   - edição de X sem rascunho compatível → clone dos campos confirmados de X,
//     ou, se X não existir, rascunho vazio carregando apenas o id (o formulário
//     renderiza, mas o commit contra ele falha na validação).
func Reconcile(current *Draft, mode Mode, getQuote func(id string) (entity.Quote, bool)) *Draft {
	if !mode.Editing {
		if current != nil && current.ID == "" {
			return current
		}
		return emptyDraft()
	}
	if current != nil && current.ID == mode.QuoteID {
		return current
	}
	q, ok := getQuote(mode.QuoteID)
	if !ok {
		d := emptyDraft()
		d.ID = mode.QuoteID
		return d
	}
	return cloneQuote(q)
}

func cloneQuote(q entity.Quote) *Draft {
	items := make([]entity.QuoteItem, len(q.Items))
	copy(items, q.Items)
	return &Draft{
		ID:            q.ID,
		ClientID:      q.ClientID,
		Items:         items,
		ShippingFee:   q.ShippingFee,
		ShippingDate:  q.ShippingDate,
		PaymentMethod: q.PaymentMethod,
		Observations:  q.Observations,
		Status:        q.Status,
	}
}

// Workspace guarda o único rascunho em andamento. As mutações são
// serializadas; cada operação produz um novo valor de rascunho.
type Workspace struct {
	quotes   repository.QuoteRepository
	products repository.ProductRepository
	draft    *Draft
}

// NewWorkspace constrói o workspace vazio.
func NewWorkspace(quotes repository.QuoteRepository, products repository.ProductRepository) *Workspace {
	return &Workspace{quotes: quotes, products: products}
}

// Enter reconcilia o rascunho para o modo pedido e o devolve.
func (w *Workspace) Enter(mode Mode) Draft {
	w.draft = Reconcile(w.draft, mode, w.quotes.GetQuote)
	return *w.draft
}

// Current devolve o rascunho vigente, se houver.
func (w *Workspace) Current() (Draft, bool) {
	if w.draft == nil {
		return Draft{}, false
	}
	return *w.draft, true
}

// Clear descarta o rascunho.
func (w *Workspace) Clear() {
	w.draft = nil
}

// Merge aplica um patch de campos ao rascunho (merge raso). O id do alvo de
// edição nunca é alterado pelo patch.
func (w *Workspace) Merge(p FieldPatch) (Draft, error) {
	if w.draft == nil {
		return Draft{}, domain.ErrSemRascunho
	}
	next := *w.draft
	if p.ClientID != nil {
		next.ClientID = *p.ClientID
	}
	if p.ShippingFee != nil {
		next.ShippingFee = *p.ShippingFee
	}
	if p.ShippingDate != nil {
		next.ShippingDate = *p.ShippingDate
	}
	if p.PaymentMethod != nil {
		next.PaymentMethod = *p.PaymentMethod
	}
	if p.Observations != nil {
		next.Observations = *p.Observations
	}
	w.draft = &next
	return next, nil
}

// AddItem adiciona uma linha para o produto: quantidade 1 e preço unitário
// igual ao preço de venda vigente no catálogo (retrato; edições futuras do
// produto não alcançam a linha). Produto já presente é rejeitado — não há
// linhas duplicadas para o mesmo produto.
func (w *Workspace) AddItem(productID string) (Draft, error) {
	if w.draft == nil {
		return Draft{}, domain.ErrSemRascunho
	}
	for _, it := range w.draft.Items {
		if it.ProductID == productID {
			return Draft{}, fmt.Errorf("%w: produto já está no orçamento", domain.ErrDuplicado)
		}
	}
	p, ok := w.products.GetProduct(productID)
	if !ok {
		return Draft{}, fmt.Errorf("%w: produto %s", domain.ErrNaoEncontrado, productID)
	}
	next := *w.draft
	next.Items = appendItem(w.draft.Items, entity.QuoteItem{
		ProductID: productID,
		Quantity:  1,
		UnitPrice: p.SellPrice,
	})
	w.draft = &next
	return next, nil
}

// UpdateItem altera quantidade e/ou preço unitário da linha no índice dado.
// Valores negativos são ignorados (o rascunho permanece como está); zero é
// permitido na quantidade, ainda que sem significado comercial.
func (w *Workspace) UpdateItem(index int, quantity *int, unitPrice *decimal.Decimal) (Draft, error) {
	if w.draft == nil {
		return Draft{}, domain.ErrSemRascunho
	}
	if index < 0 || index >= len(w.draft.Items) {
		return Draft{}, fmt.Errorf("%w: item %d", domain.ErrNaoEncontrado, index)
	}
	next := *w.draft
	items := make([]entity.QuoteItem, len(w.draft.Items))
	copy(items, w.draft.Items)
	it := items[index]
	if quantity != nil && *quantity >= 0 {
		it.Quantity = *quantity
	}
	if unitPrice != nil && !unitPrice.IsNegative() {
		it.UnitPrice = *unitPrice
	}
	items[index] = it
	next.Items = items
	w.draft = &next
	return next, nil
}

// RemoveItem remove exatamente a linha no índice dado, preservando a ordem
// das demais.
func (w *Workspace) RemoveItem(index int) (Draft, error) {
	if w.draft == nil {
		return Draft{}, domain.ErrSemRascunho
	}
	if index < 0 || index >= len(w.draft.Items) {
		return Draft{}, fmt.Errorf("%w: item %d", domain.ErrNaoEncontrado, index)
	}
	next := *w.draft
	items := make([]entity.QuoteItem, 0, len(w.draft.Items)-1)
	items = append(items, w.draft.Items[:index]...)
	items = append(items, w.draft.Items[index+1:]...)
	next.Items = items
	w.draft = &next
	return next, nil
}

// Subtotal e Total do rascunho, sempre recalculados (nunca cacheados).
func (w *Workspace) Totals() (subtotal, total decimal.Decimal) {
	if w.draft == nil {
		return decimal.Zero, decimal.Zero
	}
	return pricing.Subtotal(w.draft.Items), pricing.Total(w.draft.Items, w.draft.ShippingFee)
}

// Commit valida o rascunho e o grava na coleção confirmada — tudo ou nada.
// Em caso de rejeição nenhuma mutação ocorre e o rascunho é mantido; no
// sucesso o total derivado é gravado e o rascunho é descartado.
//
// O piso de 15 dias úteis é validado aqui além do formulário: na criação
// sempre, e na edição apenas quando a data de envio foi alterada.
func (w *Workspace) Commit(now time.Time) (entity.Quote, error) {
	d := w.draft
	if d == nil {
		return entity.Quote{}, domain.ErrSemRascunho
	}
	if d.ClientID == "" {
		return entity.Quote{}, domain.ErrClienteObrigatorio
	}
	if len(d.Items) == 0 {
		return entity.Quote{}, domain.ErrSemItens
	}

	editing := d.ID != ""
	var existing entity.Quote
	if editing {
		var ok bool
		existing, ok = w.quotes.GetQuote(d.ID)
		if !ok {
			return entity.Quote{}, fmt.Errorf("%w: orçamento %s", domain.ErrNaoEncontrado, d.ID)
		}
	}

	if d.ShippingDate != "" {
		if _, err := time.Parse("2006-01-02", d.ShippingDate); err != nil {
			return entity.Quote{}, fmt.Errorf("%w: data de envio %q", domain.ErrEntradaInvalida, d.ShippingDate)
		}
	}
	floor := schedule.MinShippingDateISO(now)
	if !editing || d.ShippingDate != existing.ShippingDate {
		if d.ShippingDate < floor {
			return entity.Quote{}, fmt.Errorf("%w (mínimo %s)", domain.ErrDataEnvioMinima, floor)
		}
	}

	q := entity.Quote{
		ID:            d.ID,
		ClientID:      d.ClientID,
		Items:         d.Items,
		ShippingFee:   d.ShippingFee,
		Total:         pricing.Total(d.Items, d.ShippingFee),
		ShippingDate:  d.ShippingDate,
		PaymentMethod: d.PaymentMethod,
		Observations:  d.Observations,
	}
	if editing {
		q.Status = existing.Status
		q.CreatedAt = existing.CreatedAt
		w.quotes.UpdateQuote(q)
	} else {
		q.ID = newID()
		q.Status = entity.StatusAberto
		q.CreatedAt = now
		w.quotes.AddQuote(q)
	}

	w.draft = nil
	return q, nil
}

func newID() string { return uuid.New().String() }

func appendItem(in []entity.QuoteItem, it entity.QuoteItem) []entity.QuoteItem {
	next := make([]entity.QuoteItem, len(in), len(in)+1)
	copy(next, in)
	return append(next, it)
}
