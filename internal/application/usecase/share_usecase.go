package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
	"github.com/h1brindes/orcamento-pro/pkg/format"
)

const whatsappSendURL = "https://api.whatsapp.com/send"

// ShareUseCase monta a mensagem de compartilhamento de um orçamento e o
// link do WhatsApp. O sistema constrói o link mas não entrega a mensagem.
type ShareUseCase struct {
	quotes   repository.QuoteRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	company  repository.CompanyRepository
}

// NewShareUseCase constrói o caso de uso.
func NewShareUseCase(
	quotes repository.QuoteRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	company repository.CompanyRepository,
) *ShareUseCase {
	return &ShareUseCase{quotes: quotes, clients: clients, products: products, company: company}
}

// Share monta mensagem e link para o orçamento. Falha se o orçamento não
// existir ou se o cliente não tiver telefone cadastrado.
func (uc *ShareUseCase) Share(quoteID string) (*dto.ShareResponse, error) {
	q, ok := uc.quotes.GetQuote(quoteID)
	if !ok {
		return nil, fmt.Errorf("%w: orçamento %s", domain.ErrNaoEncontrado, quoteID)
	}
	client, clientOK := uc.clients.GetClient(q.ClientID)
	phone := format.Digits(client.Phone)
	if !clientOK || phone == "" {
		return nil, domain.ErrClienteSemTelefone
	}

	products := map[string]entity.Product{}
	for _, p := range uc.products.ListProducts() {
		products[p.ID] = p
	}
	msg := BuildShareMessage(q, client, products, uc.company.GetCompany())

	u, _ := url.Parse(whatsappSendURL)
	query := url.Values{}
	query.Set("phone", "55"+phone)
	query.Set("text", msg)
	u.RawQuery = query.Encode()

	return &dto.ShareResponse{Message: msg, URL: u.String()}, nil
}

// BuildShareMessage gera o texto determinístico da mensagem: saudação,
// referência de 6 caracteres, linhas de item com quantidade × unitário =
// subtotal, total, pagamento, data de envio, observações e assinatura.
// Produtos removidos do catálogo são omitidos das linhas.
func BuildShareMessage(q entity.Quote, client entity.Client, products map[string]entity.Product, company entity.Company) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Olá, %s!\n\n", client.Name)
	fmt.Fprintf(&b, "Segue o seu orçamento da *%s* (Nº %s):\n\n", company.Name, q.Ref())

	for _, it := range q.Items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}
		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(&b, "*%s*\n", p.Name)
		fmt.Fprintf(&b, "_Qtd: %d x %s = %s_\n\n", it.Quantity, format.Currency(it.UnitPrice), format.Currency(line))
	}

	fmt.Fprintf(&b, "*VALOR TOTAL: %s*\n\n", format.Currency(q.Total))
	fmt.Fprintf(&b, "Forma de Pagamento: %s\n", q.PaymentMethod)
	fmt.Fprintf(&b, "Data de Envio: %s\n\n", format.DateISO(q.ShippingDate))
	if q.Observations != "" {
		fmt.Fprintf(&b, "Observações: %s\n\n", q.Observations)
	}
	b.WriteString("Qualquer dúvida, estamos à disposição!\n\n")
	fmt.Fprintf(&b, "*%s*\n", company.Name)
	fmt.Fprintf(&b, "%s\n", company.Phone)
	b.WriteString(company.Email)

	return b.String()
}
