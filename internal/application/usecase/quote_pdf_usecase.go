package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/pricing"
	"github.com/h1brindes/orcamento-pro/internal/domain/repository"
)

// QuoteLine linha do documento com o nome do produto já resolvido.
// Linhas órfãs entram com ProductName = LabelProdutoRemovido.
type QuoteLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// QuoteDocumentData tudo que o documento precisa, já resolvido contra o
// estado corrente da sessão.
type QuoteDocumentData struct {
	Quote       entity.Quote
	ClientName  string
	ClientDoc   string
	ClientPhone string
	Lines       []QuoteLine
	Subtotal    decimal.Decimal
	Company     entity.Company
}

// QuoteDocumentGenerator port de saída para a renderização do documento.
// A implementação concreta usa Maroto; para tests pode-se injetar um mock.
type QuoteDocumentGenerator interface {
	GenerateQuotePDF(ctx context.Context, data QuoteDocumentData) ([]byte, error)
}

// QuotePDFUseCase monta os dados resolvidos do orçamento e delega a
// renderização ao gerador.
type QuotePDFUseCase struct {
	quotes   repository.QuoteRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	company  repository.CompanyRepository
	gen      QuoteDocumentGenerator
}

// NewQuotePDFUseCase constrói o caso de uso.
func NewQuotePDFUseCase(
	quotes repository.QuoteRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	company repository.CompanyRepository,
	gen QuoteDocumentGenerator,
) *QuotePDFUseCase {
	return &QuotePDFUseCase{quotes: quotes, clients: clients, products: products, company: company, gen: gen}
}

// Generate devolve os bytes do PDF e o nome de arquivo sugerido.
func (uc *QuotePDFUseCase) Generate(ctx context.Context, quoteID string) ([]byte, string, error) {
	q, ok := uc.quotes.GetQuote(quoteID)
	if !ok {
		return nil, "", fmt.Errorf("%w: orçamento %s", domain.ErrNaoEncontrado, quoteID)
	}

	data := QuoteDocumentData{
		Quote:      q,
		ClientName: LabelClienteNaoEncontrado,
		Subtotal:   pricing.Subtotal(q.Items),
		Company:    uc.company.GetCompany(),
	}
	if c, ok := uc.clients.GetClient(q.ClientID); ok {
		data.ClientName = c.Name
		data.ClientDoc = c.Doc
		data.ClientPhone = c.Phone
	}
	for _, it := range q.Items {
		name := LabelProdutoRemovido
		if p, ok := uc.products.GetProduct(it.ProductID); ok {
			name = p.Name
		}
		data.Lines = append(data.Lines, QuoteLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}

	pdf, err := uc.gen.GenerateQuotePDF(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("orcamento-%s.pdf", q.Ref()), nil
}
