// Package pdf implementa a renderização do documento de orçamento em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ  │  Nº Orçamento + Data             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Endereço / Tel / Email                             │
//	│  CLIENTE: Nome + CPF/CNPJ + contato                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Produto | Preço Unit. | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotal / Frete / VALOR TOTAL                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONDIÇÕES: Pagamento + Data de Envio + Observações          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/h1brindes/orcamento-pro/internal/application/usecase"
	"github.com/h1brindes/orcamento-pro/pkg/format"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteDocument implementa usecase.QuoteDocumentGenerator usando Maroto v2.
type MarotoQuoteDocument struct{}

// NewMarotoQuoteDocument constrói o gerador.
func NewMarotoQuoteDocument() *MarotoQuoteDocument { return &MarotoQuoteDocument{} }

// GenerateQuotePDF gera o PDF e devolve seus bytes.
func (g *MarotoQuoteDocument) GenerateQuotePDF(_ context.Context, data usecase.QuoteDocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orçamento "+data.Quote.Ref(), true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(data))
	m.AddRows(clientRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range conditionsRows(data) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: empresa + CNPJ (esq) e Nº do orçamento + data (dir).
func headerRow(data usecase.QuoteDocumentData) core.Row {
	criado := format.Date(data.Quote.CreatedAt)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Company.Doc, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORÇAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Nº "+data.Quote.Ref(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+criado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// companyRow: dados da empresa emissora.
func companyRow(data usecase.QuoteDocumentData) core.Row {
	addr := fmt.Sprintf("%s, %s - %s",
		data.Company.Address.Street, data.Company.Address.City, data.Company.Address.State)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DADOS DA EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Endereço: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(addr, "—"),
				nonEmpty(data.Company.Phone, "—"),
				nonEmpty(data.Company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clientRow: dados do cliente. O nome pode ser o rótulo de degradação
// quando o cliente foi excluído após a criação do orçamento.
func clientRow(data usecase.QuoteDocumentData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF/CNPJ: %s   |   Tel: %s",
				nonEmpty(format.Doc(data.ClientDoc), "—"),
				nonEmpty(format.Phone(data.ClientPhone), "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: uma linha por item do orçamento.
func tableLineRows(lines []usecase.QuoteLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				format.Currency(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				format.Currency(l.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(data usecase.QuoteDocumentData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Frete:"),
			grandLabel("VALOR TOTAL:"),
		),
		col.New(3).Add(
			value(format.Currency(data.Subtotal)),
			value(format.Currency(data.Quote.ShippingFee)),
			grandValue(format.Currency(data.Quote.Total)),
		),
		col.New(3),
	)
}

// conditionsRows: condições comerciais e observações.
func conditionsRows(data usecase.QuoteDocumentData) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONDIÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Forma de Pagamento: "+nonEmpty(data.Quote.PaymentMethod, "—"), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("Data de Envio: "+format.DateISO(data.Quote.ShippingDate), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)),
	}

	if data.Quote.Observations != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Observações: "+data.Quote.Observations, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}

	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New("Orçamento sem valor fiscal. Validade e condições sujeitas a confirmação.", props.Text{
			Size: 6.5, Color: colorGray, Top: 4,
		}),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
