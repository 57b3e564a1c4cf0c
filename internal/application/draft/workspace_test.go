package draft_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h1brindes/orcamento-pro/internal/application/draft"
	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
	"github.com/h1brindes/orcamento-pro/internal/domain/schedule"
	"github.com/h1brindes/orcamento-pro/internal/infrastructure/memstore"
)

// hoje fixo para os testes; o piso de envio é derivado dele.
var hoje = time.Date(2024, time.July, 22, 12, 0, 0, 0, time.UTC)

func dataValida() string {
	// um dia útil além do piso, sempre aceitável
	return schedule.MinShippingDate(hoje).AddDate(0, 0, 7).Format("2006-01-02")
}

func newWorkspace(t *testing.T) (*draft.Workspace, *memstore.Store) {
	t.Helper()
	s := memstore.New(memstore.State{})
	s.AddClient(entity.Client{ID: "c1", Name: "Ana"})
	s.AddProduct(entity.Product{ID: "p1", Name: "Tinta", SellPrice: decimal.NewFromInt(100)})
	s.AddProduct(entity.Product{ID: "p2", Name: "Cimento", SellPrice: decimal.NewFromInt(38)})
	return draft.NewWorkspace(s, s), s
}

func committed(t *testing.T, w *draft.Workspace, s *memstore.Store) entity.Quote {
	t.Helper()
	w.Enter(draft.ModeCreate())
	_, err := w.Merge(draft.FieldPatch{ClientID: ptr("c1"), ShippingDate: ptr(dataValida())})
	require.NoError(t, err)
	_, err = w.AddItem("p1")
	require.NoError(t, err)
	q, err := w.Commit(hoje)
	require.NoError(t, err)
	return q
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile (função pura)
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile(t *testing.T) {
	quote := entity.Quote{
		ID:       "q1",
		ClientID: "c1",
		Items:    []entity.QuoteItem{{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(100)}},
		Status:   entity.StatusAprovado,
	}
	lookup := func(id string) (entity.Quote, bool) {
		if id == "q1" {
			return quote, true
		}
		return entity.Quote{}, false
	}
	emEdicao := &draft.Draft{ID: "q1", ClientID: "c1", Status: entity.StatusAprovado}
	emCriacao := &draft.Draft{ClientID: "c1", Status: entity.StatusAberto}

	cases := []struct {
		name    string
		current *draft.Draft
		mode    draft.Mode
		check   func(t *testing.T, got *draft.Draft)
	}{
		{
			name: "criação sem rascunho inicia vazio",
			mode: draft.ModeCreate(),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Empty(t, got.ID)
				assert.Empty(t, got.ClientID)
				assert.Empty(t, got.Items)
				assert.Equal(t, entity.StatusAberto, got.Status)
			},
		},
		{
			name:    "criação com rascunho de edição descarta o rascunho alheio",
			current: emEdicao,
			mode:    draft.ModeCreate(),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Empty(t, got.ID)
				assert.Empty(t, got.ClientID)
			},
		},
		{
			name:    "criação retoma rascunho de criação em andamento",
			current: emCriacao,
			mode:    draft.ModeCreate(),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Same(t, emCriacao, got)
			},
		},
		{
			name: "edição semeia clone dos campos confirmados",
			mode: draft.ModeEdit("q1"),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Equal(t, "q1", got.ID)
				assert.Equal(t, "c1", got.ClientID)
				require.Len(t, got.Items, 1)
				assert.Equal(t, entity.StatusAprovado, got.Status)
			},
		},
		{
			name:    "edição retoma rascunho do mesmo orçamento",
			current: emEdicao,
			mode:    draft.ModeEdit("q1"),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Same(t, emEdicao, got)
			},
		},
		{
			name:    "edição de outro orçamento descarta o rascunho atual",
			current: emCriacao,
			mode:    draft.ModeEdit("q1"),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Equal(t, "q1", got.ID)
				assert.Equal(t, "c1", got.ClientID)
			},
		},
		{
			name: "edição de orçamento inexistente carrega só o id",
			mode: draft.ModeEdit("q-sumiu"),
			check: func(t *testing.T, got *draft.Draft) {
				assert.Equal(t, "q-sumiu", got.ID)
				assert.Empty(t, got.ClientID)
				assert.Empty(t, got.Items)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, draft.Reconcile(tc.current, tc.mode, lookup))
		})
	}
}

func TestReconcile_CloneNaoCompartilhaItens(t *testing.T) {
	items := []entity.QuoteItem{{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(100)}}
	quote := entity.Quote{ID: "q1", Items: items}
	lookup := func(string) (entity.Quote, bool) { return quote, true }

	got := draft.Reconcile(nil, draft.ModeEdit("q1"), lookup)
	got.Items[0].Quantity = 99

	assert.Equal(t, 2, items[0].Quantity, "mutar o clone não pode alcançar os itens confirmados")
}

// ──────────────────────────────────────────────────────────────────────────────
// Operações de item
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_RetratoDePrecoEQuantidadeUm(t *testing.T) {
	w, s := newWorkspace(t)
	w.Enter(draft.ModeCreate())

	d, err := w.AddItem("p1")
	require.NoError(t, err)
	require.Len(t, d.Items, 1)
	assert.Equal(t, 1, d.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(100).Equal(d.Items[0].UnitPrice))

	// editar o produto depois não alcança a linha já adicionada
	p, _ := s.GetProduct("p1")
	p.SellPrice = decimal.NewFromInt(500)
	s.UpdateProduct(p)
	d, _ = w.Current()
	assert.True(t, decimal.NewFromInt(100).Equal(d.Items[0].UnitPrice))
}

func TestAddItem_ProdutoDuplicadoRejeitado(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())

	_, err := w.AddItem("p1")
	require.NoError(t, err)
	_, err = w.AddItem("p1")
	assert.ErrorIs(t, err, domain.ErrDuplicado)

	d, _ := w.Current()
	assert.Len(t, d.Items, 1)
}

func TestAddItem_ProdutoInexistente(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())

	_, err := w.AddItem("p-sumiu")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestUpdateItem(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, err := w.AddItem("p1")
	require.NoError(t, err)

	t.Run("altera quantidade e preço", func(t *testing.T) {
		d, err := w.UpdateItem(0, ptr(5), ptr(decimal.NewFromInt(90)))
		require.NoError(t, err)
		assert.Equal(t, 5, d.Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(90).Equal(d.Items[0].UnitPrice))
	})

	t.Run("valor negativo é ignorado, rascunho inalterado", func(t *testing.T) {
		d, err := w.UpdateItem(0, ptr(-3), ptr(decimal.NewFromInt(-1)))
		require.NoError(t, err)
		assert.Equal(t, 5, d.Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(90).Equal(d.Items[0].UnitPrice))
	})

	t.Run("quantidade zero é permitida", func(t *testing.T) {
		d, err := w.UpdateItem(0, ptr(0), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Items[0].Quantity)
	})

	t.Run("índice fora da faixa", func(t *testing.T) {
		_, err := w.UpdateItem(7, ptr(1), nil)
		assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	})
}

func TestRemoveItem_PreservaOrdemDosDemais(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, _ = w.AddItem("p1")
	_, _ = w.AddItem("p2")

	d, err := w.RemoveItem(0)
	require.NoError(t, err)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "p2", d.Items[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

func TestCommit_RascunhoNaoVazaParaColecaoAntesDoCommit(t *testing.T) {
	w, s := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, _ = w.Merge(draft.FieldPatch{ClientID: ptr("c1"), ShippingDate: ptr(dataValida())})
	_, _ = w.AddItem("p1")
	_, _ = w.UpdateItem(0, ptr(4), nil)

	assert.Empty(t, s.ListQuotes(), "editar o rascunho não pode tocar a coleção confirmada")

	_, err := w.Commit(hoje)
	require.NoError(t, err)
	assert.Len(t, s.ListQuotes(), 1)
}

func TestCommit_SemClienteRejeitaSemMutarNada(t *testing.T) {
	w, s := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, _ = w.AddItem("p1")

	_, err := w.Commit(hoje)

	assert.ErrorIs(t, err, domain.ErrClienteObrigatorio)
	assert.Empty(t, s.ListQuotes())
	d, ok := w.Current()
	require.True(t, ok, "o rascunho não pode ser limpo na rejeição")
	assert.Len(t, d.Items, 1)
}

func TestCommit_SemItensRejeita(t *testing.T) {
	w, s := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, _ = w.Merge(draft.FieldPatch{ClientID: ptr("c1"), ShippingDate: ptr(dataValida())})

	_, err := w.Commit(hoje)

	assert.ErrorIs(t, err, domain.ErrSemItens)
	assert.Empty(t, s.ListQuotes())
	_, ok := w.Current()
	assert.True(t, ok)
}

func TestCommit_DataDeEnvioAbaixoDoPiso(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	aquem := schedule.MinShippingDate(hoje).AddDate(0, 0, -1).Format("2006-01-02")
	_, _ = w.Merge(draft.FieldPatch{ClientID: ptr("c1"), ShippingDate: ptr(aquem)})
	_, _ = w.AddItem("p1")

	_, err := w.Commit(hoje)

	assert.ErrorIs(t, err, domain.ErrDataEnvioMinima)
}

func TestCommit_PisoExatoEhAceito(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	piso := schedule.MinShippingDateISO(hoje)
	_, _ = w.Merge(draft.FieldPatch{ClientID: ptr("c1"), ShippingDate: ptr(piso)})
	_, _ = w.AddItem("p1")

	_, err := w.Commit(hoje)

	assert.NoError(t, err, "o piso é inclusivo")
}

func TestCommit_CriacaoGravaTotalDerivadoELimpaRascunho(t *testing.T) {
	w, s := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, _ = w.Merge(draft.FieldPatch{
		ClientID:     ptr("c1"),
		ShippingFee:  ptr(decimal.NewFromInt(10)),
		ShippingDate: ptr(dataValida()),
	})
	_, _ = w.AddItem("p1")
	_, _ = w.UpdateItem(0, ptr(2), nil)

	q, err := w.Commit(hoje)
	require.NoError(t, err)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, entity.StatusAberto, q.Status)
	assert.Equal(t, hoje, q.CreatedAt)
	assert.True(t, decimal.NewFromInt(210).Equal(q.Total), "2×100 + 10 = 210, obtido %s", q.Total)

	list := s.ListQuotes()
	require.Len(t, list, 1)
	assert.Equal(t, q.ID, list[0].ID, "o novo orçamento entra no índice 0")
	_, ok := w.Current()
	assert.False(t, ok, "o commit bem-sucedido limpa o rascunho")
}

func TestCommit_EdicaoPreservaStatusECreatedAt(t *testing.T) {
	w, s := newWorkspace(t)
	original := committed(t, w, s)
	s.SetQuoteStatus(original.ID, entity.StatusAprovado)

	w.Enter(draft.ModeEdit(original.ID))
	_, err := w.Merge(draft.FieldPatch{PaymentMethod: ptr("Pix")})
	require.NoError(t, err)

	q, err := w.Commit(hoje)
	require.NoError(t, err)

	assert.Equal(t, original.ID, q.ID)
	assert.Equal(t, entity.StatusAprovado, q.Status)
	assert.Equal(t, original.CreatedAt, q.CreatedAt, "CreatedAt é imutável na edição")
	assert.Equal(t, "Pix", q.PaymentMethod)
	assert.Len(t, s.ListQuotes(), 1, "edição substitui, não insere")
}

func TestCommit_EdicaoComDataInalteradaNaoRevalidaPiso(t *testing.T) {
	w, s := newWorkspace(t)
	original := committed(t, w, s)

	// tempo passa: a data gravada ficou aquém do novo piso
	depois := hoje.AddDate(0, 2, 0)
	w.Enter(draft.ModeEdit(original.ID))
	_, _ = w.Merge(draft.FieldPatch{Observations: ptr("atualizado")})

	_, err := w.Commit(depois)
	assert.NoError(t, err, "data de envio inalterada não é revalidada contra o piso corrente")

	// mas alterar a data reativa a validação
	w.Enter(draft.ModeEdit(original.ID))
	_, _ = w.Merge(draft.FieldPatch{ShippingDate: ptr(schedule.MinShippingDate(depois).AddDate(0, 0, -2).Format("2006-01-02"))})
	_, err = w.Commit(depois)
	assert.ErrorIs(t, err, domain.ErrDataEnvioMinima)
}

func TestCommit_EdicaoDeOrcamentoSumidoFalhaSemLimparRascunho(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeEdit("q-sumiu"))
	_, _ = w.Merge(draft.FieldPatch{ClientID: ptr("c1"), ShippingDate: ptr(dataValida())})
	_, _ = w.AddItem("p1")

	_, err := w.Commit(hoje)

	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	_, ok := w.Current()
	assert.True(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fim a fim: retrato de preço através do ciclo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFimAFim_EdicaoDePrecoNaoAlteraOrcamentoGravado(t *testing.T) {
	s := memstore.New(memstore.State{})
	s.AddClient(entity.Client{ID: "c1", Name: "Ana"})
	s.AddProduct(entity.Product{ID: "p1", Name: "Caneca", SellPrice: decimal.NewFromInt(100)})
	w := draft.NewWorkspace(s, s)

	w.Enter(draft.ModeCreate())
	_, _ = w.Merge(draft.FieldPatch{
		ClientID:     ptr("c1"),
		ShippingFee:  ptr(decimal.NewFromInt(10)),
		ShippingDate: ptr(dataValida()),
	})
	_, _ = w.AddItem("p1")
	_, _ = w.UpdateItem(0, ptr(2), nil)
	q, err := w.Commit(hoje)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(210).Equal(q.Total))

	// sobe o preço do produto para 500
	p, _ := s.GetProduct("p1")
	p.SellPrice = decimal.NewFromInt(500)
	s.UpdateProduct(p)

	got, ok := s.GetQuote(q.ID)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(210).Equal(got.Total),
		"o total gravado permanece 210 após a mudança de preço no catálogo")
	assert.True(t, decimal.NewFromInt(100).Equal(got.Items[0].UnitPrice))
}

func TestTotals_SempreRecalculados(t *testing.T) {
	w, _ := newWorkspace(t)
	w.Enter(draft.ModeCreate())
	_, _ = w.Merge(draft.FieldPatch{ShippingFee: ptr(decimal.NewFromInt(25))})
	_, _ = w.AddItem("p2")

	sub, total := w.Totals()
	assert.True(t, decimal.NewFromInt(38).Equal(sub))
	assert.True(t, decimal.NewFromInt(63).Equal(total))

	_, _ = w.UpdateItem(0, ptr(100), nil)
	sub, total = w.Totals()
	assert.True(t, decimal.NewFromInt(3800).Equal(sub))
	assert.True(t, decimal.NewFromInt(3825).Equal(total))
}
