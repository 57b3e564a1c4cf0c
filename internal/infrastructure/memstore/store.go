// Package memstore implementa os ports de repositório sobre um snapshot
// imutável em memória. Cada operação de escrita produz um novo State a
// partir do anterior; as fatias antigas nunca são alteradas no lugar, então
// leituras em andamento continuam enxergando um snapshot consistente.
//
// Não há persistência: ao reiniciar o processo o estado volta aos dados
// semeados (ver seed.go).
package memstore

import (
	"sync"

	"github.com/h1brindes/orcamento-pro/internal/domain/entity"
)

// State snapshot imutável do estado da aplicação.
type State struct {
	Clients  []entity.Client
	Products []entity.Product
	Quotes   []entity.Quote // mais recente primeiro
	Company  entity.Company
	User     entity.User
}

// Store guarda o snapshot corrente e serializa as transições.
// O mutex existe porque o servidor HTTP atende requisições em goroutines;
// cada mutação continua sendo uma transição síncrona e atômica.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New cria o store com o estado inicial dado.
func New(initial State) *Store {
	return &Store{state: initial}
}

// Snapshot devolve o snapshot corrente. As fatias retornadas pertencem ao
// snapshot e não devem ser alteradas pelo chamador.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (s *Store) ListClients() []entity.Client {
	return s.Snapshot().Clients
}

func (s *Store) GetClient(id string) (entity.Client, bool) {
	for _, c := range s.Snapshot().Clients {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Client{}, false
}

func (s *Store) AddClient(c entity.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Clients = appended(s.state.Clients, c)
}

func (s *Store) UpdateClient(c entity.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Clients = replaced(s.state.Clients, c, func(e entity.Client) string { return e.ID }, c.ID)
}

func (s *Store) DeleteClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Orçamentos que referenciam o cliente NÃO são excluídos em cascata;
	// passam a renderizar "Cliente não encontrado".
	s.state.Clients = removed(s.state.Clients, func(e entity.Client) bool { return e.ID == id })
}

// ── Produtos ──────────────────────────────────────────────────────────────────

func (s *Store) ListProducts() []entity.Product {
	return s.Snapshot().Products
}

func (s *Store) GetProduct(id string) (entity.Product, bool) {
	for _, p := range s.Snapshot().Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = appended(s.state.Products, p)
}

func (s *Store) UpdateProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = replaced(s.state.Products, p, func(e entity.Product) string { return e.ID }, p.ID)
}

func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = removed(s.state.Products, func(e entity.Product) bool { return e.ID == id })
}

// ── Orçamentos ────────────────────────────────────────────────────────────────

func (s *Store) ListQuotes() []entity.Quote {
	return s.Snapshot().Quotes
}

func (s *Store) GetQuote(id string) (entity.Quote, bool) {
	for _, q := range s.Snapshot().Quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entity.Quote{}, false
}

// AddQuote insere no início da coleção (mais recente primeiro).
func (s *Store) AddQuote(q entity.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.Quote, 0, len(s.state.Quotes)+1)
	next = append(next, q)
	next = append(next, s.state.Quotes...)
	s.state.Quotes = next
}

func (s *Store) UpdateQuote(q entity.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quotes = replaced(s.state.Quotes, q, func(e entity.Quote) string { return e.ID }, q.ID)
}

func (s *Store) DeleteQuote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quotes = removed(s.state.Quotes, func(e entity.Quote) bool { return e.ID == id })
}

func (s *Store) SetQuoteStatus(id string, status entity.QuoteStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.Quote, len(s.state.Quotes))
	for i, q := range s.state.Quotes {
		if q.ID == id {
			q.Status = status
		}
		next[i] = q
	}
	s.state.Quotes = next
}

// ── Empresa e credenciais ─────────────────────────────────────────────────────

func (s *Store) GetCompany() entity.Company {
	return s.Snapshot().Company
}

func (s *Store) UpdateCompany(c entity.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Company = c
}

func (s *Store) GetUser() entity.User {
	return s.Snapshot().User
}

func (s *Store) UpdateUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = u
}

// ── Transições genéricas ──────────────────────────────────────────────────────

func appended[T any](in []T, v T) []T {
	next := make([]T, len(in), len(in)+1)
	copy(next, in)
	return append(next, v)
}

// replaced substitui a entrada cujo id casa; id desconhecido é no-op
// (não insere, não falha).
func replaced[T any](in []T, v T, idOf func(T) string, id string) []T {
	next := make([]T, len(in))
	for i, e := range in {
		if idOf(e) == id {
			next[i] = v
		} else {
			next[i] = e
		}
	}
	return next
}

func removed[T any](in []T, match func(T) bool) []T {
	next := make([]T, 0, len(in))
	for _, e := range in {
		if !match(e) {
			next = append(next, e)
		}
	}
	return next
}
