// Package cep coordena a consulta de CEP para preenchimento de endereço.
// Consultas concorrentes são arbitradas por geração: apenas a resposta da
// consulta mais recente pode ser aplicada; respostas atrasadas são
// descartadas em silêncio.
package cep

import (
	"context"
	"sync"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/pkg/format"
)

// Address campos de endereço devolvidos pela consulta.
type Address struct {
	Street       string
	Neighborhood string
	City         string
	State        string
}

// Client port do provedor de consulta de CEP.
type Client interface {
	Lookup(ctx context.Context, cep string) (Address, error)
}

// LookupService serializa o controle de gerações das consultas de CEP.
type LookupService struct {
	client Client

	mu  sync.Mutex
	gen uint64
}

// NewLookupService constrói o serviço sobre um provedor.
func NewLookupService(client Client) *LookupService {
	return &LookupService{client: client}
}

// Lookup consulta o CEP e devolve o resultado com Applied indicando se os
// campos devem ser aplicados ao formulário. Applied é false quando o CEP é
// inválido, quando a consulta falha (não encontrado ou erro de transporte —
// nunca propagado) ou quando uma consulta mais recente foi disparada
// enquanto esta aguardava resposta.
func (s *LookupService) Lookup(ctx context.Context, raw string) dto.CEPResponse {
	cep := format.Digits(raw)
	if len(cep) != 8 {
		return dto.CEPResponse{CEP: raw, Applied: false}
	}

	s.mu.Lock()
	s.gen++
	token := s.gen
	s.mu.Unlock()

	// chamada de rede fora do lock; consultas seguintes avançam a geração
	addr, err := s.client.Lookup(ctx, cep)

	s.mu.Lock()
	stale := token != s.gen
	s.mu.Unlock()

	if stale || err != nil {
		return dto.CEPResponse{CEP: raw, Applied: false}
	}
	return dto.CEPResponse{
		CEP:          raw,
		Applied:      true,
		Street:       addr.Street,
		Neighborhood: addr.Neighborhood,
		City:         addr.City,
		State:        addr.State,
	}
}
