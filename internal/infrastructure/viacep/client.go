// Package viacep implementa o provedor de consulta de CEP sobre o
// webservice público ViaCEP (https://viacep.com.br).
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/h1brindes/orcamento-pro/internal/application/cep"
	"github.com/h1brindes/orcamento-pro/internal/domain"
)

const defaultBaseURL = "https://viacep.com.br/ws"

// Client implementa cep.Client usando net/http da stdlib; o ViaCEP é um
// GET simples de JSON, sem necessidade de SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constrói o cliente. baseURL vazio usa o endpoint público; timeout
// zero usa 10 s.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// payload resposta do ViaCEP. "erro": true indica CEP bem formado porém
// inexistente (o HTTP ainda é 200).
type payload struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup consulta GET {base}/{cep}/json/. cep deve vir com 8 dígitos.
func (c *Client) Lookup(ctx context.Context, cepDigits string) (cep.Address, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cepDigits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return cep.Address{}, fmt.Errorf("viacep: montar requisição: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return cep.Address{}, fmt.Errorf("viacep: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return cep.Address{}, fmt.Errorf("viacep: status %d: %s", resp.StatusCode, body)
	}

	var p payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return cep.Address{}, fmt.Errorf("viacep: decodificar resposta: %w", err)
	}
	if p.Erro {
		return cep.Address{}, fmt.Errorf("%w: CEP %s", domain.ErrNaoEncontrado, cepDigits)
	}
	return cep.Address{
		Street:       p.Logradouro,
		Neighborhood: p.Bairro,
		City:         p.Localidade,
		State:        p.UF,
	}, nil
}
