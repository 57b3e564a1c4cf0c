package viacep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h1brindes/orcamento-pro/internal/domain"
	"github.com/h1brindes/orcamento-pro/internal/infrastructure/viacep"
)

func TestLookup_Encontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01001000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cep":"01001-000","logradouro":"Praça da Sé","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`))
	}))
	defer srv.Close()

	c := viacep.New(srv.URL, time.Second)
	addr, err := c.Lookup(context.Background(), "01001000")
	require.NoError(t, err)
	assert.Equal(t, "Praça da Sé", addr.Street)
	assert.Equal(t, "Sé", addr.Neighborhood)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestLookup_CEPInexistente(t *testing.T) {
	// o ViaCEP devolve 200 com {"erro": true} para CEP bem formado inexistente
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := viacep.New(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestLookup_StatusInesperado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := viacep.New(srv.URL, time.Second)
	_, err := c.Lookup(context.Background(), "0100100x")
	assert.Error(t, err)
}

func TestLookup_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := viacep.New(srv.URL, time.Second)
	_, err := c.Lookup(ctx, "01001000")
	assert.Error(t, err)
}
