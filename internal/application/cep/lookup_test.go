package cep_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/h1brindes/orcamento-pro/internal/application/cep"
)

// fakeClient devolve respostas pré-programadas por CEP; se blockOn tiver o
// CEP, a chamada sinaliza em started e espera liberação explícita,
// simulando latência de rede.
type fakeClient struct {
	responses map[string]cep.Address
	errs      map[string]error
	blockOn   map[string]chan struct{}
	started   chan struct{}
}

func (f *fakeClient) Lookup(_ context.Context, c string) (cep.Address, error) {
	if ch, ok := f.blockOn[c]; ok {
		if f.started != nil {
			close(f.started)
		}
		<-ch
	}
	if err, ok := f.errs[c]; ok {
		return cep.Address{}, err
	}
	return f.responses[c], nil
}

func TestLookup_Sucesso(t *testing.T) {
	svc := cep.NewLookupService(&fakeClient{
		responses: map[string]cep.Address{
			"01001000": {Street: "Praça da Sé", Neighborhood: "Sé", City: "São Paulo", State: "SP"},
		},
	})

	out := svc.Lookup(context.Background(), "01001-000")
	assert.True(t, out.Applied)
	assert.Equal(t, "Praça da Sé", out.Street)
	assert.Equal(t, "Sé", out.Neighborhood)
	assert.Equal(t, "São Paulo", out.City)
	assert.Equal(t, "SP", out.State)
	assert.Equal(t, "01001-000", out.CEP, "o CEP digitado é devolvido como veio")
}

func TestLookup_CEPInvalido(t *testing.T) {
	svc := cep.NewLookupService(&fakeClient{})

	out := svc.Lookup(context.Background(), "123")
	assert.False(t, out.Applied)
	assert.Empty(t, out.Street)
}

func TestLookup_ErroNuncaPropagado(t *testing.T) {
	svc := cep.NewLookupService(&fakeClient{
		errs: map[string]error{"99999999": errors.New("timeout")},
	})

	out := svc.Lookup(context.Background(), "99999-999")
	assert.False(t, out.Applied, "falha de consulta degrada para não aplicado")
}

// Resposta atrasada de uma consulta antiga nunca sobrescreve a mais recente:
// a primeira consulta fica presa "na rede" enquanto a segunda completa; ao
// ser liberada, a primeira deve voltar com Applied=false.
func TestLookup_RespostaAtrasadaDescartada(t *testing.T) {
	libera := make(chan struct{})
	emVoo := make(chan struct{})
	svc := cep.NewLookupService(&fakeClient{
		responses: map[string]cep.Address{
			"01001000": {City: "São Paulo", State: "SP"},
			"20040004": {City: "Rio de Janeiro", State: "RJ"},
		},
		blockOn: map[string]chan struct{}{"01001000": libera},
		started: emVoo,
	})

	primeira := make(chan bool)
	go func() {
		primeira <- svc.Lookup(context.Background(), "01001-000").Applied
	}()
	<-emVoo // garante que a primeira já tomou sua geração

	segunda := svc.Lookup(context.Background(), "20040-004")
	assert.True(t, segunda.Applied)
	assert.Equal(t, "Rio de Janeiro", segunda.City)

	close(libera)
	assert.False(t, <-primeira, "consulta superada volta sem aplicação")
}

func TestLookup_ConsultasSequenciaisTodasAplicadas(t *testing.T) {
	svc := cep.NewLookupService(&fakeClient{
		responses: map[string]cep.Address{
			"01001000": {City: "São Paulo"},
			"20040004": {City: "Rio de Janeiro"},
		},
	})

	assert.True(t, svc.Lookup(context.Background(), "01001000").Applied)
	assert.True(t, svc.Lookup(context.Background(), "20040004").Applied)
}
