package dto

// CEPResponse resultado da consulta de CEP aplicável ao endereço.
// Applied é false quando a resposta foi superada por uma consulta mais
// recente ou quando o CEP não foi encontrado — nesses casos nenhum campo
// deve ser alterado no formulário.
type CEPResponse struct {
	CEP          string `json:"cep"`
	Applied      bool   `json:"applied"`
	Street       string `json:"street,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}
