package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemResponse linha de orçamento já resolvida para exibição.
// ProductName degrada para "Produto removido" quando a referência está órfã.
type QuoteItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Removed     bool            `json:"removed"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuoteResponse orçamento nas respostas. Subtotal é derivado a cada leitura;
// Total é o valor gravado no último commit (e deve coincidir com a fórmula).
type QuoteResponse struct {
	ID            string              `json:"id"`
	Ref           string              `json:"ref"`
	ClientID      string              `json:"client_id"`
	ClientName    string              `json:"client_name"`
	Items         []QuoteItemResponse `json:"items"`
	ShippingFee   decimal.Decimal     `json:"shipping_fee"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Total         decimal.Decimal     `json:"total"`
	ShippingDate  string              `json:"shipping_date"`
	PaymentMethod string              `json:"payment_method"`
	Observations  string              `json:"observations"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

// SetStatusRequest transição de status do orçamento.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// ShareResponse mensagem de compartilhamento e link pronto para abrir.
type ShareResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// MinShippingDateResponse piso corrente da data de envio.
type MinShippingDateResponse struct {
	MinDate string `json:"min_date"`
}
