package dto

import "github.com/shopspring/decimal"

// ReconcileRequest intenção ao entrar no formulário de orçamento.
// Mode: "create" ou "edit" (edit exige quote_id).
type ReconcileRequest struct {
	Mode    string `json:"mode"`
	QuoteID string `json:"quote_id"`
}

// DraftPatchRequest merge raso campo a campo; nil mantém o valor atual.
type DraftPatchRequest struct {
	ClientID      *string          `json:"client_id"`
	ShippingFee   *decimal.Decimal `json:"shipping_fee"`
	ShippingDate  *string          `json:"shipping_date"`
	PaymentMethod *string          `json:"payment_method"`
	Observations  *string          `json:"observations"`
}

// DraftAddItemRequest nova linha no rascunho.
type DraftAddItemRequest struct {
	ProductID string `json:"product_id"`
}

// DraftUpdateItemRequest alteração da linha por índice; nil mantém.
type DraftUpdateItemRequest struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// DraftResponse rascunho vigente com os valores derivados recalculados.
type DraftResponse struct {
	ID            string              `json:"id,omitempty"`
	ClientID      string              `json:"client_id"`
	Items         []QuoteItemResponse `json:"items"`
	ShippingFee   decimal.Decimal     `json:"shipping_fee"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Total         decimal.Decimal     `json:"total"`
	ShippingDate  string              `json:"shipping_date"`
	PaymentMethod string              `json:"payment_method"`
	Observations  string              `json:"observations"`
	Status        string              `json:"status"`
}
