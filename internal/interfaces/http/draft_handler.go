package http

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/h1brindes/orcamento-pro/internal/application/draft"
	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/application/usecase"
	"github.com/h1brindes/orcamento-pro/internal/domain"
)

// DraftHandler trata o rascunho de orçamento (protegido). Existe no máximo
// um rascunho por vez; as operações são serializadas pelo mutex, já que o
// Fiber atende requisições concorrentes.
type DraftHandler struct {
	mu sync.Mutex
	ws *draft.Workspace
	qc *usecase.QuoteUseCase
}

// NewDraftHandler constrói o handler.
func NewDraftHandler(ws *draft.Workspace, qc *usecase.QuoteUseCase) *DraftHandler {
	return &DraftHandler{ws: ws, qc: qc}
}

// Enter godoc
// @Summary      Entrar no formulário (reconcilia o rascunho)
// @Description  mode "create" retoma uma criação em andamento ou abre um
// @Description  rascunho vazio; mode "edit" retoma a edição do mesmo
// @Description  orçamento ou clona os campos confirmados do alvo.
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "Intenção de edição"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draft/enter [post]
func (h *DraftHandler) Enter(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	var mode draft.Mode
	switch in.Mode {
	case "create":
		mode = draft.ModeCreate()
	case "edit":
		if in.QuoteID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quote_id é obrigatório no modo edit"})
		}
		mode = draft.ModeEdit(in.QuoteID)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: `mode deve ser "create" ou "edit"`})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.ws.Enter(mode)
	return c.JSON(h.currentResponse())
}

// Current godoc
// @Summary      Rascunho vigente
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/draft [get]
func (h *DraftHandler) Current(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ws.Current(); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: "não há rascunho em andamento"})
	}
	return c.JSON(h.currentResponse())
}

// Clear godoc
// @Summary      Descartar o rascunho
// @Tags         draft
// @Security     Bearer
// @Success      204
// @Router       /api/draft [delete]
func (h *DraftHandler) Clear(c *fiber.Ctx) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ws.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// Patch godoc
// @Summary      Alterar campos do rascunho (merge raso)
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftPatchRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/draft [patch]
func (h *DraftHandler) Patch(c *fiber.Ctx) error {
	var in dto.DraftPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.ws.Merge(draft.FieldPatch{
		ClientID:      in.ClientID,
		ShippingFee:   in.ShippingFee,
		ShippingDate:  in.ShippingDate,
		PaymentMethod: in.PaymentMethod,
		Observations:  in.Observations,
	})
	if err != nil {
		return h.draftError(c, err)
	}
	return c.JSON(h.currentResponse())
}

// AddItem godoc
// @Summary      Adicionar produto ao rascunho
// @Description  Quantidade 1 e preço unitário igual ao preço de venda vigente
// @Description  no catálogo (retrato). Produto já presente é rejeitado.
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftAddItemRequest  true  "Produto"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/draft/items [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	var in dto.DraftAddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.ws.AddItem(in.ProductID); err != nil {
		return h.draftError(c, err)
	}
	return c.JSON(h.currentResponse())
}

// UpdateItem godoc
// @Summary      Alterar linha do rascunho por índice
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        index  path  int                        true  "Índice da linha"
// @Param        body   body  dto.DraftUpdateItemRequest true  "Alterações"
// @Success      200    {object}  dto.DraftResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/draft/items/{index} [patch]
func (h *DraftHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.DraftUpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.ws.UpdateItem(index, in.Quantity, in.UnitPrice); err != nil {
		return h.draftError(c, err)
	}
	return c.JSON(h.currentResponse())
}

// RemoveItem godoc
// @Summary      Remover linha do rascunho por índice
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Índice da linha"
// @Success      200    {object}  dto.DraftResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/draft/items/{index} [delete]
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.ws.RemoveItem(index); err != nil {
		return h.draftError(c, err)
	}
	return c.JSON(h.currentResponse())
}

// Commit godoc
// @Summary      Confirmar o rascunho (tudo ou nada)
// @Description  Valida cliente, itens e o piso da data de envio; em caso de
// @Description  rejeição nada muda e o rascunho é mantido. No sucesso o
// @Description  orçamento confirmado é devolvido e o rascunho descartado.
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/draft/commit [post]
func (h *DraftHandler) Commit(c *fiber.Ctx) error {
	h.mu.Lock()
	q, err := h.ws.Commit(time.Now())
	h.mu.Unlock()
	if err != nil {
		return h.draftError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.qc.GetByID(q.ID))
}

// currentResponse monta a resposta do rascunho vigente com os derivados
// recalculados. Chamar com o mutex tomado.
func (h *DraftHandler) currentResponse() dto.DraftResponse {
	d, _ := h.ws.Current()
	subtotal, total := h.ws.Totals()
	resp := dto.DraftResponse{
		ID:            d.ID,
		ClientID:      d.ClientID,
		Items:         h.qc.ResolveItems(d.Items),
		ShippingFee:   d.ShippingFee,
		Subtotal:      subtotal,
		Total:         total,
		ShippingDate:  d.ShippingDate,
		PaymentMethod: d.PaymentMethod,
		Observations:  d.Observations,
		Status:        string(d.Status),
	}
	return resp
}

func (h *DraftHandler) draftError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSemRascunho):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: "não há rascunho em andamento"})
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "produto já está no orçamento"})
	case errors.Is(err, domain.ErrClienteObrigatorio):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "selecione um cliente"})
	case errors.Is(err, domain.ErrSemItens):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "adicione pelo menos um item"})
	case errors.Is(err, domain.ErrDataEnvioMinima):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
