package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/h1brindes/orcamento-pro/internal/application/dto"
	"github.com/h1brindes/orcamento-pro/internal/application/usecase"
	"github.com/h1brindes/orcamento-pro/internal/domain"
)

// QuoteHandler trata as requisições HTTP de orçamentos (protegido).
// Criação e edição passam pelo rascunho (DraftHandler); aqui ficam leitura,
// exclusão, status, compartilhamento e documento.
type QuoteHandler struct {
	uc    *usecase.QuoteUseCase
	share *usecase.ShareUseCase
	pdf   *usecase.QuotePDFUseCase
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, share *usecase.ShareUseCase, pdf *usecase.QuotePDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, share: share, pdf: pdf}
}

// List godoc
// @Summary      Listar orçamentos (mais recente primeiro)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID godoc
// @Summary      Obter orçamento por ID
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out := h.uc.GetByID(c.Params("id"))
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir orçamento
// @Tags         quotes
// @Security     Bearer
// @Param        id  path  string  true  "ID do orçamento"
// @Success      204
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStatus godoc
// @Summary      Alterar status do orçamento
// @Description  Todas as transições entre Aberto, Aprovado e Cancelado são
// @Description  válidas e reversíveis; repetir o status vigente é idempotente.
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID do orçamento"
// @Param        body  body  dto.SetStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/status [patch]
func (h *QuoteHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status deve ser Aberto, Aprovado ou Cancelado"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Share godoc
// @Summary      Mensagem e link de WhatsApp do orçamento
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.ShareResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/share [get]
func (h *QuoteHandler) Share(c *fiber.Ctx) error {
	out, err := h.share.Share(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		case errors.Is(err, domain.ErrClienteSemTelefone):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_PHONE", Message: "cliente sem telefone cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Documento do orçamento em PDF
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do orçamento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdf.Generate(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// MinShippingDate godoc
// @Summary      Piso corrente da data de envio (hoje + 15 dias úteis)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MinShippingDateResponse
// @Router       /api/quotes/min-shipping-date [get]
func (h *QuoteHandler) MinShippingDate(c *fiber.Ctx) error {
	return c.JSON(h.uc.MinShippingDate(time.Now()))
}
