package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/h1brindes/orcamento-pro/internal/application/cep"
)

// CEPHandler trata a consulta de CEP para preenchimento de endereço
// (protegido). A resposta nunca é um erro HTTP: consulta falha ou superada
// volta com applied=false e o formulário fica como está.
type CEPHandler struct {
	svc *cep.LookupService
}

// NewCEPHandler constrói o handler.
func NewCEPHandler(svc *cep.LookupService) *CEPHandler {
	return &CEPHandler{svc: svc}
}

// Lookup godoc
// @Summary      Consultar CEP
// @Tags         cep
// @Security     Bearer
// @Produce      json
// @Param        cep  path  string  true  "CEP (com ou sem máscara)"
// @Success      200  {object}  dto.CEPResponse
// @Router       /api/cep/{cep} [get]
func (h *CEPHandler) Lookup(c *fiber.Ctx) error {
	return c.JSON(h.svc.Lookup(c.Context(), c.Params("cep")))
}
