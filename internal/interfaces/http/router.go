package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/h1brindes/orcamento-pro/internal/application/cep"
	"github.com/h1brindes/orcamento-pro/internal/application/draft"
	"github.com/h1brindes/orcamento-pro/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *usecase.AuthUseCase
	ClientUC  *usecase.ClientUseCase
	ProductUC *usecase.ProductUseCase
	QuoteUC   *usecase.QuoteUseCase
	ShareUC   *usecase.ShareUseCase
	PDFUC     *usecase.QuotePDFUseCase
	CompanyUC *usecase.CompanyUseCase
	Workspace *draft.Workspace
	CEPSvc    *cep.LookupService
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público; troca de credenciais protegida)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/credentials", authHandler.ChangeCredentials)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orçamentos (a rota fixa vem antes da paramétrica)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.ShareUC, deps.PDFUC)
	quotes.Get("/min-shipping-date", quoteHandler.MinShippingDate)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Patch("/:id/status", quoteHandler.SetStatus)
	quotes.Get("/:id/share", quoteHandler.Share)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Rascunho de orçamento
	draftGroup := protected.Group("/draft")
	draftHandler := NewDraftHandler(deps.Workspace, deps.QuoteUC)
	draftGroup.Post("/enter", draftHandler.Enter)
	draftGroup.Get("/", draftHandler.Current)
	draftGroup.Delete("/", draftHandler.Clear)
	draftGroup.Patch("/", draftHandler.Patch)
	draftGroup.Post("/items", draftHandler.AddItem)
	draftGroup.Patch("/items/:index", draftHandler.UpdateItem)
	draftGroup.Delete("/items/:index", draftHandler.RemoveItem)
	draftGroup.Post("/commit", draftHandler.Commit)

	// Empresa emissora
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", companyHandler.Update)

	// Consulta de CEP
	cepHandler := NewCEPHandler(deps.CEPSvc)
	protected.Get("/cep/:cep", cepHandler.Lookup)
}
