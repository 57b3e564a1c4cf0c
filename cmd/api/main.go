package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/h1brindes/orcamento-pro/internal/application/cep"
	"github.com/h1brindes/orcamento-pro/internal/application/draft"
	"github.com/h1brindes/orcamento-pro/internal/application/usecase"
	"github.com/h1brindes/orcamento-pro/internal/infrastructure/memstore"
	infrapdf "github.com/h1brindes/orcamento-pro/internal/infrastructure/pdf"
	"github.com/h1brindes/orcamento-pro/internal/infrastructure/viacep"
	httpRouter "github.com/h1brindes/orcamento-pro/internal/interfaces/http"
	"github.com/h1brindes/orcamento-pro/pkg/config"
	"github.com/h1brindes/orcamento-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Estado em memória, semeado com os dados de demonstração. Não há
	// persistência: tudo é descartado no encerramento do processo.
	store := memstore.New(memstore.Seed())
	log.Info().
		Str("email", memstore.DefaultEmail).
		Msg("sessão semeada; senha padrão em vigor até a troca")

	authUC := usecase.NewAuthUseCase(store, cfg.JWT)
	clientUC := usecase.NewClientUseCase(store)
	productUC := usecase.NewProductUseCase(store)
	quoteUC := usecase.NewQuoteUseCase(store, store, store)
	shareUC := usecase.NewShareUseCase(store, store, store, store)
	companyUC := usecase.NewCompanyUseCase(store)

	pdfGenerator := infrapdf.NewMarotoQuoteDocument()
	pdfUC := usecase.NewQuotePDFUseCase(store, store, store, store, pdfGenerator)

	workspace := draft.NewWorkspace(store, store)

	viacepClient := viacep.New(cfg.ViaCEP.BaseURL, cfg.ViaCEP.Timeout)
	cepSvc := cep.NewLookupService(viacepClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Orçamento Pro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ClientUC:  clientUC,
		ProductUC: productUC,
		QuoteUC:   quoteUC,
		ShareUC:   shareUC,
		PDFUC:     pdfUC,
		CompanyUC: companyUC,
		Workspace: workspace,
		CEPSvc:    cepSvc,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de encerramento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
