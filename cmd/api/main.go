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

	"github.com/tryidoltech/Tryidol-Inv/internal/application/auth"
	"github.com/tryidoltech/Tryidol-Inv/internal/application/billing"
	infrapdf "github.com/tryidoltech/Tryidol-Inv/internal/infrastructure/pdf"
	"github.com/tryidoltech/Tryidol-Inv/internal/infrastructure/postgres"
	"github.com/tryidoltech/Tryidol-Inv/internal/infrastructure/view"
	httpRouter "github.com/tryidoltech/Tryidol-Inv/internal/interfaces/http"
	"github.com/tryidoltech/Tryidol-Inv/pkg/config"
	"github.com/tryidoltech/Tryidol-Inv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	profileUC := billing.NewProfileUseCase(profileRepo)
	billViewUC := billing.NewBillViewUseCase(invoiceRepo, profileRepo)

	pdfGenerator := infrapdf.NewQuotationGenerator(cfg.Assets, log)
	pdfUC := billing.NewQuotationPDFUseCase(billViewUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tryidol Invoice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		InvoiceUC:  invoiceUC,
		ProfileUC:  profileUC,
		BillViewUC: billViewUC,
		PDFUC:      pdfUC,
		RenderHTML: view.RenderBill,
		JWTSecret:  cfg.JWT.Secret,
		CookieDays: cfg.JWT.ExpDays,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
