package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Inventario-cli/internal/application/inventory"
	"github.com/jhoicas/Inventario-cli/internal/application/session"
	"github.com/jhoicas/Inventario-cli/internal/application/usecase"
	infrapdf "github.com/jhoicas/Inventario-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/rest"
	"github.com/jhoicas/Inventario-cli/internal/infrastructure/tokenstore"
	"github.com/jhoicas/Inventario-cli/internal/interfaces/term"
	"github.com/jhoicas/Inventario-cli/pkg/config"
	"github.com/jhoicas/Inventario-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	store := tokenstore.NewFileStore(cfg.API.TokenPath)
	gateway := rest.New(cfg.API, store, log)

	sessions := session.NewManager(gateway, store, log)
	// Punto único de re-autenticación: un 401 en cualquier ruta no exenta
	// degrada la sesión y devuelve la UI al login.
	gateway.SetOnUnauthorized(sessions.ForceLogout)

	uc := term.UseCases{
		Inventory: inventory.NewUseCase(gateway, log),
		Products:  usecase.NewProductUseCase(gateway),
		Companies: usecase.NewCompanyUseCase(gateway),
		Sellers:   usecase.NewSellerUseCase(gateway),
		Profile:   usecase.NewProfileUseCase(gateway),
		Orders:    usecase.NewOrderUseCase(gateway),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.NewApp(log, sessions, uc, infrapdf.NewInventoryReportGenerator(), os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("la aplicación terminó con error")
	}
	log.Info().Msg("hasta pronto")
}
