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

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/usecase"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/infrastructure/memory"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/infrastructure/source"
	httpRouter "github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/interfaces/http"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/pkg/config"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source_url", cfg.Source.URL).
		Msg("iniciando aplicación")

	catalog := memory.NewCatalog()
	sourceClient := source.NewClient(cfg.Source.URL, time.Duration(cfg.Source.TimeoutSeconds)*time.Second)

	directoryUC := usecase.NewDirectoryUseCase(catalog, cfg.Directory.PageSize)
	sessionUC := usecase.NewSessionUseCase(directoryUC, time.Duration(cfg.Directory.DebounceMS)*time.Millisecond)

	// Carga inicial asíncrona: una sola descarga, sin reintentos. El contexto
	// de apagado evita escribir en el catálogo después del teardown.
	loadCtx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()
	go func() {
		companies, err := sourceClient.FetchCompanies(loadCtx)
		if loadCtx.Err() != nil {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("carga inicial del catálogo")
			catalog.SetError(err.Error())
			return
		}
		catalog.SetReady(companies)
		log.Info().Int("companies", len(companies)).Msg("catálogo cargado")
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Companies Directory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DirectoryUC: directoryUC,
		SessionUC:   sessionUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	cancelLoad()
	sessionUC.Shutdown() // cancela los timers de debounce pendientes

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
