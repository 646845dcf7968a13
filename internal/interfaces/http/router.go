package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DirectoryUC *usecase.DirectoryUseCase
	SessionUC   *usecase.SessionUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies (lectura pública)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.DirectoryUC)
	companies.Get("/", companyHandler.List)
	// "/filters" antes de "/:id" para que no lo capture el parámetro.
	companies.Get("/filters", companyHandler.FilterOptions)
	companies.Get("/:id", companyHandler.GetByID)

	// Sesiones de navegación (estado de la vista en el servidor)
	sessions := api.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.SessionUC)
	sessions.Post("/", sessionHandler.Create)
	sessions.Get("/:id", sessionHandler.View)
	sessions.Patch("/:id/query", sessionHandler.UpdateQuery)
	sessions.Post("/:id/next", sessionHandler.NextPage)
	sessions.Post("/:id/prev", sessionHandler.PrevPage)
	sessions.Delete("/:id", sessionHandler.Close)
}
