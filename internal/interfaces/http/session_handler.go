package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/dto"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/usecase"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain"
)

// SessionHandler maneja las sesiones de navegación del directorio.
type SessionHandler struct {
	uc *usecase.SessionUseCase
}

// NewSessionHandler construye el handler inyectando el caso de uso.
func NewSessionHandler(uc *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir sesión de navegación
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionViewResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create()
	if err != nil {
		return respondCatalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// View godoc
// @Summary      Página visible de la sesión
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Params("id"))
	if err != nil {
		return respondSessionError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuery godoc
// @Summary      Cambiar criterios de la sesión
// @Description  Ubicación, industria y orden se aplican de inmediato; el texto de búsqueda se aplica tras 300 ms de inactividad. Todo cambio regresa la página a 1.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la sesión"
// @Param        body  body  dto.UpdateSessionQueryRequest  true  "Criterios a cambiar (los omitidos no se tocan)"
// @Success      200   {object}  dto.SessionViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/query [patch]
func (h *SessionHandler) UpdateQuery(c *fiber.Ctx) error {
	var in dto.UpdateSessionQueryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateQuery(c.Params("id"), in)
	if err != nil {
		return respondSessionError(c, err)
	}
	return c.JSON(out)
}

// NextPage godoc
// @Summary      Avanzar a la página siguiente (con control de límites)
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/next [post]
func (h *SessionHandler) NextPage(c *fiber.Ctx) error {
	out, err := h.uc.NextPage(c.Params("id"))
	if err != nil {
		return respondSessionError(c, err)
	}
	return c.JSON(out)
}

// PrevPage godoc
// @Summary      Regresar a la página anterior (con control de límites)
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SessionViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id}/prev [post]
func (h *SessionHandler) PrevPage(c *fiber.Ctx) error {
	out, err := h.uc.PrevPage(c.Params("id"))
	if err != nil {
		return respondSessionError(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar la sesión (cancela el debounce pendiente)
// @Tags         sessions
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(c.Params("id")); err != nil {
		return respondSessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondSessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: "sesión no encontrada"})
	}
	return respondCatalogError(c, err)
}
