package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/dto"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/usecase"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/directory"
)

// CompanyHandler maneja las peticiones HTTP del listado de empresas.
type CompanyHandler struct {
	uc *usecase.DirectoryUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.DirectoryUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas (búsqueda, filtros, orden y paginación)
// @Tags         companies
// @Produce      json
// @Param        q         query  string  false  "Texto de búsqueda (subcadena en nombre, descripción e industria)"
// @Param        location  query  string  false  "Filtro exacto de ubicación"  default(All)
// @Param        industry  query  string  false  "Filtro exacto de industria"  default(All)
// @Param        sort      query  string  false  "name_asc | name_desc | employees_asc | employees_desc"  default(name_asc)
// @Param        page      query  int     false  "Página (1-based)"  default(1)
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	q := directory.Query{
		Search:   c.Query("q"),
		Location: c.Query("location", directory.AllOption),
		Industry: c.Query("industry", directory.AllOption),
		Sort:     directory.ParseSortKey(c.Query("sort")),
	}
	page := c.QueryInt("page", 1)

	out, err := h.uc.List(q, page)
	if err != nil {
		return respondCatalogError(c, err)
	}
	return c.JSON(out)
}

// FilterOptions godoc
// @Summary      Opciones de filtro derivadas de la colección
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.FilterOptionsResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/companies/filters [get]
func (h *CompanyHandler) FilterOptions(c *fiber.Ctx) error {
	out, err := h.uc.FilterOptions()
	if err != nil {
		return respondCatalogError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondCatalogError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// respondCatalogError traduce los errores de estado del catálogo a HTTP.
// El único error real del sistema es la falla de carga; todo lo demás
// (filtrar, ordenar, paginar) son funciones totales.
func respondCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCatalogLoading):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "LOADING", Message: err.Error()})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SOURCE_ERROR", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
