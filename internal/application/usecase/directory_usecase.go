package usecase

import (
	"fmt"
	"sync"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/dto"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/directory"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/repository"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/pkg/pagination"
)

// DefaultPageSize tamaño de página del listado.
const DefaultPageSize = 8

// DirectoryUseCase sirve el listado filtrado/ordenado/paginado del catálogo
// y las opciones de filtro derivadas de él.
type DirectoryUseCase struct {
	repo     repository.CompanyRepository
	pageSize int

	// Caché de opciones derivadas, invalidado por versión de la colección.
	mu          sync.Mutex
	opts        *directory.Options
	optsVersion uint64
}

// NewDirectoryUseCase construye el caso de uso. pageSize <= 0 usa DefaultPageSize.
func NewDirectoryUseCase(repo repository.CompanyRepository, pageSize int) *DirectoryUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &DirectoryUseCase{repo: repo, pageSize: pageSize}
}

// snapshot devuelve la colección cargada o el error de estado del catálogo.
func (uc *DirectoryUseCase) snapshot() ([]*entity.Company, error) {
	state, message := uc.repo.State()
	switch state {
	case repository.CatalogReady:
		return uc.repo.List(), nil
	case repository.CatalogError:
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, message)
	default:
		return nil, domain.ErrCatalogLoading
	}
}

// List aplica el pipeline de consulta y devuelve la página pedida
// (ajustada al rango válido) con sus metadatos.
func (uc *DirectoryUseCase) List(q directory.Query, page int) (*dto.CompanyListResponse, error) {
	companies, err := uc.snapshot()
	if err != nil {
		return nil, err
	}

	filtered := directory.Apply(companies, q)
	pg := pagination.New(len(filtered), uc.pageSize, page)

	items := make([]dto.CompanyResponse, 0, pg.End-pg.Start)
	for _, c := range filtered[pg.Start:pg.End] {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  pageToResponse(pg),
	}, nil
}

// FilterOptions devuelve las listas de industrias y ubicaciones derivadas.
// Se recalculan solo cuando cambia la versión de la colección.
func (uc *DirectoryUseCase) FilterOptions() (*dto.FilterOptionsResponse, error) {
	companies, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	version := uc.repo.Version()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.opts == nil || uc.optsVersion != version {
		opts := directory.DeriveOptions(companies)
		uc.opts = &opts
		uc.optsVersion = version
	}
	return &dto.FilterOptionsResponse{
		Industries: uc.opts.Industries,
		Locations:  uc.opts.Locations,
	}, nil
}

// GetByID obtiene una empresa por ID. Devuelve nil, nil si no existe.
func (uc *DirectoryUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	if _, err := uc.snapshot(); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// PageSize devuelve el tamaño de página configurado.
func (uc *DirectoryUseCase) PageSize() int { return uc.pageSize }

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		Location:    c.Location,
		Employees:   c.Employees,
		Description: c.Description,
		Website:     c.Website,
	}
}

func pageToResponse(pg pagination.Page) dto.PageResponse {
	return dto.PageResponse{
		Page:       pg.Number,
		PageSize:   pg.Size,
		TotalPages: pg.TotalPages,
		TotalItems: pg.TotalItems,
	}
}
