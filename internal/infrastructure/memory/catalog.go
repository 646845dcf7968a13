package memory

import (
	"sync"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/repository"
)

// Asegura que Catalog implementa ambos puertos.
var (
	_ repository.CompanyRepository = (*Catalog)(nil)
	_ repository.CatalogWriter     = (*Catalog)(nil)
)

// Catalog es el catálogo de empresas en memoria. Nace en estado "cargando";
// el cargador inicial lo resuelve una sola vez a "listo" o "error".
// No hay invalidación ni recarga: la colección vive lo que vive el proceso.
type Catalog struct {
	mu        sync.RWMutex
	state     repository.CatalogState
	message   string
	companies []*entity.Company
	byID      map[string]*entity.Company
	version   uint64
}

// NewCatalog construye el catálogo vacío en estado CatalogLoading.
func NewCatalog() *Catalog {
	return &Catalog{state: repository.CatalogLoading}
}

// SetReady reemplaza la colección y marca el catálogo como listo.
func (c *Catalog) SetReady(companies []*entity.Company) {
	byID := make(map[string]*entity.Company, len(companies))
	for _, company := range companies {
		byID[company.ID] = company
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = repository.CatalogReady
	c.message = ""
	c.companies = companies
	c.byID = byID
	c.version++
}

// SetError marca el catálogo como no disponible con el mensaje de la falla.
func (c *Catalog) SetError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = repository.CatalogError
	c.message = message
}

// State devuelve el estado actual y, si aplica, el mensaje de error.
func (c *Catalog) State() (repository.CatalogState, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.message
}

// List devuelve una copia de la colección cargada.
func (c *Catalog) List() []*entity.Company {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

// GetByID devuelve nil, nil si la empresa no existe.
func (c *Catalog) GetByID(id string) (*entity.Company, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byID[id], nil
}

// Version devuelve el número de versión de la colección (0 = nunca cargada).
func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}
