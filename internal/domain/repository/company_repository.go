package repository

import "github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"

// CatalogState es el estado de carga del catálogo en memoria.
// Arranca en CatalogLoading y pasa una sola vez a CatalogReady o CatalogError.
type CatalogState int

const (
	CatalogLoading CatalogState = iota
	CatalogReady
	CatalogError
)

// CompanyRepository define el puerto de lectura del catálogo de empresas (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// State devuelve el estado actual; el mensaje solo aplica en CatalogError.
	State() (CatalogState, string)
	// List devuelve la colección cargada (copia; vacía si no está lista).
	List() []*entity.Company
	// GetByID devuelve nil, nil si la empresa no existe.
	GetByID(id string) (*entity.Company, error)
	// Version cambia cuando la colección se reemplaza; permite invalidar
	// estado derivado (opciones de filtro) sin recalcular por petición.
	Version() uint64
}

// CatalogWriter define el puerto de escritura que usa el cargador inicial.
type CatalogWriter interface {
	SetReady(companies []*entity.Company)
	SetError(message string)
}
