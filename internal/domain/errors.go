package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrCatalogLoading     = errors.New("el catálogo todavía se está cargando")
	ErrCatalogUnavailable = errors.New("catálogo no disponible")
)
