package dto

// CompanyResponse salida de una empresa del directorio.
type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Employees   int    `json:"employees"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

// CompanyListResponse una página del listado filtrado/ordenado.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// FilterOptionsResponse valores de filtro derivados de la colección,
// con el centinela "All" al frente de cada lista.
type FilterOptionsResponse struct {
	Industries []string `json:"industries"`
	Locations  []string `json:"locations"`
}
