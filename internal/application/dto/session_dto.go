package dto

// UpdateSessionQueryRequest entrada para cambiar los criterios de una sesión.
// Los campos en nil no se tocan. El texto de búsqueda pasa por el debounce
// antes de aplicarse; los demás se aplican de inmediato.
type UpdateSessionQueryRequest struct {
	Search   *string `json:"search"`
	Location *string `json:"location"`
	Industry *string `json:"industry"`
	Sort     *string `json:"sort"`
}

// SessionStateResponse criterios aplicados de una sesión de navegación.
// Search refleja el valor ya propagado al pipeline, no el tecleo crudo.
type SessionStateResponse struct {
	ID       string `json:"id"`
	Search   string `json:"search"`
	Location string `json:"location"`
	Industry string `json:"industry"`
	Sort     string `json:"sort"`
}

// SessionViewResponse estado de la sesión más la página visible.
type SessionViewResponse struct {
	Session SessionStateResponse `json:"session"`
	Items   []CompanyResponse    `json:"items"`
	Page    PageResponse         `json:"page"`
}
