package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"
)

const defaultTimeout = 15 * time.Second

// StatusError indica que el origen respondió con un código no-2xx.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("el origen de datos respondió HTTP %d", e.StatusCode)
}

// companyDocument es el registro tal como viene en el JSON estático.
type companyDocument struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Employees   int    `json:"employees"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// Client descarga la colección de empresas desde el endpoint estático.
// Una sola descarga por proceso; sin reintentos ni caché.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient construye el cliente del origen estático. timeout <= 0 usa el
// valor por defecto (15 s).
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCompanies hace GET al endpoint y decodifica el arreglo JSON de
// empresas. Una respuesta no-2xx devuelve *StatusError con el código.
func (c *Client) FetchCompanies(ctx context.Context) ([]*entity.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("construir petición al origen: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("descargar colección de empresas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var docs []companyDocument
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decodificar colección de empresas: %w", err)
	}

	companies := make([]*entity.Company, 0, len(docs))
	for _, d := range docs {
		companies = append(companies, &entity.Company{
			ID:          d.ID,
			Name:        d.Name,
			Industry:    d.Industry,
			Location:    d.Location,
			Employees:   d.Employees,
			Description: d.Description,
			Website:     d.Website,
		})
	}
	return companies, nil
}
