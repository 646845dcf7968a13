package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/infrastructure/source"
)

const coleccionJSON = `[
  {"id": "1", "name": "TechNova Solutions", "industry": "Software", "location": "Bangalore", "employees": 450, "description": "Cloud-native", "website": "https://technova.example.com"},
  {"id": "2", "name": "GreenFields Agro", "industry": "Agriculture", "location": "Pune", "employees": 1200}
]`

func TestFetchCompanies_DecodificaLaColeccion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(coleccionJSON))
	}))
	defer srv.Close()

	client := source.NewClient(srv.URL, 5*time.Second)
	companies, err := client.FetchCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.Equal(t, "1", companies[0].ID)
	assert.Equal(t, "TechNova Solutions", companies[0].Name)
	assert.Equal(t, 450, companies[0].Employees)
	assert.Equal(t, "https://technova.example.com", companies[0].Website)
	assert.Empty(t, companies[1].Description, "description es opcional")
}

// Una respuesta no-2xx produce *StatusError con el código recibido.
func TestFetchCompanies_RespuestaNo2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := source.NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchCompanies(context.Background())
	require.Error(t, err)

	var statusErr *source.StatusError
	require.ErrorAs(t, err, &statusErr, "el error debe portar el código HTTP")
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "404")
}

func TestFetchCompanies_JSONInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"esto": "no es un arreglo"`))
	}))
	defer srv.Close()

	client := source.NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchCompanies(context.Background())
	assert.Error(t, err)
}

func TestFetchCompanies_ErrorDeRed(t *testing.T) {
	// Servidor cerrado de antemano: la conexión falla.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := source.NewClient(url, time.Second)
	_, err := client.FetchCompanies(context.Background())
	assert.Error(t, err)
}

func TestFetchCompanies_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := source.NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchCompanies(ctx)
	assert.Error(t, err)
}
