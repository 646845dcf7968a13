package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/dto"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/infrastructure/memory"
)

// Flujo completo de una sesión de navegación sobre HTTP: abrir, filtrar,
// buscar con debounce, pasar de página y cerrar.
func TestSessions_FlujoCompleto(t *testing.T) {
	app := appLista(t)

	// Abrir sesión
	var view dto.SessionViewResponse
	resp := doJSON(t, app, http.MethodPost, "/api/sessions", "", &view)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := view.Session.ID
	require.NotEmpty(t, id)
	assert.Equal(t, "All", view.Session.Industry)
	assert.Len(t, view.Items, 8)

	// Página siguiente
	resp = doJSON(t, app, http.MethodPost, "/api/sessions/"+id+"/next", "", &view)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, view.Page.Page)

	// Filtro inmediato: regresa a página 1
	resp = doJSON(t, app, http.MethodPatch, "/api/sessions/"+id+"/query",
		`{"location": "Pune"}`, &view)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Pune", view.Session.Location)
	assert.Equal(t, 1, view.Page.Page)
	assert.Len(t, view.Items, 2, "GreenFields y CodeCrafters están en Pune")

	// Búsqueda con debounce: no se aplica de inmediato
	resp = doJSON(t, app, http.MethodPatch, "/api/sessions/"+id+"/query",
		`{"search": "green"}`, &view)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, view.Session.Search)

	time.Sleep(120 * time.Millisecond) // ventana de 20 ms en buildTestApp

	resp = doJSON(t, app, http.MethodGet, "/api/sessions/"+id, "", &view)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "green", view.Session.Search)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "GreenFields Agro", view.Items[0].Name)

	// Cerrar
	resp = doJSON(t, app, http.MethodDelete, "/api/sessions/"+id, "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var errOut dto.ErrorResponse
	resp = doJSON(t, app, http.MethodGet, "/api/sessions/"+id, "", &errOut)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "SESSION_NOT_FOUND", errOut.Code)
}

func TestSessions_CuerpoInvalidoEnQuery(t *testing.T) {
	app := appLista(t)

	var view dto.SessionViewResponse
	resp := doJSON(t, app, http.MethodPost, "/api/sessions", "", &view)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var errOut dto.ErrorResponse
	resp = doJSON(t, app, http.MethodPatch, "/api/sessions/"+view.Session.ID+"/query",
		`{esto no es json`, &errOut)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errOut.Code)
}

func TestSessions_OperacionesSobreSesionInexistente(t *testing.T) {
	app := appLista(t)

	for _, caso := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/sessions/fantasma", ""},
		{http.MethodPost, "/api/sessions/fantasma/next", ""},
		{http.MethodPost, "/api/sessions/fantasma/prev", ""},
		{http.MethodPatch, "/api/sessions/fantasma/query", `{"search": "x"}`},
		{http.MethodDelete, "/api/sessions/fantasma", ""},
	} {
		var errOut dto.ErrorResponse
		resp := doJSON(t, app, caso.method, caso.path, caso.body, &errOut)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", caso.method, caso.path)
		assert.Equal(t, "SESSION_NOT_FOUND", errOut.Code)
	}
}

func TestSessions_CrearConCatalogoCargandoResponde503(t *testing.T) {
	app := buildTestApp(t, memory.NewCatalog())

	var errOut dto.ErrorResponse
	resp := doJSON(t, app, http.MethodPost, "/api/sessions", "", &errOut)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "LOADING", errOut.Code)
}
