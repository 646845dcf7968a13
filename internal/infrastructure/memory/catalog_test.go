package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/repository"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/infrastructure/memory"
)

func dosEmpresas() []*entity.Company {
	return []*entity.Company{
		{ID: "1", Name: "TechNova", Industry: "Software", Location: "Bangalore", Employees: 450},
		{ID: "2", Name: "GreenFields", Industry: "Agriculture", Location: "Pune", Employees: 1200},
	}
}

func TestCatalog_ArrancaCargando(t *testing.T) {
	cat := memory.NewCatalog()

	state, msg := cat.State()
	assert.Equal(t, repository.CatalogLoading, state)
	assert.Empty(t, msg)
	assert.Empty(t, cat.List())
	assert.Zero(t, cat.Version(), "sin carga la versión es 0")
}

func TestCatalog_SetReady(t *testing.T) {
	cat := memory.NewCatalog()
	cat.SetReady(dosEmpresas())

	state, _ := cat.State()
	assert.Equal(t, repository.CatalogReady, state)
	assert.Len(t, cat.List(), 2)
	assert.Equal(t, uint64(1), cat.Version())

	c, err := cat.GetByID("2")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "GreenFields", c.Name)

	ninguna, err := cat.GetByID("999")
	require.NoError(t, err)
	assert.Nil(t, ninguna, "un ID inexistente devuelve nil, nil")
}

func TestCatalog_SetErrorGuardaElMensaje(t *testing.T) {
	cat := memory.NewCatalog()
	cat.SetError("el origen de datos respondió HTTP 500")

	state, msg := cat.State()
	assert.Equal(t, repository.CatalogError, state)
	assert.Equal(t, "el origen de datos respondió HTTP 500", msg)
}

// List devuelve una copia: mutar el resultado no afecta al catálogo.
func TestCatalog_ListDevuelveCopia(t *testing.T) {
	cat := memory.NewCatalog()
	cat.SetReady(dosEmpresas())

	lista := cat.List()
	lista[0], lista[1] = lista[1], lista[0]

	otra := cat.List()
	assert.Equal(t, "1", otra[0].ID, "el orden interno debe conservarse")
}

func TestCatalog_VersionCambiaAlReemplazar(t *testing.T) {
	cat := memory.NewCatalog()
	cat.SetReady(dosEmpresas())
	require.Equal(t, uint64(1), cat.Version())

	cat.SetReady(dosEmpresas()[:1])
	assert.Equal(t, uint64(2), cat.Version())
	assert.Len(t, cat.List(), 1)
}
