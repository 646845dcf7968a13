package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"
)

// AllOption es el valor centinela que desactiva un filtro exacto.
const AllOption = "All"

// SortKey identifica el criterio de ordenamiento del listado.
type SortKey string

const (
	SortNameAsc       SortKey = "name_asc"
	SortNameDesc      SortKey = "name_desc"
	SortEmployeesAsc  SortKey = "employees_asc"
	SortEmployeesDesc SortKey = "employees_desc"
)

// ParseSortKey normaliza el valor recibido por query param.
// Un valor desconocido cae al orden por defecto (nombre ascendente):
// ordenar es una función total, nunca un error.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortNameAsc, SortNameDesc, SortEmployeesAsc, SortEmployeesDesc:
		return key
	default:
		return SortNameAsc
	}
}

// Query agrupa las cuatro entradas del pipeline de consulta.
type Query struct {
	Search   string  // subcadena, insensible a mayúsculas; vacía = sin búsqueda
	Location string  // coincidencia exacta salvo AllOption o vacío
	Industry string  // coincidencia exacta salvo AllOption o vacío
	Sort     SortKey
}

// Apply ejecuta el pipeline búsqueda→filtro ubicación→filtro industria→orden
// sobre la colección y devuelve una nueva secuencia. Es una función pura:
// no modifica la colección de entrada y su resultado siempre es un
// subconjunto de ella. El orden es estable para cada clave.
func Apply(companies []*entity.Company, q Query) []*entity.Company {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]*entity.Company, 0, len(companies))
	for _, c := range companies {
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if exactFilterActive(q.Location) && c.Location != q.Location {
			continue
		}
		if exactFilterActive(q.Industry) && c.Industry != q.Industry {
			continue
		}
		out = append(out, c)
	}

	sortCompanies(out, q.Sort)
	return out
}

// matchesSearch comprueba la subcadena (ya en minúsculas) contra
// nombre, descripción e industria.
func matchesSearch(c *entity.Company, search string) bool {
	return strings.Contains(strings.ToLower(c.Name), search) ||
		strings.Contains(strings.ToLower(c.Description), search) ||
		strings.Contains(strings.ToLower(c.Industry), search)
}

func exactFilterActive(value string) bool {
	return value != "" && value != AllOption
}

func sortCompanies(companies []*entity.Company, key SortKey) {
	switch key {
	case SortEmployeesAsc:
		sort.SliceStable(companies, func(i, j int) bool {
			return companies[i].Employees < companies[j].Employees
		})
	case SortEmployeesDesc:
		sort.SliceStable(companies, func(i, j int) bool {
			return companies[i].Employees > companies[j].Employees
		})
	case SortNameDesc:
		col := newNameCollator()
		sort.SliceStable(companies, func(i, j int) bool {
			return col.CompareString(companies[i].Name, companies[j].Name) > 0
		})
	default: // SortNameAsc
		col := newNameCollator()
		sort.SliceStable(companies, func(i, j int) bool {
			return col.CompareString(companies[i].Name, companies[j].Name) < 0
		})
	}
}

// newNameCollator se crea por llamada: el Collator no es seguro para
// uso concurrente.
func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}
