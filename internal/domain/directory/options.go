package directory

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/entity"
)

// Options son los valores de filtro derivados de la colección cargada.
// Cada lista empieza con el centinela AllOption y el resto va en orden
// lexicográfico (colación Unicode).
type Options struct {
	Industries []string
	Locations  []string
}

// DeriveOptions calcula los conjuntos distintos de industrias y ubicaciones
// presentes en la colección. Se recalcula cada vez que la colección cambia;
// el caché por versión vive en la capa de aplicación.
func DeriveOptions(companies []*entity.Company) Options {
	industries := make(map[string]struct{})
	locations := make(map[string]struct{})
	for _, c := range companies {
		if c.Industry != "" {
			industries[c.Industry] = struct{}{}
		}
		if c.Location != "" {
			locations[c.Location] = struct{}{}
		}
	}
	return Options{
		Industries: sortedWithAll(industries),
		Locations:  sortedWithAll(locations),
	}
}

func sortedWithAll(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	collate.New(language.Und).SortStrings(values)
	return append([]string{AllOption}, values...)
}
