package pagination

// Paginación 1-based sobre secuencias en memoria. Siempre hay al menos una
// página (aunque la secuencia esté vacía) y las transiciones next/prev
// respetan los límites.

// Page describe la ventana de una página sobre una secuencia de TotalItems
// elementos. Start y End son índices [Start, End) sobre la secuencia.
type Page struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
	Start      int
	End        int
}

// TotalPages devuelve ceil(totalItems/size), con mínimo 1.
func TotalPages(totalItems, size int) int {
	if size <= 0 {
		size = 1
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + size - 1) / size
}

// Clamp ajusta page al rango [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// New calcula la ventana para la página pedida, ajustada al rango válido.
// Concatenar las ventanas de todas las páginas reproduce la secuencia
// completa exactamente una vez.
func New(totalItems, size, number int) Page {
	if size <= 0 {
		size = 1
	}
	totalPages := TotalPages(totalItems, size)
	number = Clamp(number, totalPages)

	start := (number - 1) * size
	if start > totalItems {
		start = totalItems
	}
	end := start + size
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// HasNext indica si existe una página siguiente.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// HasPrev indica si existe una página anterior.
func (p Page) HasPrev() bool { return p.Number > 1 }

// Next devuelve el número de la página siguiente, o el actual si ya es la última.
func (p Page) Next() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

// Prev devuelve el número de la página anterior, o el actual si ya es la primera.
func (p Page) Prev() int {
	if p.HasPrev() {
		return p.Number - 1
	}
	return p.Number
}
