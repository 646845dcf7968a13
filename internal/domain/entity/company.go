package entity

// Company representa un registro de empresa del directorio.
// La colección se carga una sola vez por proceso desde el origen estático
// y es de solo lectura después de eso.
type Company struct {
	ID          string
	Name        string
	Industry    string
	Location    string
	Employees   int    // cantidad de empleados (no negativa)
	Description string // opcional
	Website     string
}
