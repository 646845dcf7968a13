package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/application/dto"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/internal/domain/directory"
	"github.com/GULLAPALLI-JYOTHI-KIRAN/Companies-Directory/pkg/debounce"
)

// DefaultDebounceDelay ventana de inactividad antes de aplicar el texto de búsqueda.
const DefaultDebounceDelay = 300 * time.Millisecond

// browseSession es el estado de navegación de un cliente: los cuatro
// criterios aplicados, la página actual y el debouncer de búsqueda.
type browseSession struct {
	id string

	mu    sync.Mutex
	query directory.Query
	page  int

	search *debounce.Debouncer[string]
}

// SessionUseCase administra sesiones de navegación del directorio.
// La sesión replica el ciclo de la vista: se crea al entrar, se cierra al
// salir (cancelando el timer de debounce pendiente) y cualquier cambio
// aplicado a los criterios regresa la página a 1.
type SessionUseCase struct {
	directory *DirectoryUseCase
	delay     time.Duration

	mu       sync.RWMutex
	sessions map[string]*browseSession
}

// NewSessionUseCase construye el administrador de sesiones.
// delay <= 0 usa DefaultDebounceDelay.
func NewSessionUseCase(directoryUC *DirectoryUseCase, delay time.Duration) *SessionUseCase {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &SessionUseCase{
		directory: directoryUC,
		delay:     delay,
		sessions:  make(map[string]*browseSession),
	}
}

// Create abre una sesión con los criterios iniciales: sin búsqueda,
// filtros en "All", orden por nombre ascendente, página 1.
// Requiere que el catálogo esté listo.
func (uc *SessionUseCase) Create() (*dto.SessionViewResponse, error) {
	s := &browseSession{
		id: uuid.New().String(),
		query: directory.Query{
			Location: directory.AllOption,
			Industry: directory.AllOption,
			Sort:     directory.SortNameAsc,
		},
		page: 1,
	}
	s.search = debounce.New(uc.delay, func(v string) {
		uc.applySearch(s, v)
	})

	s.mu.Lock()
	view, err := uc.viewLocked(s)
	s.mu.Unlock()
	if err != nil {
		s.search.Stop()
		return nil, err
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()
	return view, nil
}

// View devuelve la página visible de la sesión con su estado.
func (uc *SessionUseCase) View(id string) (*dto.SessionViewResponse, error) {
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return uc.viewLocked(s)
}

// UpdateQuery cambia los criterios de la sesión. Ubicación, industria y
// orden se aplican de inmediato; el texto de búsqueda entra al debounce y
// se propaga cuando pasa la ventana de inactividad. Todo cambio aplicado
// regresa la página a 1.
func (uc *SessionUseCase) UpdateQuery(id string, in dto.UpdateSessionQueryRequest) (*dto.SessionViewResponse, error) {
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	changed := false
	if in.Location != nil && *in.Location != s.query.Location {
		s.query.Location = *in.Location
		changed = true
	}
	if in.Industry != nil && *in.Industry != s.query.Industry {
		s.query.Industry = *in.Industry
		changed = true
	}
	if in.Sort != nil {
		if key := directory.ParseSortKey(*in.Sort); key != s.query.Sort {
			s.query.Sort = key
			changed = true
		}
	}
	if changed {
		s.page = 1
	}
	view, err := uc.viewLocked(s)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// Fuera del lock de la sesión: el disparo del timer vuelve a tomarlo.
	if in.Search != nil {
		s.search.Set(*in.Search)
	}
	return view, nil
}

// NextPage avanza una página si existe; en la última se queda donde está.
func (uc *SessionUseCase) NextPage(id string) (*dto.SessionViewResponse, error) {
	return uc.turnPage(id, +1)
}

// PrevPage retrocede una página si existe; en la primera se queda donde está.
func (uc *SessionUseCase) PrevPage(id string) (*dto.SessionViewResponse, error) {
	return uc.turnPage(id, -1)
}

// Close cierra la sesión y cancela cualquier entrega de búsqueda pendiente.
func (uc *SessionUseCase) Close(id string) error {
	uc.mu.Lock()
	s, ok := uc.sessions[id]
	delete(uc.sessions, id)
	uc.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	s.search.Stop()
	return nil
}

// Shutdown cierra todas las sesiones (apagado del proceso).
func (uc *SessionUseCase) Shutdown() {
	uc.mu.Lock()
	sessions := uc.sessions
	uc.sessions = make(map[string]*browseSession)
	uc.mu.Unlock()
	for _, s := range sessions {
		s.search.Stop()
	}
}

func (uc *SessionUseCase) turnPage(id string, delta int) (*dto.SessionViewResponse, error) {
	s, err := uc.get(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// viewLocked ajusta la página al rango [1, totalPages].
	s.page += delta
	return uc.viewLocked(s)
}

func (uc *SessionUseCase) get(id string) (*browseSession, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	s, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// applySearch es el destino del debounce: aplica el último texto recibido
// y, si cambió, regresa la página a 1.
func (uc *SessionUseCase) applySearch(s *browseSession, v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query.Search == v {
		return
	}
	s.query.Search = v
	s.page = 1
}

// viewLocked calcula la página visible; el llamador debe tener s.mu.
// Sincroniza s.page con la página efectiva tras el ajuste de rango.
func (uc *SessionUseCase) viewLocked(s *browseSession) (*dto.SessionViewResponse, error) {
	out, err := uc.directory.List(s.query, s.page)
	if err != nil {
		return nil, err
	}
	s.page = out.Page.Page
	return &dto.SessionViewResponse{
		Session: dto.SessionStateResponse{
			ID:       s.id,
			Search:   s.query.Search,
			Location: s.query.Location,
			Industry: s.query.Industry,
			Sort:     string(s.query.Sort),
		},
		Items: out.Items,
		Page:  out.Page,
	}, nil
}
