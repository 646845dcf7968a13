package debounce

import (
	"sync"
	"time"
)

// Debouncer retiene el último valor escrito y lo entrega al callback cuando
// pasa `delay` sin escrituras nuevas. Hay un solo timer: cada escritura
// dentro de la ventana cancela la anterior y la reinicia (gana la última).
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New construye el debouncer. fn se invoca en la goroutine del timer.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Set programa la entrega de v y cancela cualquier entrega pendiente.
// Después de Stop es un no-op.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Si otro Set o Stop ganaron la carrera, este disparo se descarta.
		if d.stopped || d.timer != t {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(v)
	})
	d.timer = t
}

// Stop cancela la entrega pendiente (si la hay) y desactiva el debouncer.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
