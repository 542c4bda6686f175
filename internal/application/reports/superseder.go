package reports

import (
	"context"
	"sync"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
)

// Superseder guarda, por clave (usuario + reporte), la generación de la última
// solicitud en curso. Al llegar una nueva solicitud con la misma clave cancela
// el contexto de la anterior con causa domain.ErrSuperseded, así una respuesta
// vieja nunca sobrescribe una más reciente.
type Superseder struct {
	mu       sync.Mutex
	next     uint64
	inflight map[string]generation
}

type generation struct {
	id     uint64
	cancel context.CancelCauseFunc
}

// NewSuperseder construye un Superseder vacío.
func NewSuperseder() *Superseder {
	return &Superseder{inflight: make(map[string]generation)}
}

// Begin registra una nueva generación para key y devuelve su contexto.
// done debe llamarse al terminar la solicitud; libera la clave si sigue siendo la vigente.
func (s *Superseder) Begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)

	s.mu.Lock()
	s.next++
	id := s.next
	if prev, ok := s.inflight[key]; ok {
		prev.cancel(domain.ErrSuperseded)
	}
	s.inflight[key] = generation{id: id, cancel: cancel}
	s.mu.Unlock()

	done := func() {
		s.mu.Lock()
		if cur, ok := s.inflight[key]; ok && cur.id == id {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
		cancel(context.Canceled)
	}
	return ctx, done
}

// InFlight número de claves con una solicitud en curso.
func (s *Superseder) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}
