package ledger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tu-usuario/bodega-wms/internal/domain"
)

// Gate puerta de escritura del libro: un mutex de proceso que serializa todas
// las operaciones mutadoras (como máximo una dentro de la sección crítica),
// más un flag de migración de almacenamiento que, estando activo, hace fallar
// rápido cualquier mutación con ErrConflict antes de tomar el mutex.
//
// Las lecturas nunca pasan por aquí: observan el estado pre o post commit de
// cualquier operación en vuelo gracias a la frontera transaccional.
type Gate struct {
	mu        sync.Mutex
	migrating atomic.Bool
}

// Acquire toma la puerta y devuelve la función de liberación. El caller debe
// invocarla con defer inmediatamente: no liberarla bloquearía todas las
// mutaciones futuras. El flag de migración se consulta antes de tomar el
// mutex, para que las operaciones no se encolen detrás de una migración.
func (g *Gate) Acquire() (release func(), err error) {
	if g.migrating.Load() {
		return nil, fmt.Errorf("migración de almacenamiento en curso: %w", domain.ErrConflict)
	}
	g.mu.Lock()
	return g.mu.Unlock, nil
}

// SetMigrating activa o desactiva el bloqueo por migración de almacenamiento.
func (g *Gate) SetMigrating(v bool) {
	g.migrating.Store(v)
}

// Migrating reporta si hay una migración de almacenamiento en curso.
func (g *Gate) Migrating() bool {
	return g.migrating.Load()
}
