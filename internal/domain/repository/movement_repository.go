package repository

import "github.com/tu-usuario/bodega-wms/internal/domain/entity"

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no expone update ni delete para asientos confirmados.
type MovementRepository interface {
	// Create inserta un asiento. Dentro del motor se invoca siempre con un
	// repo atado a la transacción de la operación.
	Create(m *entity.Movement) error
	GetByNo(movementNo string) (*entity.Movement, error)
	GetByID(id string) (*entity.Movement, error)
	// HasReversal reporta si ya existe un REVERSAL que referencia al
	// movimiento dado (máximo un reverso por movimiento).
	HasReversal(refMovementID string) (bool, error)
}
