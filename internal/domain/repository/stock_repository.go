package repository

import "github.com/tu-usuario/bodega-wms/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el stock
// materializado por (artículo, ubicación). Usado dentro de transacciones
// para garantizar consistencia con el libro de movimientos.
type StockRepository interface {
	// Get devuelve el nivel actual; si el par nunca fue tocado devuelve
	// un nivel con Qty 0 (nunca nil sin error).
	Get(itemID, slotID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(itemID, slotID string) (*entity.StockLevel, error)
	// Upsert inserta o actualiza la cantidad. Rechaza Qty negativo con
	// ErrInvalidInput: guardia de última línea por debajo de las
	// precondiciones del motor.
	Upsert(level *entity.StockLevel) error
}
