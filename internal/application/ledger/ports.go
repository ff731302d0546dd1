package ledger

import (
	"context"

	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad de trabajo del motor del libro:
// o se insertan todos los asientos y se actualizan todas las filas de stock
// de una operación, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
