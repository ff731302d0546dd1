package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos. Los campos vacíos o nil
// no filtran. Keyword busca en número de movimiento, código/nombre de
// artículo, nombre del operador y códigos de ubicación.
type MovementFilter struct {
	Kind        entity.MovementKind
	Keyword     string
	ItemID      string
	SlotID      string
	WarehouseID string
	RackID      string
	OperatorID  string
	OccurredFrom *time.Time
	OccurredTo   *time.Time
}

// MovementListRow un movimiento con los nombres visibles ya resueltos,
// listo para mostrar. Lo produce la DB; el use case lo pagina.
type MovementListRow struct {
	ID            string
	MovementNo    string
	Kind          entity.MovementKind
	OccurredAt    time.Time
	RecordedAt    time.Time
	OperatorID    string
	OperatorName  string
	ItemID        string
	ItemCode      string
	ItemName      string
	FromSlotID    *string
	FromSlotCode  *string
	ToSlotID      *string
	ToSlotCode    *string
	Qty           int64
	ActualQty     *int64
	RefMovementID *string
	RefMovementNo *string
	RefKind       *string
	HasReversal   bool
	Note          *string
}

// MovementQueryRepository consultas de lectura sobre el libro de movimientos.
// Las implementaciones son read-only y nunca pasan por la puerta de escritura.
type MovementQueryRepository interface {
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]MovementListRow, error)
	Count(ctx context.Context, filter MovementFilter) (int64, error)
}
