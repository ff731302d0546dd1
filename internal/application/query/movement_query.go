package query

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// MovementQueryUseCase listado paginado del libro de movimientos con los
// nombres visibles ya resueltos. Solo lectura: nunca toma la puerta de
// escritura; observa el estado pre o post commit de cualquier movimiento en
// vuelo gracias a la frontera transaccional de la BD.
type MovementQueryUseCase struct {
	repo repository.MovementQueryRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(repo repository.MovementQueryRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{repo: repo}
}

// List valida la paginación, aplica los filtros y devuelve la página más el
// total de filas que los cumplen.
func (uc *MovementQueryUseCase) List(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	filter := repository.MovementFilter{
		Kind:        entity.MovementKind(in.Kind),
		Keyword:     in.Keyword,
		ItemID:      in.ItemID,
		SlotID:      in.SlotID,
		WarehouseID: in.WarehouseID,
		RackID:      in.RackID,
		OperatorID:  in.OperatorID,
	}
	if in.StartAt != nil {
		from := time.Unix(*in.StartAt, 0)
		filter.OccurredFrom = &from
	}
	if in.EndAt != nil {
		to := time.Unix(*in.EndAt, 0)
		filter.OccurredTo = &to
	}

	limit, offset := in.LimitOffset()
	rows, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementRow, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementRow(r))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{PageIndex: in.PageIndex, PageSize: in.PageSize, Total: total},
	}, nil
}

func toMovementRow(r repository.MovementListRow) dto.MovementRow {
	return dto.MovementRow{
		ID:            r.ID,
		MovementNo:    r.MovementNo,
		Kind:          string(r.Kind),
		OccurredAt:    r.OccurredAt,
		RecordedAt:    r.RecordedAt,
		OperatorName:  r.OperatorName,
		ItemCode:      r.ItemCode,
		ItemName:      r.ItemName,
		FromSlotCode:  r.FromSlotCode,
		ToSlotCode:    r.ToSlotCode,
		Qty:           r.Qty,
		ActualQty:     r.ActualQty,
		RefMovementNo: r.RefMovementNo,
		RefKind:       r.RefKind,
		HasReversal:   r.HasReversal,
		Note:          r.Note,
	}
}
