package query

import (
	"context"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// StockGroupBy criterio de agrupación del listado de stock.
type StockGroupBy string

const (
	GroupBySlot StockGroupBy = "slot"
	GroupByItem StockGroupBy = "item"
)

// StockQueryUseCase listado paginado del stock materializado, en dos vistas:
// por ubicación (recorrido físico de la bodega) o por artículo (dónde está
// cada referencia). Solo lectura.
type StockQueryUseCase struct {
	repo repository.StockQueryRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(repo repository.StockQueryRepository) *StockQueryUseCase {
	return &StockQueryUseCase{repo: repo}
}

// List valida la paginación y devuelve la página pedida más el total.
func (uc *StockQueryUseCase) List(ctx context.Context, in dto.StockListRequest, groupBy StockGroupBy) (*dto.StockListResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	filter := repository.StockFilter{
		WarehouseID: in.WarehouseID,
		RackID:      in.RackID,
		SlotID:      in.SlotID,
		ItemID:      in.ItemID,
		Keyword:     in.Keyword,
	}

	limit, offset := in.LimitOffset()
	var (
		rows []repository.StockListRow
		err  error
	)
	if groupBy == GroupByItem {
		rows, err = uc.repo.ListByItem(ctx, filter, limit, offset)
	} else {
		rows, err = uc.repo.ListBySlot(ctx, filter, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockRow, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockRow{
			WarehouseCode: r.WarehouseCode,
			WarehouseName: r.WarehouseName,
			RackCode:      r.RackCode,
			RackName:      r.RackName,
			SlotCode:      r.SlotCode,
			ItemCode:      r.ItemCode,
			ItemName:      r.ItemName,
			Qty:           r.Qty,
		})
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{PageIndex: in.PageIndex, PageSize: in.PageSize, Total: total},
	}, nil
}
