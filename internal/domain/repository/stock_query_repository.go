package repository

import "context"

// StockFilter filtros del listado de stock. Los campos vacíos no filtran.
type StockFilter struct {
	WarehouseID string
	RackID      string
	SlotID      string
	ItemID      string
	Keyword     string // código/nombre de artículo o código de ubicación
}

// StockListRow una fila de stock con la jerarquía bodega/estantería/ubicación
// y el artículo ya resueltos.
type StockListRow struct {
	WarehouseID   *string
	WarehouseCode *string
	WarehouseName *string
	RackID        string
	RackCode      string
	RackName      string
	SlotID        string
	SlotCode      string
	ItemID        string
	ItemCode      string
	ItemName      string
	Qty           int64
}

// StockQueryRepository consultas de lectura sobre el stock materializado.
type StockQueryRepository interface {
	// ListBySlot ordena por estantería y ubicación.
	ListBySlot(ctx context.Context, filter StockFilter, limit, offset int) ([]StockListRow, error)
	// ListByItem ordena por código de artículo y luego ubicación.
	ListByItem(ctx context.Context, filter StockFilter, limit, offset int) ([]StockListRow, error)
	Count(ctx context.Context, filter StockFilter) (int64, error)
}
