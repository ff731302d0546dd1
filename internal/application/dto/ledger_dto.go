package dto

import "time"

// InboundRequest cuerpo HTTP para registrar una entrada.
// item_code y to_slot_code son códigos visibles; el handler los resuelve.
type InboundRequest struct {
	ItemCode   string  `json:"item_code"`
	ToSlotCode string  `json:"to_slot_code"`
	Qty        int64   `json:"qty"`
	OccurredAt int64   `json:"occurred_at"` // epoch segundos, fecha de negocio
	Note       *string `json:"note"`
}

// OutboundRequest cuerpo HTTP para registrar una salida.
type OutboundRequest struct {
	ItemCode     string  `json:"item_code"`
	FromSlotCode string  `json:"from_slot_code"`
	Qty          int64   `json:"qty"`
	OccurredAt   int64   `json:"occurred_at"`
	Note         *string `json:"note"`
}

// MoveRequest cuerpo HTTP para registrar un traslado.
type MoveRequest struct {
	ItemCode     string  `json:"item_code"`
	FromSlotCode string  `json:"from_slot_code"`
	ToSlotCode   string  `json:"to_slot_code"`
	Qty          int64   `json:"qty"`
	OccurredAt   int64   `json:"occurred_at"`
	Note         *string `json:"note"`
}

// CountRequest cuerpo HTTP para registrar un conteo físico.
type CountRequest struct {
	ItemCode   string  `json:"item_code"`
	SlotCode   string  `json:"slot_code"`
	ActualQty  int64   `json:"actual_qty"`
	OccurredAt int64   `json:"occurred_at"`
	Note       *string `json:"note"`
}

// ReversalRequest cuerpo HTTP para reversar un movimiento por su número.
type ReversalRequest struct {
	MovementNo string  `json:"movement_no"`
	OccurredAt int64   `json:"occurred_at"`
	Note       *string `json:"note"`
}

// MovementCreatedResponse respuesta de toda operación mutadora del libro:
// el número de movimiento generado, con el que luego se puede reversar.
type MovementCreatedResponse struct {
	MovementNo string `json:"movement_no"`
}

// MovementListRequest filtros + paginación del listado de movimientos.
type MovementListRequest struct {
	Kind        string `query:"kind" json:"kind"`
	Keyword     string `query:"keyword" json:"keyword"`
	ItemID      string `query:"item_id" json:"item_id"`
	SlotID      string `query:"slot_id" json:"slot_id"`
	WarehouseID string `query:"warehouse_id" json:"warehouse_id"`
	RackID      string `query:"rack_id" json:"rack_id"`
	OperatorID  string `query:"operator_id" json:"operator_id"`
	StartAt     *int64 `query:"start_at" json:"start_at"` // epoch segundos sobre occurred_at
	EndAt       *int64 `query:"end_at" json:"end_at"`
	PageRequest
}

// MovementRow fila del listado de movimientos con nombres resueltos.
type MovementRow struct {
	ID            string    `json:"id"`
	MovementNo    string    `json:"movement_no"`
	Kind          string    `json:"kind"`
	OccurredAt    time.Time `json:"occurred_at"`
	RecordedAt    time.Time `json:"recorded_at"`
	OperatorName  string    `json:"operator_name"`
	ItemCode      string    `json:"item_code"`
	ItemName      string    `json:"item_name"`
	FromSlotCode  *string   `json:"from_slot_code"`
	ToSlotCode    *string   `json:"to_slot_code"`
	Qty           int64     `json:"qty"`
	ActualQty     *int64    `json:"actual_qty"`
	RefMovementNo *string   `json:"ref_movement_no"`
	RefKind       *string   `json:"ref_kind"`
	HasReversal   bool      `json:"has_reversal"`
	Note          *string   `json:"note"`
}

// MovementListResponse página del listado de movimientos.
type MovementListResponse struct {
	Items []MovementRow `json:"items"`
	Page  PageResponse  `json:"page"`
}

// StockListRequest filtros + paginación del listado de stock.
type StockListRequest struct {
	WarehouseID string `query:"warehouse_id" json:"warehouse_id"`
	RackID      string `query:"rack_id" json:"rack_id"`
	SlotID      string `query:"slot_id" json:"slot_id"`
	ItemID      string `query:"item_id" json:"item_id"`
	Keyword     string `query:"keyword" json:"keyword"`
	PageRequest
}

// StockRow fila del listado de stock con la jerarquía resuelta.
type StockRow struct {
	WarehouseCode *string `json:"warehouse_code"`
	WarehouseName *string `json:"warehouse_name"`
	RackCode      string  `json:"rack_code"`
	RackName      string  `json:"rack_name"`
	SlotCode      string  `json:"slot_code"`
	ItemCode      string  `json:"item_code"`
	ItemName      string  `json:"item_name"`
	Qty           int64   `json:"qty"`
}

// StockListResponse página del listado de stock.
type StockListResponse struct {
	Items []StockRow   `json:"items"`
	Page  PageResponse `json:"page"`
}
