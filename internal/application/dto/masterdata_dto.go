package dto

import "time"

// CreateItemRequest alta de artículo.
type CreateItemRequest struct {
	ItemCode string  `json:"item_code"`
	Name     string  `json:"name"`
	Spec     *string `json:"spec"`
	Unit     *string `json:"unit"`
}

// ItemResponse artículo para listados.
type ItemResponse struct {
	ID        string    `json:"id"`
	ItemCode  string    `json:"item_code"`
	Name      string    `json:"name"`
	Spec      *string   `json:"spec"`
	Unit      *string   `json:"unit"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateWarehouseRequest alta de bodega.
type CreateWarehouseRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// WarehouseResponse bodega para listados.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRackRequest alta de estantería, opcionalmente dentro de una bodega.
type CreateRackRequest struct {
	WarehouseID *string `json:"warehouse_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
}

// RackResponse estantería para listados.
type RackResponse struct {
	ID          string    `json:"id"`
	WarehouseID *string   `json:"warehouse_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateSlotRequest alta de ubicación dentro de una estantería.
type CreateSlotRequest struct {
	RackID string `json:"rack_id"`
	Code   string `json:"code"`
}

// SlotResponse ubicación para listados.
type SlotResponse struct {
	ID        string    `json:"id"`
	RackID    string    `json:"rack_id"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusRequest cambio de estado genérico (active/inactive).
type StatusRequest struct {
	Status string `json:"status"`
}
