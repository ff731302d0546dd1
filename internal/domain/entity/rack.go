package entity

import "time"

// Rack una estantería; agrupa ubicaciones y opcionalmente pertenece a una bodega.
type Rack struct {
	ID          string
	WarehouseID *string
	Code        string
	Name        string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
