package entity

import "time"

// Warehouse una bodega física; nivel superior de la jerarquía
// bodega -> estantería -> ubicación.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	Address   *string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
