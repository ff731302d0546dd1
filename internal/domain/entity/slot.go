package entity

import "time"

// Slot una ubicación direccionable de almacenamiento; pertenece a una
// estantería y guarda cantidades de artículos.
type Slot struct {
	ID        string
	RackID    string
	Code      string // código visible único dentro del sistema
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
