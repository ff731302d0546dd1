package entity

import "time"

// Item un artículo almacenable, identificado por código visible único.
type Item struct {
	ID        string
	ItemCode  string // código visible único (lo que escanea/ingresa el operador)
	Name      string
	Spec      *string // especificación o presentación, libre
	Unit      *string // unidad de medida ("caja", "unidad"...)
	Status    string  // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
