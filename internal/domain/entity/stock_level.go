package entity

import "time"

// StockLevel cantidad actual materializada de un artículo en una ubicación.
// Se crea con el primer movimiento que toca el par (item, slot) y nunca se
// borra: cantidad cero es un estado de reposo válido, no una ausencia.
//
// Invariante: en reposo, Qty es igual a la suma con signo de los efectos de
// todos los movimientos confirmados sobre el par. Nunca negativo.
type StockLevel struct {
	ItemID    string
	SlotID    string
	Qty       int64
	UpdatedAt time.Time
}
