package entity

import "time"

// MovementKind tipo de movimiento del libro de inventario.
// Es un tipo propio (no string suelto) para que el despacho por tipo
// sea exhaustivo en los switch del motor.
type MovementKind string

// Tipos de movimiento válidos.
const (
	KindInbound  MovementKind = "IN"       // entrada a ubicación
	KindOutbound MovementKind = "OUT"      // salida desde ubicación
	KindMove     MovementKind = "MOVE"     // traslado entre ubicaciones
	KindCount    MovementKind = "COUNT"    // conteo físico (informativo, qty=0)
	KindAdjust   MovementKind = "ADJUST"   // ajuste derivado de un conteo (qty = real − previo, con signo)
	KindReversal MovementKind = "REVERSAL" // reverso de un movimiento anterior
)

// Valid reporta si el tipo es uno de los seis conocidos.
func (k MovementKind) Valid() bool {
	switch k {
	case KindInbound, KindOutbound, KindMove, KindCount, KindAdjust, KindReversal:
		return true
	}
	return false
}

// Reversible reporta si un movimiento de este tipo admite reverso.
// COUNT no se reversa directamente: se reversa su ADJUST emparejado,
// que es el registro con efecto sobre el stock.
func (k MovementKind) Reversible() bool {
	switch k {
	case KindInbound, KindOutbound, KindMove, KindAdjust:
		return true
	}
	return false
}

// Movement un asiento inmutable del libro de movimientos.
// Una vez insertado ninguno de sus campos cambia; el libro es append-only.
//
// Qty: para IN/OUT/MOVE siempre > 0 (la dirección la da el tipo y las
// ubicaciones); para COUNT es 0; para ADJUST es el delta con signo;
// para REVERSAL copia el Qty del movimiento referenciado.
type Movement struct {
	ID            string
	MovementNo    string // código único visible ("T" + uuid); lo que el caller usa para reversar
	Kind          MovementKind
	OccurredAt    time.Time // fecha de negocio, la aporta el caller (puede ser retroactiva)
	RecordedAt    time.Time // fecha de inserción en el sistema, monótona bajo la puerta de escritura
	OperatorID    string
	ItemID        string
	FromSlotID    *string
	ToSlotID      *string
	Qty           int64
	ActualQty     *int64  // solo COUNT: cantidad física contada
	RefMovementID *string // REVERSAL -> movimiento reversado; ADJUST -> COUNT que lo originó
	Note          *string
}
