package entity

import "time"

// AuditLog un registro inmutable de auditoría sobre una acción del sistema.
// Se escribe después de que la acción retorna; su fallo nunca revierte la acción.
type AuditLog struct {
	ID              string
	Action          string // "txn.inbound", "txn.reversal", "operator.create"...
	ActorOperatorID *string
	TargetType      *string // "movement", "item", "operator"...
	TargetID        *string
	Payload         []byte // request serializado como JSON, puede ser nil
	Success         bool
	ErrorCode       *string // código estable del error cuando Success es false
	CreatedAt       time.Time
}
