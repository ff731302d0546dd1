package entity

import "time"

// Roles válidos para Operator.
const (
	RoleAdmin  = "admin"
	RoleKeeper = "keeper"
	RoleMember = "member"
)

// Estados de recursos referenciables (operadores, artículos, ubicaciones...).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Operator un operador del almacén; todo movimiento del libro lo referencia.
// Solo un operador activo puede registrar movimientos.
type Operator struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // admin, keeper, member
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active reporta si el operador puede registrar movimientos.
func (o *Operator) Active() bool {
	return o.Status == StatusActive
}
