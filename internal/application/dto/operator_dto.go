package dto

import "time"

// CreateOperatorRequest alta de operador (solo admin).
type CreateOperatorRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Role        string `json:"role"` // admin, keeper, member
}

// OperatorStatusRequest cambio de estado de un operador.
type OperatorStatusRequest struct {
	Status string `json:"status"` // active, inactive
}

// OperatorResponse operador sin credenciales.
type OperatorResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
