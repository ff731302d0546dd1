package repository

import (
	"time"

	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

// OperatorRepository define el puerto de persistencia para operadores.
type OperatorRepository interface {
	Create(op *entity.Operator) error
	GetByID(id string) (*entity.Operator, error)
	GetByUsername(username string) (*entity.Operator, error)
	List(limit, offset int) ([]*entity.Operator, error)
	SetStatus(id, status string, updatedAt time.Time) error
}
