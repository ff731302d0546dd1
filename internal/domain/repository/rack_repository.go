package repository

import (
	"time"

	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

// RackRepository define el puerto de persistencia para estanterías.
type RackRepository interface {
	Create(rack *entity.Rack) error
	GetByID(id string) (*entity.Rack, error)
	GetByCode(code string) (*entity.Rack, error)
	List(warehouseID string, limit, offset int) ([]*entity.Rack, error)
	SetStatus(id, status string, updatedAt time.Time) error
}
