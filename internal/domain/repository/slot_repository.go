package repository

import (
	"time"

	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

// SlotRepository define el puerto de persistencia para ubicaciones.
type SlotRepository interface {
	Create(slot *entity.Slot) error
	GetByID(id string) (*entity.Slot, error)
	GetByCode(code string) (*entity.Slot, error)
	ListByRack(rackID string, limit, offset int) ([]*entity.Slot, error)
	SetStatus(id, status string, updatedAt time.Time) error
}
