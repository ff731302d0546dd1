package repository

import (
	"time"

	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para artículos.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(itemCode string) (*entity.Item, error)
	List(keyword string, limit, offset int) ([]*entity.Item, error)
	SetStatus(id, status string, updatedAt time.Time) error
}
