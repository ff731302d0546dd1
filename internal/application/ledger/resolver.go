package ledger

import (
	"fmt"

	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// Resolver traduce códigos visibles (item_code, slot_code) a identificadores
// internos y exige que el recurso exista y esté activo. Los handlers lo usan
// antes de invocar el motor; el motor mismo solo valida el operador, porque
// es el único participante presente en todos los movimientos.
type Resolver struct {
	itemRepo repository.ItemRepository
	slotRepo repository.SlotRepository
}

// NewResolver construye el resolutor de referencias.
func NewResolver(itemRepo repository.ItemRepository, slotRepo repository.SlotRepository) *Resolver {
	return &Resolver{itemRepo: itemRepo, slotRepo: slotRepo}
}

// RequireActiveItem resuelve un artículo por código; debe existir y estar activo.
func (r *Resolver) RequireActiveItem(itemCode string) (*entity.Item, error) {
	item, err := r.itemRepo.GetByCode(itemCode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %s: %w", itemCode, domain.ErrNotFound)
	}
	if item.Status != entity.StatusActive {
		return nil, fmt.Errorf("artículo %s: %w", itemCode, domain.ErrInactiveResource)
	}
	return item, nil
}

// RequireActiveSlot resuelve una ubicación por código; debe existir y estar activa.
func (r *Resolver) RequireActiveSlot(code string) (*entity.Slot, error) {
	slot, err := r.slotRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, fmt.Errorf("ubicación %s: %w", code, domain.ErrNotFound)
	}
	if slot.Status != entity.StatusActive {
		return nil, fmt.Errorf("ubicación %s: %w", code, domain.ErrInactiveResource)
	}
	return slot, nil
}
