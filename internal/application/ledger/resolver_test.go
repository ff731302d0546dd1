package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-wms/internal/application/ledger"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
)

type memItemRepo struct {
	items map[string]*entity.Item // por código
}

func (r *memItemRepo) Create(item *entity.Item) error { r.items[item.ItemCode] = item; return nil }
func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}
func (r *memItemRepo) GetByCode(code string) (*entity.Item, error) { return r.items[code], nil }
func (r *memItemRepo) List(keyword string, limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}
func (r *memItemRepo) SetStatus(id, status string, updatedAt time.Time) error { return nil }

type memSlotRepo struct {
	slots map[string]*entity.Slot // por código
}

func (r *memSlotRepo) Create(slot *entity.Slot) error { r.slots[slot.Code] = slot; return nil }
func (r *memSlotRepo) GetByID(id string) (*entity.Slot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSlotRepo) GetByCode(code string) (*entity.Slot, error) { return r.slots[code], nil }
func (r *memSlotRepo) ListByRack(rackID string, limit, offset int) ([]*entity.Slot, error) {
	return nil, nil
}
func (r *memSlotRepo) SetStatus(id, status string, updatedAt time.Time) error { return nil }

func newResolver() *ledger.Resolver {
	items := &memItemRepo{items: map[string]*entity.Item{
		"SKU-1": {ID: "i1", ItemCode: "SKU-1", Name: "Tornillo", Status: entity.StatusActive},
		"SKU-2": {ID: "i2", ItemCode: "SKU-2", Name: "Tuerca", Status: entity.StatusInactive},
	}}
	slots := &memSlotRepo{slots: map[string]*entity.Slot{
		"A-01-01": {ID: "s1", RackID: "r1", Code: "A-01-01", Status: entity.StatusActive},
		"A-01-02": {ID: "s2", RackID: "r1", Code: "A-01-02", Status: entity.StatusInactive},
	}}
	return ledger.NewResolver(items, slots)
}

// Artículo activo se resuelve al ID interno; inexistente e inactivo fallan
// con el error tipado que corresponde.
func TestResolver_Articulo(t *testing.T) {
	r := newResolver()

	item, err := r.RequireActiveItem("SKU-1")
	require.NoError(t, err)
	assert.Equal(t, "i1", item.ID)

	_, err = r.RequireActiveItem("SKU-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.RequireActiveItem("SKU-2")
	assert.ErrorIs(t, err, domain.ErrInactiveResource)
}

// Igual contrato para ubicaciones.
func TestResolver_Ubicacion(t *testing.T) {
	r := newResolver()

	slot, err := r.RequireActiveSlot("A-01-01")
	require.NoError(t, err)
	assert.Equal(t, "s1", slot.ID)

	_, err = r.RequireActiveSlot("Z-99-99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.RequireActiveSlot("A-01-02")
	assert.ErrorIs(t, err, domain.ErrInactiveResource)
}
