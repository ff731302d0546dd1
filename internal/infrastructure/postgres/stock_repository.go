package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un artículo en una ubicación.
// Par nunca tocado: devuelve un nivel con Qty 0, no nil.
func (r *StockRepo) Get(itemID, slotID string) (*entity.StockLevel, error) {
	query := `
		SELECT item_id, slot_id, qty, updated_at
		FROM stock_levels WHERE item_id = $1 AND slot_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, itemID, slotID).Scan(
		&s.ItemID, &s.SlotID, &s.Qty, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ItemID: itemID, SlotID: slotID, Qty: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(itemID, slotID string) (*entity.StockLevel, error) {
	query := `
		SELECT item_id, slot_id, qty, updated_at
		FROM stock_levels WHERE item_id = $1 AND slot_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, itemID, slotID).Scan(
		&s.ItemID, &s.SlotID, &s.Qty, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ItemID: itemID, SlotID: slotID, Qty: 0}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por artículo y ubicación).
// Qty negativo se rechaza aquí además de en el motor: última línea de defensa
// antes de materializar un estado imposible.
func (r *StockRepo) Upsert(level *entity.StockLevel) error {
	if level.Qty < 0 {
		return fmt.Errorf("stock negativo para artículo %s en ubicación %s: %w",
			level.ItemID, level.SlotID, domain.ErrInvalidInput)
	}
	query := `
		INSERT INTO stock_levels (item_id, slot_id, qty, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, slot_id)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.ItemID, level.SlotID, level.Qty)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
