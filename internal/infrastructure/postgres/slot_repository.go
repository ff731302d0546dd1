package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

var _ repository.SlotRepository = (*SlotRepo)(nil)

// SlotRepo implementación de SlotRepository sobre PostgreSQL.
type SlotRepo struct {
	q Querier
}

// NewSlotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSlotRepository(q Querier) *SlotRepo {
	return &SlotRepo{q: q}
}

const slotColumns = `id, rack_id, code, status, created_at, updated_at`

// Create persiste una ubicación.
func (r *SlotRepo) Create(slot *entity.Slot) error {
	query := `
		INSERT INTO slots (` + slotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		slot.ID, slot.RackID, slot.Code, slot.Status, slot.CreatedAt, slot.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create slot: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create slot: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID. Devuelve nil sin error si no existe.
func (r *SlotRepo) GetByID(id string) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get slot")
}

// GetByCode obtiene una ubicación por su código visible.
func (r *SlotRepo) GetByCode(code string) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get slot by code")
}

// ListByRack lista las ubicaciones de una estantería ordenadas por código.
func (r *SlotRepo) ListByRack(rackID string, limit, offset int) ([]*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE rack_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, rackID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Slot
	for rows.Next() {
		var s entity.Slot
		if err := rows.Scan(&s.ID, &s.RackID, &s.Code, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetStatus cambia el estado de una ubicación.
func (r *SlotRepo) SetStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE slots SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("set slot status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SlotRepo) scanOne(row pgx.Row, op string) (*entity.Slot, error) {
	var s entity.Slot
	err := row.Scan(&s.ID, &s.RackID, &s.Code, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
