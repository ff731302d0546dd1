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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: los asientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, movement_no, kind, occurred_at, recorded_at, operator_id, item_id, from_slot_id, to_slot_id, qty, actual_qty, ref_movement_id, note`

// Create persiste un asiento del libro.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.MovementNo, string(m.Kind), m.OccurredAt, m.RecordedAt,
		m.OperatorID, m.ItemID, m.FromSlotID, m.ToSlotID,
		m.Qty, m.ActualQty, m.RefMovementID, m.Note,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create movement: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByNo obtiene un asiento por su número visible. Devuelve nil sin error si no existe.
func (r *MovementRepo) GetByNo(movementNo string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_no = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, movementNo), "get movement by no")
}

// GetByID obtiene un asiento por ID. Devuelve nil sin error si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get movement by id")
}

// HasReversal reporta si ya existe un REVERSAL que referencia al movimiento dado.
func (r *MovementRepo) HasReversal(refMovementID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movements WHERE kind = 'REVERSAL' AND ref_movement_id = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, refMovementID).Scan(&exists); err != nil {
		return false, fmt.Errorf("has reversal: %w", err)
	}
	return exists, nil
}

func (r *MovementRepo) scanOne(row pgx.Row, op string) (*entity.Movement, error) {
	var m entity.Movement
	var kind string
	err := row.Scan(
		&m.ID, &m.MovementNo, &kind, &m.OccurredAt, &m.RecordedAt,
		&m.OperatorID, &m.ItemID, &m.FromSlotID, &m.ToSlotID,
		&m.Qty, &m.ActualQty, &m.RefMovementID, &m.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m.Kind = entity.MovementKind(kind)
	return &m, nil
}
