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

var _ repository.RackRepository = (*RackRepo)(nil)

// RackRepo implementación de RackRepository sobre PostgreSQL.
type RackRepo struct {
	q Querier
}

// NewRackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRackRepository(q Querier) *RackRepo {
	return &RackRepo{q: q}
}

const rackColumns = `id, warehouse_id, code, name, status, created_at, updated_at`

// Create persiste una estantería.
func (r *RackRepo) Create(rack *entity.Rack) error {
	query := `
		INSERT INTO racks (` + rackColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rack.ID, rack.WarehouseID, rack.Code, rack.Name,
		rack.Status, rack.CreatedAt, rack.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create rack: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create rack: %w", err)
	}
	return nil
}

// GetByID obtiene una estantería por ID. Devuelve nil sin error si no existe.
func (r *RackRepo) GetByID(id string) (*entity.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get rack")
}

// GetByCode obtiene una estantería por código.
func (r *RackRepo) GetByCode(code string) (*entity.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get rack by code")
}

// List lista estanterías, opcionalmente filtradas por bodega.
func (r *RackRepo) List(warehouseID string, limit, offset int) ([]*entity.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks`
	args := []any{}
	if warehouseID != "" {
		query += ` WHERE warehouse_id = $1`
		args = append(args, warehouseID)
	}
	query += fmt.Sprintf(" ORDER BY code LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list racks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rack
	for rows.Next() {
		var rk entity.Rack
		if err := rows.Scan(&rk.ID, &rk.WarehouseID, &rk.Code, &rk.Name,
			&rk.Status, &rk.CreatedAt, &rk.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rack: %w", err)
		}
		list = append(list, &rk)
	}
	return list, rows.Err()
}

// SetStatus cambia el estado de una estantería.
func (r *RackRepo) SetStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE racks SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("set rack status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RackRepo) scanOne(row pgx.Row, op string) (*entity.Rack, error) {
	var rk entity.Rack
	err := row.Scan(&rk.ID, &rk.WarehouseID, &rk.Code, &rk.Name,
		&rk.Status, &rk.CreatedAt, &rk.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rk, nil
}
