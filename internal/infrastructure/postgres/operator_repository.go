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

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo implementación de OperatorRepository sobre PostgreSQL.
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

const operatorColumns = `id, username, display_name, password_hash, role, status, created_at, updated_at`

// Create persiste un operador.
func (r *OperatorRepo) Create(op *entity.Operator) error {
	query := `
		INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Username, op.DisplayName, op.PasswordHash,
		op.Role, op.Status, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create operator: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create operator: %w", err)
	}
	return nil
}

// GetByID obtiene un operador por ID. Devuelve nil sin error si no existe.
func (r *OperatorRepo) GetByID(id string) (*entity.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get operator")
}

// GetByUsername obtiene un operador por username (para login).
func (r *OperatorRepo) GetByUsername(username string) (*entity.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE username = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username), "get operator by username")
}

// List lista operadores por fecha de alta con paginación.
func (r *OperatorRepo) List(limit, offset int) ([]*entity.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operator
	for rows.Next() {
		var op entity.Operator
		if err := rows.Scan(&op.ID, &op.Username, &op.DisplayName, &op.PasswordHash,
			&op.Role, &op.Status, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}

// SetStatus cambia el estado de un operador.
func (r *OperatorRepo) SetStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE operators SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("set operator status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OperatorRepo) scanOne(row pgx.Row, op string) (*entity.Operator, error) {
	var o entity.Operator
	err := row.Scan(&o.ID, &o.Username, &o.DisplayName, &o.PasswordHash,
		&o.Role, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}
