package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para el panel de inicio.
type DashboardRepo struct {
	q    Querier
	movQ *MovementQueryRepo
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q, movQ: NewMovementQueryRepository(q)}
}

// Overview calcula los contadores globales en una sola pasada.
// since es el comienzo del día para el contador de movimientos de hoy.
func (r *DashboardRepo) Overview(ctx context.Context, since time.Time) (*repository.DashboardOverview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM items WHERE status = 'active'),
			(SELECT COUNT(*) FROM (SELECT DISTINCT slot_id FROM stock_levels WHERE qty > 0) sws),
			(SELECT COALESCE(SUM(qty), 0) FROM stock_levels),
			(SELECT COUNT(*) FROM movements WHERE recorded_at >= $1),
			(SELECT COUNT(*) FROM movements m
				WHERE m.kind IN ('IN', 'OUT', 'MOVE', 'ADJUST')
				AND NOT EXISTS (
					SELECT 1 FROM movements rev
					WHERE rev.kind = 'REVERSAL' AND rev.ref_movement_id = m.id
				))`
	var ov repository.DashboardOverview
	err := r.q.QueryRow(ctx, query, since).Scan(
		&ov.ActiveItems, &ov.SlotsWithStock, &ov.TotalQty,
		&ov.MovementsToday, &ov.PendingReversal,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	return &ov, nil
}

// RecentMovements devuelve los últimos movimientos registrados, con nombres resueltos.
func (r *DashboardRepo) RecentMovements(ctx context.Context, limit int) ([]repository.MovementListRow, error) {
	return r.movQ.List(ctx, repository.MovementFilter{}, limit, 0)
}
