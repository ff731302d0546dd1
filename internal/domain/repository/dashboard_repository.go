package repository

import (
	"context"
	"time"
)

// DashboardOverview contadores globales para el panel de inicio.
type DashboardOverview struct {
	ActiveItems     int64
	SlotsWithStock  int64
	TotalQty        int64
	MovementsToday  int64
	PendingReversal int64 // movimientos reversables aún sin reverso
}

// DashboardRepository consultas agregadas de solo lectura para el panel.
type DashboardRepository interface {
	Overview(ctx context.Context, since time.Time) (*DashboardOverview, error)
	RecentMovements(ctx context.Context, limit int) ([]MovementListRow, error)
}
