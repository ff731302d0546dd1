// Package analytics contiene los casos de uso read-only del panel de inicio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

const dashboardRecentMovements = 10 // filas en el widget de últimos movimientos

// DashboardUseCase genera el resumen operativo del almacén: contadores
// globales más los últimos movimientos registrados.
//
// Fuente de datos: DashboardRepository (consultas read-only). Nunca pasa por
// la puerta de escritura del libro.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardResponse.
//
// Dos llamadas en paralelo:
//  1. Overview(hoy 00:00)              → contadores globales
//  2. RecentMovements(10)              → últimos movimientos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type overviewResult struct {
		ov  *repository.DashboardOverview
		err error
	}
	type recentResult struct {
		rows []repository.MovementListRow
		err  error
	}

	ovCh := make(chan overviewResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		ov, err := uc.dashboardRepo.Overview(ctx, todayStart)
		ovCh <- overviewResult{ov, err}
	}()
	go func() {
		rows, err := uc.dashboardRepo.RecentMovements(ctx, dashboardRecentMovements)
		recentCh <- recentResult{rows, err}
	}()

	ov := <-ovCh
	recent := <-recentCh

	if ov.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", ov.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimos movimientos: %w", recent.err)
	}

	rows := make([]dto.MovementRow, 0, len(recent.rows))
	for _, r := range recent.rows {
		rows = append(rows, dto.MovementRow{
			ID:            r.ID,
			MovementNo:    r.MovementNo,
			Kind:          string(r.Kind),
			OccurredAt:    r.OccurredAt,
			RecordedAt:    r.RecordedAt,
			OperatorName:  r.OperatorName,
			ItemCode:      r.ItemCode,
			ItemName:      r.ItemName,
			FromSlotCode:  r.FromSlotCode,
			ToSlotCode:    r.ToSlotCode,
			Qty:           r.Qty,
			ActualQty:     r.ActualQty,
			RefMovementNo: r.RefMovementNo,
			RefKind:       r.RefKind,
			HasReversal:   r.HasReversal,
			Note:          r.Note,
		})
	}

	return &dto.DashboardResponse{
		ActiveItems:     ov.ov.ActiveItems,
		SlotsWithStock:  ov.ov.SlotsWithStock,
		TotalQty:        ov.ov.TotalQty,
		MovementsToday:  ov.ov.MovementsToday,
		PendingReversal: ov.ov.PendingReversal,
		Recent:          rows,
	}, nil
}
