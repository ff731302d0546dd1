// Package system contiene los casos de uso de operación del propio servicio.
package system

import (
	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/ledger"
	"github.com/tu-usuario/bodega-wms/pkg/logger"
)

// MaintenanceUseCase controla el bloqueo por migración de almacenamiento.
// Con el flag activo toda mutación del libro falla rápido con CONFLICT;
// las lecturas siguen funcionando.
type MaintenanceUseCase struct {
	gate *ledger.Gate
	log  *logger.Logger
}

// NewMaintenanceUseCase construye el caso de uso sobre la puerta del libro.
func NewMaintenanceUseCase(gate *ledger.Gate, log *logger.Logger) *MaintenanceUseCase {
	return &MaintenanceUseCase{gate: gate, log: log}
}

// EnterMaintenance activa el bloqueo. Idempotente.
func (uc *MaintenanceUseCase) EnterMaintenance() dto.MaintenanceStatusResponse {
	uc.gate.SetMigrating(true)
	uc.log.Warn().Msg("bloqueo por migración activado: mutaciones del libro rechazadas")
	return dto.MaintenanceStatusResponse{Migrating: true}
}

// ExitMaintenance desactiva el bloqueo. Idempotente.
func (uc *MaintenanceUseCase) ExitMaintenance() dto.MaintenanceStatusResponse {
	uc.gate.SetMigrating(false)
	uc.log.Info().Msg("bloqueo por migración desactivado")
	return dto.MaintenanceStatusResponse{Migrating: false}
}

// Status reporta si el bloqueo está activo.
func (uc *MaintenanceUseCase) Status() dto.MaintenanceStatusResponse {
	return dto.MaintenanceStatusResponse{Migrating: uc.gate.Migrating()}
}
