package dto

// DashboardResponse contadores globales + últimos movimientos para el panel.
type DashboardResponse struct {
	ActiveItems     int64         `json:"active_items"`
	SlotsWithStock  int64         `json:"slots_with_stock"`
	TotalQty        int64         `json:"total_qty"`
	MovementsToday  int64         `json:"movements_today"`
	PendingReversal int64         `json:"pending_reversal"`
	Recent          []MovementRow `json:"recent"`
}

// MaintenanceStatusResponse estado del bloqueo por migración de almacenamiento.
type MaintenanceStatusResponse struct {
	Migrating bool `json:"migrating"`
}
