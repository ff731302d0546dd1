package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/audit"
	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/system"
)

// SystemHandler maneja el bloqueo por mantenimiento y la consulta de auditoría
// (solo admin).
type SystemHandler struct {
	maintenanceUC *system.MaintenanceUseCase
	auditUC       *audit.UseCase
}

// NewSystemHandler construye el handler.
func NewSystemHandler(maintenanceUC *system.MaintenanceUseCase, auditUC *audit.UseCase) *SystemHandler {
	return &SystemHandler{maintenanceUC: maintenanceUC, auditUC: auditUC}
}

// EnterMaintenance godoc
// @Summary      Activar bloqueo por migración de almacenamiento
// @Tags         system
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaintenanceStatusResponse
// @Router       /api/system/maintenance/enter [post]
func (h *SystemHandler) EnterMaintenance(c *fiber.Ctx) error {
	h.auditMaintenance(c, "system.maintenance_enter")
	return c.JSON(h.maintenanceUC.EnterMaintenance())
}

// ExitMaintenance godoc
// @Summary      Desactivar bloqueo por migración de almacenamiento
// @Tags         system
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaintenanceStatusResponse
// @Router       /api/system/maintenance/exit [post]
func (h *SystemHandler) ExitMaintenance(c *fiber.Ctx) error {
	h.auditMaintenance(c, "system.maintenance_exit")
	return c.JSON(h.maintenanceUC.ExitMaintenance())
}

// MaintenanceStatus godoc
// @Summary      Estado del bloqueo por mantenimiento
// @Tags         system
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaintenanceStatusResponse
// @Router       /api/system/maintenance [get]
func (h *SystemHandler) MaintenanceStatus(c *fiber.Ctx) error {
	return c.JSON(h.maintenanceUC.Status())
}

// ListAuditLogs godoc
// @Summary      Listar registros de auditoría
// @Tags         system
// @Security     Bearer
// @Produce      json
// @Param        action      query  string  false  "filtrar por acción"
// @Param        page_index  query  int     true   "desde 1"
// @Param        page_size   query  int     true   "desde 1"
// @Success      200  {array}  entity.AuditLog
// @Router       /api/system/audit-logs [get]
func (h *SystemHandler) ListAuditLogs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	if err := page.Validate(); err != nil {
		return respondError(c, err)
	}
	limit, offset := page.LimitOffset()
	out, err := h.auditUC.List(c.Query("action"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SystemHandler) auditMaintenance(c *fiber.Ctx, action string) {
	actor := GetOperatorID(c)
	entry := audit.Entry{Action: action}
	if actor != "" {
		entry.ActorOperatorID = &actor
	}
	h.auditUC.Record(entry)
}
