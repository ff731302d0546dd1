package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/audit"
	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/usecase"
)

// OperatorHandler maneja la administración de operadores (solo admin).
type OperatorHandler struct {
	uc      *usecase.OperatorUseCase
	auditUC *audit.UseCase
}

// NewOperatorHandler construye el handler.
func NewOperatorHandler(uc *usecase.OperatorUseCase, auditUC *audit.UseCase) *OperatorHandler {
	return &OperatorHandler{uc: uc, auditUC: auditUC}
}

// Create godoc
// @Summary      Crear operador
// @Tags         operators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperatorRequest  true  "username, display_name, password, role"
// @Success      201   {object}  dto.OperatorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operators [post]
func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	h.auditOperator(c, "operator.create", in.Username, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar operadores
// @Tags         operators
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OperatorResponse
// @Router       /api/operators [get]
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Activar o desactivar operador
// @Tags         operators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "id del operador"
// @Param        body  body  dto.OperatorStatusRequest  true  "status: active | inactive"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operators/{id}/status [put]
func (h *OperatorHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.OperatorStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	err := h.uc.SetStatus(id, in)
	h.auditOperator(c, "operator.set_status", id, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OperatorHandler) auditOperator(c *fiber.Ctx, action, targetID string, err error) {
	actor := GetOperatorID(c)
	targetType := "operator"
	entry := audit.Entry{
		Action:     action,
		TargetType: &targetType,
		TargetID:   &targetID,
		Err:        err,
	}
	if actor != "" {
		entry.ActorOperatorID = &actor
	}
	h.auditUC.Record(entry)
}
