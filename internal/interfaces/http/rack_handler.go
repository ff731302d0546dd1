package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/usecase"
)

// RackHandler maneja las estanterías.
type RackHandler struct {
	uc *usecase.RackUseCase
}

// NewRackHandler construye el handler.
func NewRackHandler(uc *usecase.RackUseCase) *RackHandler {
	return &RackHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estantería
// @Tags         racks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRackRequest  true  "warehouse_id (opcional), code, name"
// @Success      201   {object}  dto.RackResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/racks [post]
func (h *RackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRackRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar estanterías
// @Tags         racks
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "filtrar por bodega"
// @Success      200  {array}  dto.RackResponse
// @Router       /api/racks [get]
func (h *RackHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.Query("warehouse_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Activar o desactivar estantería
// @Tags         racks
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/racks/{id}/status [put]
func (h *RackHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
