package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/usecase"
)

// SlotHandler maneja las ubicaciones.
type SlotHandler struct {
	uc *usecase.SlotUseCase
}

// NewSlotHandler construye el handler.
func NewSlotHandler(uc *usecase.SlotUseCase) *SlotHandler {
	return &SlotHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         slots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSlotRequest  true  "rack_id, code"
// @Success      201   {object}  dto.SlotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/slots [post]
func (h *SlotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSlotRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByRack godoc
// @Summary      Listar ubicaciones de una estantería
// @Tags         slots
// @Security     Bearer
// @Produce      json
// @Param        rack_id  query  string  true  "estantería"
// @Success      200  {array}  dto.SlotResponse
// @Router       /api/slots [get]
func (h *SlotHandler) ListByRack(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListByRack(c.Query("rack_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Activar o desactivar ubicación
// @Tags         slots
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/slots/{id}/status [put]
func (h *SlotHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
