package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/query"
)

// QueryHandler maneja los listados read-only del libro y del stock.
type QueryHandler struct {
	movementUC *query.MovementQueryUseCase
	stockUC    *query.StockQueryUseCase
}

// NewQueryHandler construye el handler.
func NewQueryHandler(movementUC *query.MovementQueryUseCase, stockUC *query.StockQueryUseCase) *QueryHandler {
	return &QueryHandler{movementUC: movementUC, stockUC: stockUC}
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Tags         query
// @Security     Bearer
// @Produce      json
// @Param        kind        query  string  false  "IN, OUT, MOVE, COUNT, ADJUST, REVERSAL"
// @Param        keyword     query  string  false  "busca en número, artículo, operador, ubicaciones"
// @Param        page_index  query  int     true   "desde 1"
// @Param        page_size   query  int     true   "desde 1"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *QueryHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.movementUC.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListStock godoc
// @Summary      Listar stock materializado
// @Tags         query
// @Security     Bearer
// @Produce      json
// @Param        group_by    query  string  false  "slot (por defecto) o item"
// @Param        page_index  query  int     true   "desde 1"
// @Param        page_size   query  int     true   "desde 1"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *QueryHandler) ListStock(c *fiber.Ctx) error {
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	groupBy := query.GroupBySlot
	if c.Query("group_by") == string(query.GroupByItem) {
		groupBy = query.GroupByItem
	}
	out, err := h.stockUC.List(c.Context(), in, groupBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
