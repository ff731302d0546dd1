package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/bodega-wms/internal/application/audit"
	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/ledger"
)

// LedgerHandler maneja las operaciones mutadoras del libro de movimientos.
// Resuelve códigos visibles a IDs, invoca el motor y audita el resultado.
type LedgerHandler struct {
	uc       *ledger.LedgerUseCase
	resolver *ledger.Resolver
	auditUC  *audit.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase, resolver *ledger.Resolver, auditUC *audit.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc, resolver: resolver, auditUC: auditUC}
}

// audit registra la operación en auditoría, exitosa o no.
func (h *LedgerHandler) audit(c *fiber.Ctx, action string, payload any, movementNo string, err error) {
	operatorID := GetOperatorID(c)
	entry := audit.Entry{
		Action:  action,
		Payload: payload,
		Err:     err,
	}
	if operatorID != "" {
		entry.ActorOperatorID = &operatorID
	}
	if movementNo != "" {
		targetType := "movement"
		entry.TargetType = &targetType
		entry.TargetID = &movementNo
	}
	h.auditUC.Record(entry)
}

// Inbound godoc
// @Summary      Registrar entrada
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundRequest  true  "item_code, to_slot_code, qty, occurred_at (epoch seg), note"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/inbound [post]
func (h *LedgerHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movementNo, err := h.registerInbound(c, in)
	h.audit(c, "txn.inbound", in, movementNo, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{MovementNo: movementNo})
}

func (h *LedgerHandler) registerInbound(c *fiber.Ctx, in dto.InboundRequest) (string, error) {
	item, err := h.resolver.RequireActiveItem(in.ItemCode)
	if err != nil {
		return "", err
	}
	slot, err := h.resolver.RequireActiveSlot(in.ToSlotCode)
	if err != nil {
		return "", err
	}
	return h.uc.RecordInbound(c.Context(), ledger.InboundInput{
		ItemID:     item.ID,
		ToSlotID:   slot.ID,
		Qty:        in.Qty,
		OccurredAt: time.Unix(in.OccurredAt, 0),
		OperatorID: GetOperatorID(c),
		Note:       in.Note,
	})
}

// Outbound godoc
// @Summary      Registrar salida
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "item_code, from_slot_code, qty, occurred_at, note"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/outbound [post]
func (h *LedgerHandler) Outbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movementNo, err := h.registerOutbound(c, in)
	h.audit(c, "txn.outbound", in, movementNo, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{MovementNo: movementNo})
}

func (h *LedgerHandler) registerOutbound(c *fiber.Ctx, in dto.OutboundRequest) (string, error) {
	item, err := h.resolver.RequireActiveItem(in.ItemCode)
	if err != nil {
		return "", err
	}
	slot, err := h.resolver.RequireActiveSlot(in.FromSlotCode)
	if err != nil {
		return "", err
	}
	return h.uc.RecordOutbound(c.Context(), ledger.OutboundInput{
		ItemID:     item.ID,
		FromSlotID: slot.ID,
		Qty:        in.Qty,
		OccurredAt: time.Unix(in.OccurredAt, 0),
		OperatorID: GetOperatorID(c),
		Note:       in.Note,
	})
}

// Move godoc
// @Summary      Registrar traslado entre ubicaciones
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveRequest  true  "item_code, from_slot_code, to_slot_code, qty, occurred_at, note"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/move [post]
func (h *LedgerHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movementNo, err := h.registerMove(c, in)
	h.audit(c, "txn.move", in, movementNo, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{MovementNo: movementNo})
}

func (h *LedgerHandler) registerMove(c *fiber.Ctx, in dto.MoveRequest) (string, error) {
	item, err := h.resolver.RequireActiveItem(in.ItemCode)
	if err != nil {
		return "", err
	}
	from, err := h.resolver.RequireActiveSlot(in.FromSlotCode)
	if err != nil {
		return "", err
	}
	to, err := h.resolver.RequireActiveSlot(in.ToSlotCode)
	if err != nil {
		return "", err
	}
	return h.uc.RecordMove(c.Context(), ledger.MoveInput{
		ItemID:     item.ID,
		FromSlotID: from.ID,
		ToSlotID:   to.ID,
		Qty:        in.Qty,
		OccurredAt: time.Unix(in.OccurredAt, 0),
		OperatorID: GetOperatorID(c),
		Note:       in.Note,
	})
}

// Count godoc
// @Summary      Registrar conteo físico
// @Description  Fija el stock del par (artículo, ubicación) en actual_qty y
//
//	genera el par COUNT + ADJUST en el libro.
//
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CountRequest  true  "item_code, slot_code, actual_qty, occurred_at, note"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/count [post]
func (h *LedgerHandler) Count(c *fiber.Ctx) error {
	var in dto.CountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movementNo, err := h.registerCount(c, in)
	h.audit(c, "txn.count", in, movementNo, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{MovementNo: movementNo})
}

func (h *LedgerHandler) registerCount(c *fiber.Ctx, in dto.CountRequest) (string, error) {
	item, err := h.resolver.RequireActiveItem(in.ItemCode)
	if err != nil {
		return "", err
	}
	slot, err := h.resolver.RequireActiveSlot(in.SlotCode)
	if err != nil {
		return "", err
	}
	return h.uc.RecordCount(c.Context(), ledger.CountInput{
		ItemID:     item.ID,
		SlotID:     slot.ID,
		ActualQty:  in.ActualQty,
		OccurredAt: time.Unix(in.OccurredAt, 0),
		OperatorID: GetOperatorID(c),
		Note:       in.Note,
	})
}

// Reverse godoc
// @Summary      Reversar un movimiento
// @Description  Aplica el efecto inverso del movimiento referenciado por su
//
//	número. Máximo un reverso por movimiento; COUNT no se reversa.
//
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReversalRequest  true  "movement_no, occurred_at, note"
// @Success      201   {object}  dto.MovementCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/reverse [post]
func (h *LedgerHandler) Reverse(c *fiber.Ctx) error {
	var in dto.ReversalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	movementNo, err := h.uc.ReverseMovement(c.Context(), ledger.ReversalInput{
		MovementNo: in.MovementNo,
		OccurredAt: time.Unix(in.OccurredAt, 0),
		OperatorID: GetOperatorID(c),
		Note:       in.Note,
	})
	h.audit(c, "txn.reversal", in, movementNo, err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementCreatedResponse{MovementNo: movementNo})
}
