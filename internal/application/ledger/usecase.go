package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// LedgerUseCase el motor del libro de movimientos: valida la solicitud,
// calcula el delta de cantidad, lo aplica al stock materializado y agrega el
// asiento correspondiente, todo dentro de una única transacción de BD.
// Implementa los cinco tipos de operación (entrada, salida, traslado, conteo
// y reverso) serializados por la puerta de escritura.
type LedgerUseCase struct {
	txRunner     TxRunner
	operatorRepo repository.OperatorRepository
	gate         Gate
}

// NewLedgerUseCase construye el motor. operatorRepo va atado al pool (las
// validaciones de operador ocurren antes de abrir la transacción).
func NewLedgerUseCase(txRunner TxRunner, operatorRepo repository.OperatorRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, operatorRepo: operatorRepo}
}

// Gate expone la puerta de escritura (para el flag de migración).
func (uc *LedgerUseCase) Gate() *Gate {
	return &uc.gate
}

// InboundInput entrada a ubicación. IDs internos ya resueltos por el caller.
type InboundInput struct {
	ItemID     string
	ToSlotID   string
	Qty        int64
	OccurredAt time.Time
	OperatorID string
	Note       *string
}

// OutboundInput salida desde ubicación.
type OutboundInput struct {
	ItemID     string
	FromSlotID string
	Qty        int64
	OccurredAt time.Time
	OperatorID string
	Note       *string
}

// MoveInput traslado entre dos ubicaciones distintas.
type MoveInput struct {
	ItemID     string
	FromSlotID string
	ToSlotID   string
	Qty        int64
	OccurredAt time.Time
	OperatorID string
	Note       *string
}

// CountInput conteo físico: fija el stock de la ubicación en ActualQty.
type CountInput struct {
	ItemID     string
	SlotID     string
	ActualQty  int64
	OccurredAt time.Time
	OperatorID string
	Note       *string
}

// ReversalInput reverso de un movimiento anterior, referenciado por su número.
type ReversalInput struct {
	MovementNo string
	OccurredAt time.Time
	OperatorID string
	Note       *string
}

// RecordInbound registra una entrada: suma Qty en la ubicación destino y
// agrega un asiento IN. Devuelve el número de movimiento generado.
func (uc *LedgerUseCase) RecordInbound(ctx context.Context, in InboundInput) (string, error) {
	if in.Qty <= 0 {
		return "", fmt.Errorf("la cantidad debe ser un entero positivo: %w", domain.ErrInvalidInput)
	}
	release, err := uc.gate.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if _, err := uc.requireActiveOperator(in.OperatorID); err != nil {
		return "", err
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		MovementNo: newMovementNo(),
		Kind:       entity.KindInbound,
		OccurredAt: in.OccurredAt,
		RecordedAt: now,
		OperatorID: in.OperatorID,
		ItemID:     in.ItemID,
		ToSlotID:   &in.ToSlotID,
		Qty:        in.Qty,
		Note:       in.Note,
	}
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		if err := applyStockDelta(stockRepo, in.ItemID, in.ToSlotID, in.Qty, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return mov.MovementNo, nil
}

// RecordOutbound registra una salida: exige stock suficiente en la ubicación
// origen, resta Qty y agrega un asiento OUT.
func (uc *LedgerUseCase) RecordOutbound(ctx context.Context, in OutboundInput) (string, error) {
	if in.Qty <= 0 {
		return "", fmt.Errorf("la cantidad debe ser un entero positivo: %w", domain.ErrInvalidInput)
	}
	release, err := uc.gate.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if _, err := uc.requireActiveOperator(in.OperatorID); err != nil {
		return "", err
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		MovementNo: newMovementNo(),
		Kind:       entity.KindOutbound,
		OccurredAt: in.OccurredAt,
		RecordedAt: now,
		OperatorID: in.OperatorID,
		ItemID:     in.ItemID,
		FromSlotID: &in.FromSlotID,
		Qty:        in.Qty,
		Note:       in.Note,
	}
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		if err := applyStockDelta(stockRepo, in.ItemID, in.FromSlotID, -in.Qty, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return mov.MovementNo, nil
}

// RecordMove registra un traslado: resta en origen, suma en destino y agrega
// un único asiento MOVE con ambas ubicaciones. Origen y destino deben diferir.
func (uc *LedgerUseCase) RecordMove(ctx context.Context, in MoveInput) (string, error) {
	if in.Qty <= 0 {
		return "", fmt.Errorf("la cantidad debe ser un entero positivo: %w", domain.ErrInvalidInput)
	}
	if in.FromSlotID == in.ToSlotID {
		return "", fmt.Errorf("la ubicación origen y destino no pueden ser la misma: %w", domain.ErrInvalidInput)
	}
	release, err := uc.gate.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if _, err := uc.requireActiveOperator(in.OperatorID); err != nil {
		return "", err
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		MovementNo: newMovementNo(),
		Kind:       entity.KindMove,
		OccurredAt: in.OccurredAt,
		RecordedAt: now,
		OperatorID: in.OperatorID,
		ItemID:     in.ItemID,
		FromSlotID: &in.FromSlotID,
		ToSlotID:   &in.ToSlotID,
		Qty:        in.Qty,
		Note:       in.Note,
	}
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		if err := applyStockDelta(stockRepo, in.ItemID, in.FromSlotID, -in.Qty, now); err != nil {
			return err
		}
		if err := applyStockDelta(stockRepo, in.ItemID, in.ToSlotID, in.Qty, now); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return mov.MovementNo, nil
}

// RecordCount registra un conteo físico: fija el stock de la ubicación en
// ActualQty y agrega dos asientos en la misma transacción: un COUNT
// informativo (qty 0, actual_qty fijado) y un ADJUST con el delta firmado
// (real menos previo) que referencia al COUNT. El ADJUST es el registro con
// efecto: un reverso posterior apunta a él, nunca al COUNT.
// Devuelve el número de movimiento del COUNT.
func (uc *LedgerUseCase) RecordCount(ctx context.Context, in CountInput) (string, error) {
	if in.ActualQty < 0 {
		return "", fmt.Errorf("la cantidad contada no puede ser negativa: %w", domain.ErrInvalidInput)
	}
	release, err := uc.gate.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if _, err := uc.requireActiveOperator(in.OperatorID); err != nil {
		return "", err
	}

	now := time.Now()
	countMov := &entity.Movement{
		ID:         uuid.New().String(),
		MovementNo: newMovementNo(),
		Kind:       entity.KindCount,
		OccurredAt: in.OccurredAt,
		RecordedAt: now,
		OperatorID: in.OperatorID,
		ItemID:     in.ItemID,
		FromSlotID: &in.SlotID,
		Qty:        0,
		ActualQty:  &in.ActualQty,
		Note:       in.Note,
	}
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		current, err := stockRepo.GetForUpdate(in.ItemID, in.SlotID)
		if err != nil {
			return err
		}
		delta := in.ActualQty - current.Qty

		if err := movRepo.Create(countMov); err != nil {
			return err
		}
		adjustMov := &entity.Movement{
			ID:            uuid.New().String(),
			MovementNo:    newMovementNo(),
			Kind:          entity.KindAdjust,
			OccurredAt:    in.OccurredAt,
			RecordedAt:    now,
			OperatorID:    in.OperatorID,
			ItemID:        in.ItemID,
			FromSlotID:    &in.SlotID,
			Qty:           delta,
			RefMovementID: &countMov.ID,
			Note:          in.Note,
		}
		if err := movRepo.Create(adjustMov); err != nil {
			return err
		}
		return stockRepo.Upsert(&entity.StockLevel{
			ItemID:    in.ItemID,
			SlotID:    in.SlotID,
			Qty:       in.ActualQty,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}
	return countMov.MovementNo, nil
}

// ReverseMovement registra el reverso compensatorio de un movimiento
// anterior: aplica el efecto inverso sobre el stock y agrega un asiento
// REVERSAL que lo referencia. Un movimiento admite como máximo un reverso;
// REVERSAL y COUNT no se reversan. Si el efecto inverso dejaría algún stock
// negativo, la operación completa aborta con ErrInsufficientStock.
func (uc *LedgerUseCase) ReverseMovement(ctx context.Context, in ReversalInput) (string, error) {
	release, err := uc.gate.Acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if _, err := uc.requireActiveOperator(in.OperatorID); err != nil {
		return "", err
	}

	now := time.Now()
	reversalNo := newMovementNo()
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		target, err := movRepo.GetByNo(in.MovementNo)
		if err != nil {
			return err
		}
		if target == nil {
			return fmt.Errorf("movimiento %s: %w", in.MovementNo, domain.ErrNotFound)
		}
		if !target.Kind.Reversible() {
			return fmt.Errorf("el movimiento %s no admite reverso: %w", in.MovementNo, domain.ErrInvalidInput)
		}
		reversed, err := movRepo.HasReversal(target.ID)
		if err != nil {
			return err
		}
		if reversed {
			return fmt.Errorf("el movimiento %s ya fue reversado: %w", in.MovementNo, domain.ErrConflict)
		}

		deltas, err := inverseDeltas(target)
		if err != nil {
			return err
		}
		for _, d := range deltas {
			if err := applyStockDelta(stockRepo, target.ItemID, d.slotID, d.qty, now); err != nil {
				return err
			}
		}

		reversal := &entity.Movement{
			ID:            uuid.New().String(),
			MovementNo:    reversalNo,
			Kind:          entity.KindReversal,
			OccurredAt:    in.OccurredAt,
			RecordedAt:    now,
			OperatorID:    in.OperatorID,
			ItemID:        target.ItemID,
			FromSlotID:    target.FromSlotID,
			ToSlotID:      target.ToSlotID,
			Qty:           target.Qty,
			RefMovementID: &target.ID,
			Note:          in.Note,
		}
		return movRepo.Create(reversal)
	})
	if err != nil {
		return "", err
	}
	return reversalNo, nil
}

// stockDelta efecto puntual sobre una ubicación: qty con signo.
type stockDelta struct {
	slotID string
	qty    int64
}

// inverseDeltas despacha por tipo el efecto inverso de un movimiento. El
// switch es exhaustivo sobre MovementKind: añadir un tipo nuevo obliga a
// decidir aquí su inverso.
func inverseDeltas(target *entity.Movement) ([]stockDelta, error) {
	switch target.Kind {
	case entity.KindInbound:
		if target.ToSlotID == nil {
			return nil, fmt.Errorf("asiento IN sin ubicación destino: %w", domain.ErrInvalidInput)
		}
		return []stockDelta{{slotID: *target.ToSlotID, qty: -target.Qty}}, nil
	case entity.KindOutbound:
		if target.FromSlotID == nil {
			return nil, fmt.Errorf("asiento OUT sin ubicación origen: %w", domain.ErrInvalidInput)
		}
		return []stockDelta{{slotID: *target.FromSlotID, qty: target.Qty}}, nil
	case entity.KindMove:
		if target.FromSlotID == nil || target.ToSlotID == nil {
			return nil, fmt.Errorf("asiento MOVE sin ubicación origen o destino: %w", domain.ErrInvalidInput)
		}
		return []stockDelta{
			{slotID: *target.FromSlotID, qty: target.Qty},
			{slotID: *target.ToSlotID, qty: -target.Qty},
		}, nil
	case entity.KindAdjust:
		// El delta del ajuste es firmado; el inverso es su negación.
		if target.FromSlotID == nil {
			return nil, fmt.Errorf("asiento ADJUST sin ubicación: %w", domain.ErrInvalidInput)
		}
		return []stockDelta{{slotID: *target.FromSlotID, qty: -target.Qty}}, nil
	case entity.KindCount, entity.KindReversal:
		return nil, fmt.Errorf("el tipo %s no admite reverso: %w", target.Kind, domain.ErrInvalidInput)
	default:
		return nil, fmt.Errorf("tipo de movimiento desconocido %q: %w", target.Kind, domain.ErrInvalidInput)
	}
}

// applyStockDelta lee la fila con bloqueo, aplica el delta y persiste.
// Piso en cero: un resultado negativo aborta con ErrInsufficientStock sin
// escribir nada (el Upsert del repo repite la guardia como última línea).
func applyStockDelta(stockRepo repository.StockRepository, itemID, slotID string, delta int64, now time.Time) error {
	current, err := stockRepo.GetForUpdate(itemID, slotID)
	if err != nil {
		return err
	}
	next := current.Qty + delta
	if next < 0 {
		return fmt.Errorf("stock de la ubicación quedaría en %d: %w", next, domain.ErrInsufficientStock)
	}
	return stockRepo.Upsert(&entity.StockLevel{
		ItemID:    itemID,
		SlotID:    slotID,
		Qty:       next,
		UpdatedAt: now,
	})
}

// requireActiveOperator resuelve el operador y exige que exista y esté activo.
func (uc *LedgerUseCase) requireActiveOperator(operatorID string) (*entity.Operator, error) {
	op, err := uc.operatorRepo.GetByID(operatorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, fmt.Errorf("operador %s: %w", operatorID, domain.ErrNotFound)
	}
	if !op.Active() {
		return nil, fmt.Errorf("operador %s: %w", op.Username, domain.ErrInactiveResource)
	}
	return op, nil
}

// newMovementNo genera el código visible único de un movimiento.
func newMovementNo() string {
	return "T" + uuid.New().String()
}
